package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchpaper/textsync/pkg/render"
)

func TestHTMLRenderer_Render(t *testing.T) {
	t.Parallel()

	r := render.NewHTML()

	got, err := r.Render("# Title\n\nbody **bold**")
	require.NoError(t, err)

	assert.Contains(t, got, "<h1")
	assert.Contains(t, got, "<strong>bold</strong>")
}

func TestHTMLRenderer_MathPassesThroughAsText(t *testing.T) {
	t.Parallel()

	r := render.NewHTML()

	got, err := r.Render(`the ratio $\frac{a}{b}$ holds`)
	require.NoError(t, err)

	// Dollar-delimited spans survive for the host's KaTeX pass.
	assert.Contains(t, got, "$")
	assert.Contains(t, got, `\frac{a}{b}`)
}

func TestHTMLRenderer_RenderSections(t *testing.T) {
	t.Parallel()

	r := render.NewHTML()

	rendered, err := r.RenderSections([]render.Section{
		{Index: 0, Content: "first"},
		{Index: 1, Content: "second"},
	})
	require.NoError(t, err)

	require.Len(t, rendered, 2)
	assert.Equal(t, 0, rendered[0].Index)
	assert.Contains(t, rendered[0].HTML, "first")
	assert.Equal(t, 1, rendered[1].Index)
	assert.Contains(t, rendered[1].HTML, "second")
}

func TestHTMLRenderer_EmptySection(t *testing.T) {
	t.Parallel()

	r := render.NewHTML()

	got, err := r.Render("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
