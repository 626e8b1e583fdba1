package cli

import (
	"github.com/spf13/cobra"

	"github.com/scratchpaper/textsync/pkg/highlight"
	"github.com/scratchpaper/textsync/pkg/render"
)

func newPreviewCommand() *cobra.Command {
	var highlighted bool

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render the document section by section",
		Long: `Render each section to an HTML fragment, with placeholder tokens
substituted by their replacement content or a marker.

With --highlight, print syntax-highlighted section text instead of HTML,
using the configured lexer, theme, and formatter.

Examples:
  textsync preview notes.txt
  textsync preview --highlight notes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			text, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			sess, err := buildSession(cfg, text)
			if err != nil {
				return err
			}

			if highlighted {
				h := highlight.New(highlight.Options{
					Language:  cfg.Highlight.Language,
					Theme:     cfg.Highlight.Theme,
					Formatter: cfg.Highlight.Formatter,
				})

				indices, err := sess.HighlightPass(h)
				if err != nil {
					return err
				}

				for _, idx := range indices {
					out, ok := h.Rendered(idx)
					if !ok {
						continue
					}
					cmd.Println(out)
				}
				return nil
			}

			renderer := render.NewHTML()
			rendered, err := renderer.RenderSections(sess.RenderPlan())
			if err != nil {
				return err
			}

			for _, fragment := range rendered {
				cmd.Print(fragment.HTML)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&highlighted, "highlight", false, "print syntax-highlighted text instead of HTML")

	return cmd
}
