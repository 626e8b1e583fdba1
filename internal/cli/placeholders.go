package cli

import (
	"github.com/spf13/cobra"

	"github.com/scratchpaper/textsync/internal/ui/pretty"
)

func newPlaceholdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "placeholders [file]",
		Short: "List the document's placeholders",
		Long: `List each placeholder token with its rune offset, label, and
replacement content.

Canonical tokens use <#label#>. With placeholders.legacy_syntax enabled
in the config, <@label@> tokens are recognized too, and a trailing "!"
marks the token as pre-filled with its label.

Examples:
  textsync placeholders notes.txt`,
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

			index := sess.Placeholders()
			rows := make([]pretty.PlaceholderRow, 0, index.Count())
			for _, p := range index.All() {
				r, ok := index.RangeOf(p)
				if !ok {
					continue
				}
				rows = append(rows, pretty.PlaceholderRow{Placeholder: p, Range: r})
			}

			styles := stylesFor(cmd)
			cmd.Print(styles.FormatPlaceholders(rows))
			return nil
		},
	}

	return cmd
}
