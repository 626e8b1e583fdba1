package cli

import (
	"github.com/spf13/cobra"
)

func newOutlineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline [file]",
		Short: "Print the document outline",
		Long: `Print one row per section: its index, line span, and title.

The title is the section's first line with placeholder tokens substituted.
Reads from stdin when no file is given.

Examples:
  textsync outline notes.txt
  cat notes.txt | textsync outline`,
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

			styles := stylesFor(cmd)
			cmd.Print(styles.FormatOutline(sess.Outline()))
			return nil
		},
	}

	return cmd
}
