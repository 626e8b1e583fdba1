package cli

import (
	"github.com/spf13/cobra"
)

func newSectionsCommand() *cobra.Command {
	var locate int

	cmd := &cobra.Command{
		Use:   "sections [file]",
		Short: "Print the document's sections and their source ranges",
		Long: `Print each blank-line-delimited section with its index and rune range.

With --locate, resolve a caret offset to its section instead: offsets
inside the separator gap resolve to the preceding section.

Examples:
  textsync sections notes.txt
  textsync sections --locate 42 notes.txt`,
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

			if cmd.Flags().Changed("locate") {
				idx, ok := sess.SectionForLocation(locate)
				if !ok {
					cmd.Println(styles.Dim.Render("no section at that offset"))
					return nil
				}
				line, _ := sess.LineForLocation(locate)
				cmd.Printf("section %d (line %d)\n", idx, line+1)
				return nil
			}

			cmd.Print(styles.FormatSections(sess.Sections()))
			return nil
		},
	}

	cmd.Flags().IntVar(&locate, "locate", 0, "resolve a rune offset to its section index")

	return cmd
}
