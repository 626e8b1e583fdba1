// Package cli provides the Cobra command structure for textsync.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scratchpaper/textsync/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root textsync command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "textsync",
		Short: "Inspect the section, placeholder and render model of a scratch document",
		Long: `textsync maintains the synchronization model of a scratch document: it
segments text into blank-line-delimited sections, maps source ranges onto
rendered-output indices, tracks placeholder tokens as atomic units, and
decides which sections need re-highlighting after an edit.

The CLI exposes that model for inspection: print a document's outline,
its sections, its placeholders, or a rendered HTML preview.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newOutlineCommand())
	rootCmd.AddCommand(newSectionsCommand())
	rootCmd.AddCommand(newPlaceholdersCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
