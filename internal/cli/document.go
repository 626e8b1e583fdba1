package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scratchpaper/textsync/internal/configloader"
	"github.com/scratchpaper/textsync/internal/logging"
	"github.com/scratchpaper/textsync/internal/ui/pretty"
	"github.com/scratchpaper/textsync/pkg/config"
	"github.com/scratchpaper/textsync/pkg/placeholder"
	"github.com/scratchpaper/textsync/pkg/session"
)

// resolveConfig loads the merged configuration for a command invocation.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPath, result.LoadedFrom)
	}

	return result.Config, nil
}

// readDocument reads the document from the file argument, or from stdin
// when no argument (or "-") is given.
func readDocument(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

// buildSession creates a session configured per cfg and loads text into it.
func buildSession(cfg *config.Config, text string) (*session.Session, error) {
	syntax := placeholder.SyntaxCanonical
	if cfg.Placeholders.LegacySyntax {
		syntax = placeholder.SyntaxWithLegacy
	}

	s := session.New(session.Options{
		Syntax:            syntax,
		PlaceholderMarker: cfg.Placeholders.Marker,
		TitleLimit:        cfg.Outline.TitleLimit,
	})

	if err := s.OnTextChanged(text); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	logging.Default().Debug("document loaded",
		logging.FieldSections, len(s.Sections()),
		logging.FieldPlaceholders, s.Placeholders().Count(),
	)

	return s, nil
}

// stylesFor builds output styles honoring the --color flag.
func stylesFor(cmd *cobra.Command) *pretty.Styles {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(mode, os.Stdout))
}
