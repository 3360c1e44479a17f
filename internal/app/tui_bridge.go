package app

import (
	"github.com/spf13/cobra"

	"github.com/vburojevic/towezterm/internal/app/tui"
	"github.com/vburojevic/towezterm/internal/app/tui/state"
	apperrors "github.com/vburojevic/towezterm/internal/errors"
)

func newPreviewCmd() *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Browse a generated color scheme file with swatches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() || !isTerminal(cmd.OutOrStdout()) {
				return apperrors.New(apperrors.CodeNoTerminal, "preview needs a terminal; use `towezterm list` instead", nil)
			}
			// Fail fast on an unreadable file instead of opening an empty browser.
			if _, err := readSchemeFile(args[0]); err != nil {
				return err
			}
			return runPreview(args[0], themeName)
		},
	}
	cmd.Flags().StringVar(&themeName, "theme", "mocha", "Browser theme: mocha|latte")
	return cmd
}

func runPreview(path, themeName string) error {
	return tui.Run(tui.Config{File: path, ThemeName: themeName}, schemeLoader(path))
}

// schemeLoader reads path on every call so the browser can reload it.
func schemeLoader(path string) tui.Loader {
	return func() ([]state.Entry, error) {
		themes, err := readSchemeFile(path)
		if err != nil {
			return nil, err
		}
		return state.Entries(themes), nil
	}
}
