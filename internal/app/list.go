package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/vburojevic/towezterm/internal/app/tui/widgets"
	apperrors "github.com/vburojevic/towezterm/internal/errors"
	"github.com/vburojevic/towezterm/internal/scheme"
)

// -------------------------
// List
// -------------------------

type themeRow struct {
	Name       string `json:"name"`
	Ansi       int    `json:"ansi"`
	Brights    int    `json:"brights"`
	Palette    int    `json:"palette"`
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
}

func newListCmd() *cobra.Command {
	var (
		jsonOut bool
		noColor bool
		filter  string
	)

	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the themes in a generated color scheme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := readSchemeFile(args[0])
			if err != nil {
				return err
			}
			if filter != "" {
				themes = filterThemes(themes, filter)
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(themeRows(themes))
			}

			cfg, _ := loadConfig()
			color := !noColor && !cfg.NoColor && isTerminal(cmd.OutOrStdout())
			renderThemeTable(cmd.OutOrStdout(), themes, color)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color swatches")
	cmd.Flags().StringVar(&filter, "filter", "", "Only list themes whose name contains this text (case-insensitive)")
	return cmd
}

func readSchemeFile(path string) (*scheme.Collection, error) {
	themes, err := scheme.ReadFile(path)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeParseFailed, fmt.Sprintf("Failed to read %s: %v", path, err), err)
	}
	return themes, nil
}

func filterThemes(themes *scheme.Collection, query string) *scheme.Collection {
	query = strings.ToLower(strings.TrimSpace(query))
	out := scheme.NewCollection()
	themes.Each(func(name string, t scheme.Theme) {
		if strings.Contains(strings.ToLower(name), query) {
			out.Set(name, t)
		}
	})
	return out
}

func themeRows(themes *scheme.Collection) []themeRow {
	rows := make([]themeRow, 0, themes.Len())
	themes.Each(func(name string, t scheme.Theme) {
		rows = append(rows, themeRow{
			Name:       name,
			Ansi:       len(t.Ansi),
			Brights:    len(t.Brights),
			Palette:    t.PaletteLen(),
			Foreground: t.Foreground,
			Background: t.Background,
		})
	})
	return rows
}

func renderThemeTable(w io.Writer, themes *scheme.Collection, color bool) {
	if themes.Len() == 0 {
		fmt.Fprintln(w, "No themes found.")
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = false

	tw.AppendHeader(table.Row{"NAME", "ANSI", "BRIGHTS", "FOREGROUND", "BACKGROUND", "PALETTE"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	themes.Each(func(name string, t scheme.Theme) {
		tw.AppendRow(table.Row{
			name,
			len(t.Ansi),
			len(t.Brights),
			swatch(t.Foreground, color),
			swatch(t.Background, color),
			paletteStrip(t, color),
		})
	})
	tw.AppendFooter(table.Row{fmt.Sprintf("%d themes", themes.Len())})
	tw.Render()
}

// swatch renders hex on its own color. Without color it is the plain hex
// string.
func swatch(hex string, color bool) string {
	if hex == "" || !color {
		return hex
	}
	return widgets.Swatch(hex, hex)
}

func paletteStrip(t scheme.Theme, color bool) string {
	if !color {
		return fmt.Sprintf("%d/%d", len(t.Ansi), len(t.Brights))
	}
	if t.PaletteLen() == 0 {
		return ""
	}
	return widgets.Strip(append(append([]string{}, t.Ansi...), t.Brights...), 1)
}
