package app

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// promptConvertOptions asks for the source and output file, starting from
// whatever the flags already selected. An empty file name keeps the
// default for the chosen source.
func promptConvertOptions(mode Mode, outfile string, cfg Config) (Mode, string, error) {
	if mode == ModeNone {
		mode = ModeAll
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Mode]().
				Title("Which themes should be converted?").
				Options(
					huh.NewOption("iTerm2 (iTerm2-Color-Schemes)", ModeITerm2),
					huh.NewOption("kitty (kitty-themes)", ModeKitty),
					huh.NewOption("Both, merged into one file", ModeAll),
				).
				Value(&mode),

			huh.NewInput().
				Title("Output file").
				DescriptionFunc(func() string {
					return "Leave empty for " + outfileFor(mode, cfg, "")
				}, &mode).
				Value(&outfile).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if info, err := os.Stat(s); err == nil && info.IsDir() {
						return errors.New("that path is a directory")
					}
					return nil
				}),
		),
	)

	form.WithTheme(huh.ThemeDracula())
	if os.Getenv("ACCESSIBLE") != "" {
		form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return ModeNone, "", err
	}
	return mode, strings.TrimSpace(outfile), nil
}
