package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	apperrors "github.com/vburojevic/towezterm/internal/errors"
)

// Run executes the CLI and returns a process exit code.
func Run() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

type convertFlags struct {
	iterm2      bool
	kitty       bool
	all         bool
	outfile     string
	interactive bool
	noColor     bool
	print       bool
}

func run(args []string, stdout, stderr io.Writer) int {
	baseCfg, cfgErr := loadConfig()

	var flags convertFlags

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Convert iTerm2 and/or kitty color themes to a format WezTerm can read",
		Long: "towezterm clones the iTerm2-Color-Schemes and/or kitty-themes repositories, converts every " +
			"theme it finds and writes them all to a single JSON file of WezTerm color schemes.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			cfg := baseCfg
			if flags.noColor {
				cfg.NoColor = true
			}
			con := newConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.NoColor)
			return runConvert(cmd, cfg, flags, con)
		},
	}

	rootCmd.Flags().BoolVarP(&flags.iterm2, "iterm2", "i", false, "Convert iTerm2 color themes")
	rootCmd.Flags().BoolVarP(&flags.kitty, "kitty", "k", false, "Convert kitty color themes")
	rootCmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Convert both iTerm2 and kitty color themes")
	rootCmd.Flags().StringVarP(&flags.outfile, "outfile", "o", "", "Specify an output filename")
	rootCmd.Flags().BoolVarP(&flags.interactive, "interactive", "I", false, "Choose the source and output file interactively")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable color output")
	rootCmd.Flags().BoolVar(&flags.print, "print", false, "Print a summary table of the converted themes")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.SetHelpCommand(newHelpCmd())

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		con := newConsole(stdout, stderr, baseCfg.NoColor || flags.noColor)
		con.Error(err)
		// Uncoded errors come from cobra: bad flags, arguments or commands.
		if apperrors.IsCode(err, apperrors.CodeUnknown) {
			con.ErrorHintf("Run `%s help` for usage.", appName)
		}
	}
	return apperrors.ExitCode(err)
}

// selectedMode validates the mode flags. At most one may be set.
func selectedMode(f convertFlags) (Mode, error) {
	n := 0
	mode := ModeNone
	if f.iterm2 {
		n++
		mode = ModeITerm2
	}
	if f.kitty {
		n++
		mode = ModeKitty
	}
	if f.all {
		n++
		mode = ModeAll
	}
	if n > 1 {
		return ModeNone, apperrors.New(apperrors.CodeConflictingModes, "Only one of --iterm2, --kitty, and --all is allowed", nil)
	}
	return mode, nil
}

// outfileFor returns the override when set, otherwise the configured
// default for mode.
func outfileFor(mode Mode, cfg Config, override string) string {
	if override != "" {
		return override
	}
	switch mode {
	case ModeITerm2:
		return cfg.OutITerm2
	case ModeKitty:
		return cfg.OutKitty
	default:
		return cfg.OutAll
	}
}

func runConvert(cmd *cobra.Command, cfg Config, flags convertFlags, con *console) error {
	if _, err := lookupGit(cfg.Git); err != nil {
		return apperrors.New(apperrors.CodeGitMissing, "Please install git", err)
	}

	mode, err := selectedMode(flags)
	if err != nil {
		return err
	}
	outfile := flags.outfile

	if flags.interactive && stdinIsTerminal() && isTerminal(cmd.OutOrStdout()) {
		mode, outfile, err = promptConvertOptions(mode, outfile, cfg)
		if err != nil {
			return apperrors.New(apperrors.CodeCanceled, fmt.Sprintf("Interactive prompt: %v", err), err)
		}
	}

	if mode == ModeNone {
		con.Hintf("Nothing to convert. Pass --iterm2, --kitty or --all (see `%s help`).", appName)
		return nil
	}

	outfile = outfileFor(mode, cfg, outfile)
	themes, err := convert(cmd.Context(), cfg, mode, outfile, con)
	if err != nil {
		return err
	}

	if flags.print {
		fmt.Fprintln(cmd.OutOrStdout())
		renderThemeTable(cmd.OutOrStdout(), themes, con.color)
	}
	return nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
