package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/vburojevic/towezterm/internal/errors"
)

// -------------------------
// Doctor
// -------------------------

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that git is available and show the effective setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, cmd.OutOrStdout())
		},
	}
}

func runDoctor(cmd *cobra.Command, w io.Writer) error {
	cfg, cfgErr := loadConfig()
	ad, _ := appDir()
	cp, _ := configFilePath()

	fmt.Fprintf(w, "%s\n", appName)
	fmt.Fprintf(w, "  app dir: %s\n", ad)
	fmt.Fprintf(w, "  config: %s (%s)\n", cp, existsStr(cp))
	if cfgErr != nil {
		fmt.Fprintf(w, "  config error: %v\n", cfgErr)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "git\n")
	gitPath, gitErr := lookupGit(cfg.Git)
	if gitErr != nil {
		fmt.Fprintf(w, "  binary: %s (missing)\n", cfg.Git)
	} else {
		fmt.Fprintf(w, "  binary: %s\n", gitPath)
		version, _, err := newExecutor().Execute(cmd.Context(), gitPath, "--version")
		if err == nil {
			fmt.Fprintf(w, "  version: %s\n", strings.TrimSpace(version))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sources\n")
	fmt.Fprintf(w, "  iTerm2: %s (dir %q)\n", cfg.ITerm2.Repo, cfg.ITerm2.Dir)
	fmt.Fprintf(w, "  kitty: %s (dir %q)\n", cfg.Kitty.Repo, cfg.Kitty.Dir)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Output files\n")
	fmt.Fprintf(w, "  --iterm2: %s\n", cfg.OutITerm2)
	fmt.Fprintf(w, "  --kitty: %s\n", cfg.OutKitty)
	fmt.Fprintf(w, "  --all: %s\n", cfg.OutAll)
	fmt.Fprintln(w)

	if gitErr != nil {
		return apperrors.New(apperrors.CodeGitMissing, "Please install git", gitErr)
	}
	if cfgErr != nil {
		return cfgErr
	}
	fmt.Fprintf(w, "Tip: run `%s --all` to convert every theme.\n", appName)
	return nil
}

func existsStr(path string) string {
	if _, err := os.Stat(path); err == nil {
		return "ok"
	}
	return "missing"
}
