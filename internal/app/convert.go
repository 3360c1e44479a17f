package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	apperrors "github.com/vburojevic/towezterm/internal/errors"
	"github.com/vburojevic/towezterm/internal/fetch"
	"github.com/vburojevic/towezterm/internal/iterm2"
	"github.com/vburojevic/towezterm/internal/kitty"
	"github.com/vburojevic/towezterm/internal/scheme"
)

// Swapped out by tests.
var (
	lookupGit   = fetch.LookupGit
	newExecutor = func() fetch.Executor { return fetch.NewRealExecutor() }
)

// source is one theme repository and the parser for the files inside it.
type source struct {
	// repoLabel names the repository in clone failures, genLabel the themes
	// in progress output.
	repoLabel string
	genLabel  string
	cfg       SourceConfig
	parseDir  func(dir string) (*scheme.Collection, error)
}

// sourcesFor lists the sources a mode converts, in merge order.
func sourcesFor(mode Mode, cfg Config) []source {
	it := source{repoLabel: "iTerm2", genLabel: "Iterm2", cfg: cfg.ITerm2, parseDir: iterm2.ParseDir}
	kt := source{repoLabel: "Kitty Term", genLabel: "Kitty Term", cfg: cfg.Kitty, parseDir: kitty.ParseDir}
	switch mode {
	case ModeITerm2:
		return []source{it}
	case ModeKitty:
		return []source{kt}
	case ModeAll:
		return []source{it, kt}
	}
	return nil
}

// convert clones and parses every source for mode into a scratch directory,
// then writes the merged collection to outfile. Nothing is written unless
// every source succeeds.
func convert(ctx context.Context, cfg Config, mode Mode, outfile string, con *console) (*scheme.Collection, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scratch, err := os.MkdirTemp("", appName+"-")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	fetcher := fetch.New(cfg.Git, newExecutor())
	all := scheme.NewCollection()

	for _, src := range sourcesFor(mode, cfg) {
		themes, err := convertSource(ctx, fetcher, src, scratch, con)
		if err != nil {
			return nil, err
		}
		all.Merge(themes)
	}

	if err := scheme.WriteFile(outfile, all); err != nil {
		return nil, apperrors.New(apperrors.CodeWriteFailed, fmt.Sprintf("Failed to write %s: %v", outfile, err), err)
	}
	con.Successf("Generated %d themes in %s", all.Len(), outfile)
	return all, nil
}

func convertSource(ctx context.Context, f *fetch.Fetcher, src source, scratch string, con *console) (*scheme.Collection, error) {
	con.Infof("Cloning %s to %s....", src.cfg.Repo, fetch.Destination(src.cfg.Repo, scratch))

	root, err := f.Clone(ctx, src.cfg.Repo, scratch)
	if err != nil {
		msg := fmt.Sprintf("Failed to clone the %s themes repository: %v", src.repoLabel, err)
		return nil, apperrors.New(apperrors.CodeCloneFailed, msg, err)
	}

	con.Infof("Generating the WezTerm color themes from %s themes....", src.genLabel)
	themes, err := src.parseDir(filepath.Join(root, src.cfg.Dir))
	if err != nil {
		return nil, apperrors.New(apperrors.CodeParseFailed, err.Error(), err)
	}
	return themes, nil
}
