// Package fetch clones theme repositories with the git command line client.
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/cli/safeexec"
)

// DefaultGit is the git binary looked up on PATH when none is configured.
const DefaultGit = "git"

const unknownCloneError = "Unknown error"

// CloneError reports a clone that exited non-zero.
type CloneError struct {
	URL    string
	Stderr string
	Err    error
}

func (e *CloneError) Error() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return msg
	}
	return unknownCloneError
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// Fetcher clones remote repositories into a scratch directory.
type Fetcher struct {
	git  string
	exec Executor
}

// New returns a Fetcher that runs git (DefaultGit when empty) through ex
// (a RealExecutor when nil).
func New(git string, ex Executor) *Fetcher {
	if strings.TrimSpace(git) == "" {
		git = DefaultGit
	}
	if ex == nil {
		ex = NewRealExecutor()
	}
	return &Fetcher{git: git, exec: ex}
}

// Clone runs `git clone repoURL scratchDir/<name>` and returns the path of
// the cloned tree. It blocks until git exits.
func (f *Fetcher) Clone(ctx context.Context, repoURL, scratchDir string) (string, error) {
	root := filepath.Join(scratchDir, RepoName(repoURL))

	_, stderr, err := f.exec.Execute(ctx, f.git, "clone", repoURL, root)
	if err != nil {
		return "", &CloneError{URL: repoURL, Stderr: stderr, Err: err}
	}
	return root, nil
}

// Destination returns the directory Clone would create for repoURL.
func Destination(repoURL, scratchDir string) string {
	return filepath.Join(scratchDir, RepoName(repoURL))
}

// RepoName derives the local directory name from the last path segment of
// repoURL with its extension removed:
// "https://github.com/kovidgoyal/kitty-themes.git" -> "kitty-themes".
func RepoName(repoURL string) string {
	p := repoURL
	if u, err := url.Parse(repoURL); err == nil && u.Path != "" {
		p = u.Path
	} else if i := strings.LastIndexAny(repoURL, "/:"); i >= 0 {
		// scp-like "git@host:owner/name.git"
		p = repoURL[i+1:]
	}

	base := path.Base(strings.TrimRight(p, "/"))
	if base == "." || base == "/" {
		return ""
	}
	if ext := path.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// LookupGit resolves the git binary on PATH. It returns the absolute path.
func LookupGit(git string) (string, error) {
	if strings.TrimSpace(git) == "" {
		git = DefaultGit
	}
	p, err := safeexec.LookPath(git)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", git, err)
	}
	return p, nil
}
