package fetch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRepoName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{url: "https://github.com/mbadolato/iTerm2-Color-Schemes.git", want: "iTerm2-Color-Schemes"},
		{url: "https://github.com/kovidgoyal/kitty-themes.git", want: "kitty-themes"},
		{url: "https://github.com/kovidgoyal/kitty-themes", want: "kitty-themes"},
		{url: "https://example.com/themes/repo/", want: "repo"},
		{url: "git@github.com:owner/name.git", want: "name"},
		{url: "/srv/git/local-themes.git", want: "local-themes"},
		{url: "https://example.com/archive.tar.gz", want: "archive.tar"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := RepoName(tt.url); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCloneSuccess(t *testing.T) {
	scratch := t.TempDir()
	url := "https://github.com/kovidgoyal/kitty-themes.git"
	dest := filepath.Join(scratch, "kitty-themes")

	mock := NewMockExecutor()
	mock.AddGitClone("git", url, func(dest string) error {
		return os.MkdirAll(filepath.Join(dest, "themes"), 0o755)
	})

	root, err := New("", mock).Clone(context.Background(), url, scratch)
	if err != nil {
		t.Fatalf("Clone error: %v", err)
	}
	if root != dest {
		t.Fatalf("expected %q, got %q", dest, root)
	}
	if _, err := os.Stat(filepath.Join(root, "themes")); err != nil {
		t.Fatalf("expected populated tree: %v", err)
	}
	if len(mock.ExecutedCommands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(mock.ExecutedCommands))
	}
	cmd := mock.ExecutedCommands[0]
	if cmd.Name != "git" || cmd.Args[0] != "clone" || cmd.Args[1] != url || cmd.Args[2] != dest {
		t.Fatalf("unexpected command: %s %v", cmd.Name, cmd.Args)
	}
}

func TestCloneFailureSurfacesStderr(t *testing.T) {
	url := "https://example.invalid/nope.git"
	mock := NewMockExecutor()
	mock.AddGitCloneError("git", url, "fatal: repository 'https://example.invalid/nope.git/' not found\n")

	_, err := New("git", mock).Clone(context.Background(), url, t.TempDir())
	if err == nil {
		t.Fatalf("expected clone error")
	}
	var cloneErr *CloneError
	if !errors.As(err, &cloneErr) {
		t.Fatalf("expected *CloneError, got %T", err)
	}
	want := "fatal: repository 'https://example.invalid/nope.git/' not found"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestCloneFailureWithoutStderr(t *testing.T) {
	mock := NewMockExecutor()
	mock.DefaultResult = &CommandResult{Error: errors.New("exit status 1")}

	_, err := New("git", mock).Clone(context.Background(), "https://example.com/x.git", t.TempDir())
	if err == nil || err.Error() != "Unknown error" {
		t.Fatalf("expected generic message, got %v", err)
	}
}

func TestCustomGitBinary(t *testing.T) {
	mock := NewMockExecutor()
	mock.DefaultResult = &CommandResult{}

	if _, err := New("/opt/git/bin/git", mock).Clone(context.Background(), "https://example.com/x.git", t.TempDir()); err != nil {
		t.Fatalf("Clone error: %v", err)
	}
	if mock.ExecutedCommands[0].Name != "/opt/git/bin/git" {
		t.Fatalf("expected configured binary, got %q", mock.ExecutedCommands[0].Name)
	}
}

func TestLookupGitMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if _, err := LookupGit("git-definitely-not-installed"); err == nil {
		t.Fatalf("expected lookup error")
	}
}

func TestMockExecutorUnconfigured(t *testing.T) {
	mock := NewMockExecutor()
	if _, _, err := mock.Execute(context.Background(), "git", "status"); err == nil {
		t.Fatalf("expected error for unconfigured command")
	}
	mock.Reset()
	if len(mock.ExecutedCommands) != 0 {
		t.Fatalf("expected history cleared")
	}
}
