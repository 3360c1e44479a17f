package app

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/vburojevic/towezterm/internal/fetch"
)

func TestHelpJSON(t *testing.T) {
	t.Setenv(envHome, t.TempDir())

	code, stdout, _ := runCLI("help", "--json")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	var doc helpDoc
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Name != appName {
		t.Fatalf("expected name %q, got %q", appName, doc.Name)
	}
	for _, code := range []string{"git_missing", "conflicting_modes", "clone_failed", "unknown"} {
		if doc.ErrorCodes[code] == "" {
			t.Fatalf("expected %s in error codes, got %v", code, doc.ErrorCodes)
		}
	}
	if _, ok := doc.Env[envHome]; !ok {
		t.Fatalf("expected %s in env docs", envHome)
	}
}

func TestHelpText(t *testing.T) {
	t.Setenv(envHome, t.TempDir())

	code, stdout, _ := runCLI("help")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, want := range []string{appName, "--iterm2", "--kitty", "--all"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in help:\n%s", want, stdout)
		}
	}
}

func TestDoctorReportsGit(t *testing.T) {
	mock := fetch.NewMockExecutor()
	mock.AddCommand("/usr/bin/git", []string{"--version"}, "git version 2.47.0\n", "", nil)
	stubGit(t, mock)

	code, stdout, stderr := runCLI("doctor")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr)
	}
	for _, want := range []string{"binary: /usr/bin/git", "version: git version 2.47.0", defaultITerm2Repo, defaultOutAll} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in:\n%s", want, stdout)
		}
	}
}

func TestDoctorMissingGit(t *testing.T) {
	stubGit(t, fetch.NewMockExecutor())
	lookupGit = func(string) (string, error) { return "", errors.New("git not found on PATH") }

	code, stdout, stderr := runCLI("doctor")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stdout, "(missing)") || !strings.Contains(stderr, "Please install git") {
		t.Fatalf("unexpected output:\n%s\n%s", stdout, stderr)
	}
}
