package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOfWalksWrappedChain(t *testing.T) {
	base := New(CodeCloneFailed, "Failed to clone", errors.New("exit status 128"))
	wrapped := fmt.Errorf("convert iterm2: %w", base)

	if got := CodeOf(wrapped); got != CodeCloneFailed {
		t.Fatalf("expected %q, got %q", CodeCloneFailed, got)
	}
	if !IsCode(wrapped, CodeCloneFailed) {
		t.Fatalf("expected IsCode to match")
	}
	if IsCode(wrapped, CodeGitMissing) {
		t.Fatalf("unexpected match for git_missing")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if got := CodeOf(errors.New("boom")); got != CodeUnknown {
		t.Fatalf("expected unknown, got %q", got)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{name: "message wins", err: New(CodeParseFailed, "bad plist", errors.New("inner")), want: "bad plist"},
		{name: "wrapped error", err: New(CodeParseFailed, "", errors.New("inner")), want: "inner"},
		{name: "code only", err: New(CodeGitMissing, "", nil), want: "git_missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatalf("expected 0 for nil error")
	}
	if ExitCode(New(CodeConflictingModes, "", nil)) != 1 {
		t.Fatalf("expected 1 for conflicting modes")
	}
}

func TestDescriptionsCoverCodes(t *testing.T) {
	codes := []Code{
		CodeUnknown, CodeGitMissing, CodeConflictingModes, CodeCloneFailed,
		CodeParseFailed, CodeWriteFailed, CodeConfigurationError, CodeNoTerminal, CodeCanceled,
	}
	for _, c := range codes {
		if Descriptions[c] == "" {
			t.Fatalf("missing description for %q", c)
		}
	}
	if len(Descriptions) != len(codes) {
		t.Fatalf("expected %d descriptions, got %d", len(codes), len(Descriptions))
	}
}
