package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// MockExecutor simulates command execution for testing.
type MockExecutor struct {
	// Commands maps command patterns to responses.
	// Key format: "command arg1 arg2"
	Commands map[string]*CommandResult

	// DefaultResult is returned when no specific command matches.
	DefaultResult *CommandResult

	// ExecutedCommands tracks all commands that were executed.
	ExecutedCommands []ExecutedCommand
}

// CommandResult represents the result of a command execution.
type CommandResult struct {
	Stdout string
	Stderr string
	Error  error

	// Effect runs with the command arguments before the result is returned,
	// e.g. to lay down the files a real clone would have produced. A non-nil
	// error replaces Error.
	Effect func(args []string) error
}

// ExecutedCommand tracks a command that was executed.
type ExecutedCommand struct {
	Name string
	Args []string
}

// NewMockExecutor creates a new mock executor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:         make(map[string]*CommandResult),
		ExecutedCommands: make([]ExecutedCommand, 0),
	}
}

// Execute simulates command execution by looking up the command in the Commands map.
func (m *MockExecutor) Execute(_ context.Context, name string, args ...string) (string, string, error) {
	m.ExecutedCommands = append(m.ExecutedCommands, ExecutedCommand{
		Name: name,
		Args: args,
	})

	cmdKey := m.buildCommandKey(name, args)

	if result, ok := m.Commands[cmdKey]; ok {
		return result.resolve(args)
	}

	// Look for pattern match (allows wildcards)
	for pattern, result := range m.Commands {
		if m.matchesPattern(cmdKey, pattern) {
			return result.resolve(args)
		}
	}

	if m.DefaultResult != nil {
		return m.DefaultResult.resolve(args)
	}

	return "", "", fmt.Errorf("mock executor: no result configured for command: %s", cmdKey)
}

func (r *CommandResult) resolve(args []string) (string, string, error) {
	if r.Effect != nil {
		if err := r.Effect(args); err != nil {
			return r.Stdout, r.Stderr, err
		}
	}
	return r.Stdout, r.Stderr, r.Error
}

// AddCommand registers a command response.
func (m *MockExecutor) AddCommand(name string, args []string, stdout, stderr string, err error) {
	cmdKey := m.buildCommandKey(name, args)
	m.Commands[cmdKey] = &CommandResult{
		Stdout: stdout,
		Stderr: stderr,
		Error:  err,
	}
}

// AddGitClone mocks a successful clone of url into any destination.
// populate, when non-nil, is called with the destination to create the
// working tree.
func (m *MockExecutor) AddGitClone(git, url string, populate func(dest string) error) {
	key := m.buildCommandKey(git, []string{"clone", url, "*"})
	m.Commands[key] = &CommandResult{
		Effect: func(args []string) error {
			dest := args[len(args)-1]
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return err
			}
			if populate == nil {
				return nil
			}
			return populate(dest)
		},
	}
}

// AddGitCloneError mocks a failing clone of url into any destination.
func (m *MockExecutor) AddGitCloneError(git, url, stderr string) {
	m.AddCommand(git, []string{"clone", url, "*"}, "", stderr, errors.New("exit status 128"))
}

// Reset clears all command history and configurations.
func (m *MockExecutor) Reset() {
	m.Commands = make(map[string]*CommandResult)
	m.ExecutedCommands = make([]ExecutedCommand, 0)
	m.DefaultResult = nil
}

// buildCommandKey creates a string key from command name and args.
func (m *MockExecutor) buildCommandKey(name string, args []string) string {
	parts := append([]string{name}, args...)
	return strings.Join(parts, " ")
}

// matchesPattern checks if a command matches a pattern (simple wildcard support).
func (m *MockExecutor) matchesPattern(cmd, pattern string) bool {
	// Simple wildcard matching: * matches any segment
	if !strings.Contains(pattern, "*") {
		return cmd == pattern
	}

	patternParts := strings.Split(pattern, " ")
	cmdParts := strings.Split(cmd, " ")

	if len(patternParts) != len(cmdParts) {
		return false
	}

	for i, pp := range patternParts {
		if pp == "*" {
			continue
		}

		if pp != cmdParts[i] {
			return false
		}
	}

	return true
}
