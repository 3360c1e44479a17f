// Package errors defines the coded errors that decide how towezterm reports a
// failure and which exit status it uses.
package errors

import "errors"

// Code identifies a structured error type used across the application.
type Code string

const (
	CodeUnknown Code = "unknown"

	// Preconditions
	CodeGitMissing       Code = "git_missing"
	CodeConflictingModes Code = "conflicting_modes"

	// Pipeline
	CodeCloneFailed Code = "clone_failed"
	CodeParseFailed Code = "parse_failed"
	CodeWriteFailed Code = "write_failed"

	CodeConfigurationError Code = "configuration_error"

	// Interaction
	CodeNoTerminal Code = "no_terminal"
	CodeCanceled   Code = "canceled"
)

// Descriptions documents every code the CLI can report.
var Descriptions = map[Code]string{
	CodeGitMissing:         "git was not found on PATH",
	CodeConflictingModes:   "more than one of --iterm2, --kitty and --all was given",
	CodeCloneFailed:        "git clone exited non-zero",
	CodeParseFailed:        "a theme or scheme file could not be read or decoded",
	CodeWriteFailed:        "the output file could not be written",
	CodeConfigurationError: "the config file could not be loaded or written",
	CodeNoTerminal:         "the command needs an interactive terminal",
	CodeCanceled:           "the interactive form was closed",
	CodeUnknown:            "usage or unexpected errors",
}

// Error represents a structured error with a machine-readable code plus message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New wraps an error with a code/message.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// CodeOf walks the error chain and returns the first structured code found.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// IsCode reports whether the error (or its unwrap chain) matches the provided code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// ExitCode maps an error to the process exit status. Every failure exits 1;
// the codes only change the message the user sees.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
