package main

import "fmt"

const (
	exitInvalid = 1
	exitUsage   = 2
)

// exitError carries the process exit code out of a command. A nil err means
// the command already reported the problem.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &exitError{
		code: exitUsage,
		err:  &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion},
	}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error { return e.cause }
