package lib

import (
	"errors"
	"fmt"
	"os"
)

type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// WithCode attaches a process exit status to err.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitError{err: err, code: code}
}

// Code returns the exit status carried by err, 1 for any other error
// and 0 for nil.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return 1
}

// Exit prints the error and exits the program with its code
func Exit(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(Code(err))
}
