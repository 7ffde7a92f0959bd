package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// ValidationError names the offending field. It matches ErrInvalidInput
// under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Runner executes fire-and-forget work such as notifications.
type Runner func(task func())

// Background runs the task on its own goroutine.
func Background(task func()) { go task() }

// Inline runs the task on the caller's goroutine.
func Inline(task func()) { task() }
