package main

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrCapacityExceeded = errors.New("event has no free places")
	ErrNotRegistered    = errors.New("user is not registered")
	ErrPermission       = errors.New("admin rights required")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrCorruptRecord    = errors.New("corrupt record")
	ErrNoUsername       = errors.New("telegram username is not set")
)

// ValidationError carries a prompt asking the user to resend malformed input.
type ValidationError struct {
	Field  string
	Prompt string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Prompt
}

func invalid(field, prompt string) error {
	return &ValidationError{Field: field, Prompt: prompt}
}
