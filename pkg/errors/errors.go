package errors

import (
	"errors"
	"fmt"
)

// Generic infrastructure errors

var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal error
	ErrInternal = errors.New("internal error")

	// ErrUnavailable indicates a service is unavailable
	ErrUnavailable = errors.New("service unavailable")
)

// Quote provider errors

var (
	// ErrQuoteUnavailable indicates the quote provider responded with a
	// non-success status or an unparseable body
	ErrQuoteUnavailable = errors.New("quote provider unavailable")

	// ErrMissingRate indicates a requested pair was absent from the returned quote
	ErrMissingRate = errors.New("rate missing from quote")
)

// User input errors, recovered locally by re-prompting

var (
	// ErrInvalidAmount indicates the entered amount is not a positive number
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidSelection indicates the input is outside the offered option set
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrNoRateForTerm indicates no deposit rate is defined for the chosen term
	ErrNoRateForTerm = errors.New("no rate for term")
)

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
