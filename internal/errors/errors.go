package errors

import (
	"errors"
	"fmt"
)

// Exit codes for create-blaze-app
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Kind classifies a ScaffoldError.
type Kind string

const (
	KindGeneral    Kind = "general"
	KindValidation Kind = "validation"
	KindExists     Kind = "exists"
	KindStep       Kind = "step"
	KindConfig     Kind = "config"
)

// ScaffoldError is the base error type for create-blaze-app
type ScaffoldError struct {
	Code    int
	Kind    Kind
	Message string
	// Step is the ID of the failing step for KindStep errors.
	Step  string
	Cause error
}

func (e *ScaffoldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ScaffoldError) ExitCode() int {
	return e.Code
}

// New creates a new ScaffoldError
func New(kind Kind, message string) *ScaffoldError {
	return &ScaffoldError{
		Code:    ExitFailure,
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with a ScaffoldError
func Wrap(kind Kind, message string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Code:    ExitFailure,
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ScaffoldError {
	return New(KindValidation, message)
}

// DirectoryExists returns an error for a target directory that is already present
func DirectoryExists(name string) *ScaffoldError {
	return New(KindExists, fmt.Sprintf("Directory %s already exists!", name))
}

// StepFailed returns an error for a step of the setup sequence
func StepFailed(step string, cause error) *ScaffoldError {
	err := Wrap(KindStep, fmt.Sprintf("step %s failed", step), cause)
	err.Step = step
	return err
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ScaffoldError {
	return Wrap(KindConfig, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var scaffoldErr *ScaffoldError
	if errors.As(err, &scaffoldErr) {
		return scaffoldErr.ExitCode()
	}
	return ExitFailure
}

// IsKind reports whether err's chain holds a ScaffoldError of the given kind.
func IsKind(err error, kind Kind) bool {
	var scaffoldErr *ScaffoldError
	if errors.As(err, &scaffoldErr) {
		return scaffoldErr.Kind == kind
	}
	return false
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
