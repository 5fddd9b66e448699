// Package errors provides typed errors with exit codes for create-blaze-app.
//
// # Error Types
//
// ScaffoldError is the base error type that wraps an error with an exit code
// and a kind:
//
//	type ScaffoldError struct {
//	    Code    int    // Exit code
//	    Kind    Kind   // validation, exists, step, config
//	    Message string // User-facing message
//	    Step    string // Failing step ID (KindStep only)
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess = 0  // Success
//	ExitFailure = 1  // Validation, existing directory, step or config failure
//
// # Error Constructors
//
//	errors.ValidationError("Project name cannot be empty")
//	errors.DirectoryExists("demo-app")
//	errors.StepFailed("install", err)
//	errors.ConfigError("failed to parse config", err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
