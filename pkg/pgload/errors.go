package pgload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := loader.Load(ctx, config)
//	if errors.Is(err, pgload.ErrMissingColumn) {
//	    // The CSV header does not cover the schema
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaFileNotFound indicates the schema file was not found.
	ErrSchemaFileNotFound = errors.New("schema file not found")

	// ErrSchemaParse indicates no usable CREATE TABLE statement was found
	// in the schema file.
	ErrSchemaParse = errors.New("schema parse failed")

	// ErrDuplicateColumn indicates the schema declares the same column name twice.
	ErrDuplicateColumn = errors.New("duplicate column in schema")

	// ErrMissingColumn indicates a schema column is absent from the CSV header.
	ErrMissingColumn = errors.New("schema column missing from data")

	// ErrApprovalDenied indicates the user denied approval for the operation.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrLoadFailed indicates table creation or the bulk copy failed.
	ErrLoadFailed = errors.New("load failed")

	// ErrUnsupportedAuthMethod indicates the requested authentication method is not supported.
	ErrUnsupportedAuthMethod = errors.New("unsupported authentication method")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrSchemaFileNotFound):
		return ExitSchemaFileMissing
	case errors.Is(err, ErrSchemaParse):
		return ExitSchemaInvalid
	case errors.Is(err, ErrDuplicateColumn):
		return ExitSchemaInvalid
	case errors.Is(err, ErrMissingColumn):
		return ExitDataInvalid
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrLoadFailed):
		return ExitLoadFailed
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrUnsupportedAuthMethod):
		return ExitConfigError
	}

	errStr := err.Error()

	// Cobra reports flag and argument misuse as plain errors
	if isUsageError(errStr) {
		return ExitUsageError
	}

	// Check for common connection error patterns
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}

func isUsageError(errStr string) bool {
	patterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"required flag",
		"accepts ",
	}
	for _, p := range patterns {
		if strings.Contains(errStr, p) {
			return true
		}
	}
	return false
}
