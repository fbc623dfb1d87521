package pgload

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Load completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration or parameters
	ExitConnectionError   = 11 // Failed to connect to database
	ExitApprovalDenied    = 12 // User denied truncate approval
	ExitLoadFailed        = 13 // Table creation or bulk copy failed
	ExitSchemaFileMissing = 14 // Schema file not found
	ExitSchemaInvalid     = 15 // Schema file contains no usable CREATE TABLE
	ExitDataInvalid       = 16 // CSV data is missing schema columns
)

const (
	// DefaultSchemaFileName is the schema file pgload looks for in the
	// project directory when --schema is not provided.
	DefaultSchemaFileName = "schema.sql"

	// DefaultDataFileName is the CSV file pgload looks for in the
	// project directory when --data is not provided.
	DefaultDataFileName = "data.csv"

	// MissingValueSentinel is the textual placeholder that source systems
	// emit for absent data. Cells equal to this string (or empty) are
	// loaded as NULL regardless of the column's declared type.
	MissingValueSentinel = "Not Provided"

	// DefaultForceApprovalCountdown is the countdown duration before a
	// forced truncate proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts.
	DefaultRetryMaxAttempts = 3
)
