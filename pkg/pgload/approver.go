package pgload

import "context"

// Approver requests confirmation before destructive operations.
// Implementations may prompt interactively or auto-approve after a countdown.
type Approver interface {
	// RequestApproval asks for confirmation to truncate the named table.
	// Returns true if the operation was approved.
	RequestApproval(ctx context.Context, tableName string) (bool, error)
}
