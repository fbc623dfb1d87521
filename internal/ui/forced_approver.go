package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vvka-141/pgload/pkg/pgload"
)

// ForcedApprover implements the Approver interface for non-interactive
// approval. It displays a countdown and approves automatically, used when
// the --force flag is provided.
type ForcedApprover struct {
	out       io.Writer
	countdown time.Duration
}

// NewForcedApprover creates a new ForcedApprover with the default countdown.
func NewForcedApprover() pgload.Approver {
	return &ForcedApprover{
		out:       os.Stderr,
		countdown: pgload.DefaultForceApprovalCountdown,
	}
}

// RequestApproval displays a countdown and approves after it elapses.
func (a *ForcedApprover) RequestApproval(ctx context.Context, tableName string) (bool, error) {
	fmt.Fprintf(a.out, "\nWARNING: table '%s' will be TRUNCATED before loading (--force)\n", tableName)

	for i := int(a.countdown.Seconds()); i > 0; i-- {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.out, "\rTruncating in: %d seconds... (Press Ctrl+C to cancel)", i)
			time.Sleep(1 * time.Second)
		}
	}

	fmt.Fprintf(a.out, "\rProceeding with truncate...                              \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ pgload.Approver = (*ForcedApprover)(nil)
