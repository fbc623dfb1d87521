package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestForcedApprover_ApprovesAfterCountdown(t *testing.T) {
	var out bytes.Buffer
	a := &ForcedApprover{out: &out, countdown: 1 * time.Second}

	approved, err := a.RequestApproval(context.Background(), "employees")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approved {
		t.Error("expected automatic approval")
	}
	if !strings.Contains(out.String(), "employees") {
		t.Errorf("warning should name the table, got: %q", out.String())
	}
}

func TestForcedApprover_ContextCancelled(t *testing.T) {
	var out bytes.Buffer
	a := &ForcedApprover{out: &out, countdown: 10 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approved, err := a.RequestApproval(ctx, "employees")
	if err == nil {
		t.Fatal("expected context error")
	}
	if approved {
		t.Error("expected denial on cancellation")
	}
}
