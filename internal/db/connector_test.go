package db

import (
	"errors"
	"strings"
	"testing"

	"github.com/vvka-141/pgload/pkg/pgload"
)

func TestWrapConnectionError_Guidance(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		contains string
	}{
		{"refused", "dial tcp 127.0.0.1:5432: connection refused", "pg_isready"},
		{"no such host", "dial tcp: lookup badhost: no such host", "Hostname is misspelled"},
		{"bad password", "FATAL: password authentication failed for user", "$PGPASSWORD"},
		{"missing database", `FATAL: database "mydb" does not exist`, "createdb"},
		{"timeout", "dial tcp 10.0.0.1:5432: i/o timeout", "timed out"},
		{"ssl", "SSL is not enabled on the server", "sslmode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := errors.New(tt.raw)
			wrapped := wrapConnectionError(raw, "dbhost", 5432, "mydb")

			if !strings.Contains(wrapped.Error(), tt.contains) {
				t.Errorf("expected guidance containing %q, got:\n%v", tt.contains, wrapped)
			}
			if !errors.Is(wrapped, raw) {
				t.Error("wrapped error must preserve the original via errors.Is")
			}
		})
	}
}

func TestNewConnector_Factory(t *testing.T) {
	standard, err := NewConnector(&pgload.ConnectionConfig{AuthMethod: pgload.AuthMethodStandard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := standard.(*StandardConnector); !ok {
		t.Errorf("expected *StandardConnector, got %T", standard)
	}

	_, err = NewConnector(&pgload.ConnectionConfig{AuthMethod: pgload.AuthMethod(99)})
	if !errors.Is(err, pgload.ErrUnsupportedAuthMethod) {
		t.Errorf("expected ErrUnsupportedAuthMethod, got %v", err)
	}
}

func TestNewConnector_AWSRequiresRegion(t *testing.T) {
	_, err := NewConnector(&pgload.ConnectionConfig{
		AuthMethod: pgload.AuthMethodAWSIAM,
		Host:       "mydb.rds.amazonaws.com",
		Port:       5432,
		Username:   "iamuser",
	})
	if err == nil || !strings.Contains(err.Error(), "region") {
		t.Errorf("expected region requirement error, got %v", err)
	}
}

func TestNewConnector_GoogleRequiresInstance(t *testing.T) {
	_, err := NewConnector(&pgload.ConnectionConfig{
		AuthMethod: pgload.AuthMethodGoogleIAM,
		Username:   "iamuser",
	})
	if err == nil || !strings.Contains(err.Error(), "instance") {
		t.Errorf("expected instance requirement error, got %v", err)
	}
}
