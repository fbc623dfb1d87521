package pgload_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vvka-141/pgload/pkg/pgload"
)

func TestLoadConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    pgload.LoadConfig
		wantError bool
		errorType error
	}{
		{
			name: "valid config",
			config: pgload.LoadConfig{
				SourcePath:       "./salaries",
				ConnectionString: "postgresql://localhost:5432/postgres",
			},
			wantError: false,
		},
		{
			name: "valid config with truncate and force",
			config: pgload.LoadConfig{
				SourcePath:       "./salaries",
				ConnectionString: "postgresql://localhost:5432/postgres",
				Truncate:         true,
				Force:            true,
			},
			wantError: false,
		},
		{
			name: "missing source path",
			config: pgload.LoadConfig{
				ConnectionString: "postgresql://localhost:5432/postgres",
			},
			wantError: true,
			errorType: pgload.ErrInvalidConfig,
		},
		{
			name: "missing connection string",
			config: pgload.LoadConfig{
				SourcePath: "./salaries",
			},
			wantError: true,
			errorType: pgload.ErrInvalidConfig,
		},
		{
			name: "force without truncate",
			config: pgload.LoadConfig{
				SourcePath:       "./salaries",
				ConnectionString: "postgresql://localhost:5432/postgres",
				Force:            true,
			},
			wantError: true,
			errorType: pgload.ErrInvalidConfig,
		},
		{
			name: "negative timeout",
			config: pgload.LoadConfig{
				SourcePath:       "./salaries",
				ConnectionString: "postgresql://localhost:5432/postgres",
				Timeout:          -1 * time.Second,
			},
			wantError: true,
			errorType: pgload.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("Validate() returned nil, want error")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("Validate() error = %v, want errors.Is(%v)", err, tt.errorType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestAuthMethod_String(t *testing.T) {
	tests := []struct {
		method pgload.AuthMethod
		want   string
	}{
		{pgload.AuthMethodStandard, "Standard"},
		{pgload.AuthMethodAWSIAM, "AWS IAM"},
		{pgload.AuthMethodGoogleIAM, "Google IAM"},
		{pgload.AuthMethodAzureEntraID, "Azure Entra ID"},
		{pgload.AuthMethod(99), "Unknown(99)"},
	}

	for _, tt := range tests {
		if got := tt.method.String(); got != tt.want {
			t.Errorf("AuthMethod(%d).String() = %q, want %q", tt.method, got, tt.want)
		}
	}
}

func TestAuthMethod_IsValid(t *testing.T) {
	if !pgload.AuthMethodAzureEntraID.IsValid() {
		t.Error("AuthMethodAzureEntraID should be valid")
	}
	if pgload.AuthMethod(-1).IsValid() {
		t.Error("negative AuthMethod should be invalid")
	}
	if pgload.AuthMethod(99).IsValid() {
		t.Error("out-of-range AuthMethod should be invalid")
	}
}
