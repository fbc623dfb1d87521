package db

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vvka-141/pgload/internal/config"
	"github.com/vvka-141/pgload/pkg/pgload"
)

// GranularConnFlags represents connection parameters from CLI flags.
// These follow PostgreSQL standard flag conventions (-h, -p, -U, -d).
//
// Password is NOT a CLI flag. Use $PGPASSWORD, a .pgpass file, or a
// connection string with an embedded password.
type GranularConnFlags struct {
	Host     string
	Port     int
	Username string
	Database string
	SSLMode  string
}

// IsEmpty returns true if no connection-related granular flags were provided.
// The database flag is excluded because it may override the database named
// in a connection string.
func (g *GranularConnFlags) IsEmpty() bool {
	return g.Host == "" && g.Port == 0 && g.Username == "" && g.SSLMode == ""
}

// AzureFlags represents Azure Entra ID CLI flags. They override the
// corresponding AZURE_* environment variables. The client secret is not a
// flag; use $AZURE_CLIENT_SECRET.
type AzureFlags struct {
	TenantID string
	ClientID string
}

// IsEmpty returns true if no Azure flags were provided.
func (a *AzureFlags) IsEmpty() bool {
	return a == nil || (a.TenantID == "" && a.ClientID == "")
}

// EnvVars represents the environment variables pgload reads.
// PG* names follow libpq conventions:
// https://www.postgresql.org/docs/current/libpq-envars.html
type EnvVars struct {
	PGHOST     string
	PGPORT     string
	PGUSER     string
	PGPASSWORD string
	PGDATABASE string
	PGSSLMODE  string

	// PGLOAD_CONNECTION_STRING is the tool-specific connection string and
	// takes precedence over DATABASE_URL.
	PGLOAD_CONNECTION_STRING string

	// DATABASE_URL is the Heroku/Rails convention for a full connection string.
	DATABASE_URL string

	// Azure Entra ID variables (Azure SDK standard names)
	AZURE_TENANT_ID     string
	AZURE_CLIENT_ID     string
	AZURE_CLIENT_SECRET string
}

// LoadFromEnvironment reads the PostgreSQL and cloud provider environment
// variables pgload understands.
func LoadFromEnvironment() *EnvVars {
	return &EnvVars{
		PGHOST:                   os.Getenv("PGHOST"),
		PGPORT:                   os.Getenv("PGPORT"),
		PGUSER:                   os.Getenv("PGUSER"),
		PGPASSWORD:               os.Getenv("PGPASSWORD"),
		PGDATABASE:               os.Getenv("PGDATABASE"),
		PGSSLMODE:                os.Getenv("PGSSLMODE"),
		PGLOAD_CONNECTION_STRING: os.Getenv("PGLOAD_CONNECTION_STRING"),
		DATABASE_URL:             os.Getenv("DATABASE_URL"),
		AZURE_TENANT_ID:          os.Getenv("AZURE_TENANT_ID"),
		AZURE_CLIENT_ID:          os.Getenv("AZURE_CLIENT_ID"),
		AZURE_CLIENT_SECRET:      os.Getenv("AZURE_CLIENT_SECRET"),
	}
}

// HasAzureCredentials returns true if Azure Entra ID environment variables are set.
func (e *EnvVars) HasAzureCredentials() bool {
	return e.AZURE_TENANT_ID != "" || e.AZURE_CLIENT_ID != ""
}

// connectionString returns the first configured full connection string.
func (e *EnvVars) connectionString() string {
	if e.PGLOAD_CONNECTION_STRING != "" {
		return e.PGLOAD_CONNECTION_STRING
	}
	return e.DATABASE_URL
}

// ResolveConnectionParams resolves connection parameters with
// PostgreSQL-standard precedence:
//
//  1. Connection string flag (--connection)
//  2. Granular flags (-h, -p, -U, -d)
//  3. PGLOAD_CONNECTION_STRING / DATABASE_URL environment variables
//  4. PG* environment variables
//  5. pgload.yaml connection block
//  6. Defaults (localhost:5432, prefer SSL)
//
// Cloud authentication: Azure flags or AZURE_* environment variables switch
// the auth method to Azure Entra ID (flags win over env vars). The
// pgload.yaml auth_method field selects AWS IAM or Google Cloud SQL IAM.
//
// Returns an error if BOTH --connection and granular flags are provided.
func ResolveConnectionParams(
	connStringFlag string,
	granularFlags *GranularConnFlags,
	azureFlags *AzureFlags,
	envVars *EnvVars,
	projectConfig *config.ProjectConfig,
) (*pgload.ConnectionConfig, error) {
	if granularFlags == nil {
		granularFlags = &GranularConnFlags{}
	}
	if azureFlags == nil {
		azureFlags = &AzureFlags{}
	}
	if envVars == nil {
		envVars = &EnvVars{}
	}

	if connStringFlag != "" && !granularFlags.IsEmpty() {
		return nil, fmt.Errorf(
			"cannot specify both --connection and granular flags (-h, -p, -U)\n" +
				"Choose one approach:\n" +
				"  1. Connection string: --connection \"postgresql://user@localhost:5432/postgres\"\n" +
				"  2. Granular flags: -h localhost -p 5432 -U myuser -d mydb\n" +
				"  3. Environment variables: export PGHOST=localhost PGPORT=5432 PGUSER=myuser",
		)
	}

	var cfg *pgload.ConnectionConfig
	var err error

	if connStringFlag != "" {
		cfg, err = resolveFromConnectionString(connStringFlag, granularFlags, envVars)
	} else if granularFlags.IsEmpty() && envVars.connectionString() != "" {
		cfg, err = resolveFromConnectionString(envVars.connectionString(), granularFlags, envVars)
	} else {
		cfg, err = resolveFromGranularParams(granularFlags, envVars, projectConfig)
	}

	if err != nil {
		return nil, err
	}

	applyCloudAuth(cfg, azureFlags, envVars, projectConfig)

	return cfg, nil
}

// applyCloudAuth switches the auth method when cloud credentials are
// configured. Azure flags and env vars win over the project config.
func applyCloudAuth(cfg *pgload.ConnectionConfig, flags *AzureFlags, env *EnvVars, projectConfig *config.ProjectConfig) {
	tenantID := flags.TenantID
	if tenantID == "" {
		tenantID = env.AZURE_TENANT_ID
	}

	clientID := flags.ClientID
	if clientID == "" {
		clientID = env.AZURE_CLIENT_ID
	}

	if tenantID != "" || clientID != "" {
		cfg.AuthMethod = pgload.AuthMethodAzureEntraID
		cfg.AzureTenantID = tenantID
		cfg.AzureClientID = clientID
		cfg.AzureClientSecret = env.AZURE_CLIENT_SECRET
		return
	}

	if projectConfig == nil {
		return
	}

	pc := projectConfig.Connection
	switch strings.ToLower(pc.AuthMethod) {
	case "aws_iam":
		cfg.AuthMethod = pgload.AuthMethodAWSIAM
		cfg.AWSRegion = pc.AWSRegion
	case "google_iam":
		cfg.AuthMethod = pgload.AuthMethodGoogleIAM
		cfg.GoogleInstance = pc.GoogleInstance
	case "azure":
		cfg.AuthMethod = pgload.AuthMethodAzureEntraID
		cfg.AzureTenantID = pc.AzureTenantID
		cfg.AzureClientID = pc.AzureClientID
		cfg.AzureClientSecret = env.AZURE_CLIENT_SECRET
	}
}

// resolveFromConnectionString parses a connection string and applies
// environment fallbacks for parameters it does not carry, following libpq
// behavior. The --database flag may override the database named in the string.
func resolveFromConnectionString(connStr string, flags *GranularConnFlags, envVars *EnvVars) (*pgload.ConnectionConfig, error) {
	cfg, err := ParseConnectionString(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}

	if flags.Database != "" {
		cfg.Database = flags.Database
	}

	if cfg.SSLMode == "" && envVars.PGSSLMODE != "" {
		cfg.SSLMode = envVars.PGSSLMODE
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "prefer"
	}

	return cfg, nil
}

// resolveFromGranularParams builds a ConnectionConfig from flags,
// environment variables, and pgload.yaml with flag > env > yaml > default
// precedence per parameter.
func resolveFromGranularParams(
	flags *GranularConnFlags,
	envVars *EnvVars,
	projectConfig *config.ProjectConfig,
) (*pgload.ConnectionConfig, error) {
	cfg := &pgload.ConnectionConfig{
		AuthMethod:       pgload.AuthMethodStandard,
		AdditionalParams: make(map[string]string),
	}

	var pc config.ConnectionConfig
	if projectConfig != nil {
		pc = projectConfig.Connection
	}

	cfg.Host = flags.Host
	if cfg.Host == "" {
		cfg.Host = envVars.PGHOST
	}
	if cfg.Host == "" {
		cfg.Host = pc.Host
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}

	if flags.Port != 0 {
		cfg.Port = flags.Port
	} else if envVars.PGPORT != "" {
		port, err := strconv.Atoi(envVars.PGPORT)
		if err != nil {
			return nil, fmt.Errorf("invalid $PGPORT value '%s': must be an integer", envVars.PGPORT)
		}
		cfg.Port = port
	} else if pc.Port != 0 {
		cfg.Port = pc.Port
	} else {
		cfg.Port = 5432
	}

	cfg.Username = flags.Username
	if cfg.Username == "" {
		cfg.Username = envVars.PGUSER
	}
	if cfg.Username == "" {
		cfg.Username = pc.Username
	}
	if cfg.Username == "" {
		if currentUser := os.Getenv("USER"); currentUser != "" {
			cfg.Username = currentUser
		} else if currentUser := os.Getenv("USERNAME"); currentUser != "" {
			cfg.Username = currentUser
		}
	}

	cfg.Password = envVars.PGPASSWORD

	cfg.Database = flags.Database
	if cfg.Database == "" {
		cfg.Database = envVars.PGDATABASE
	}
	if cfg.Database == "" {
		cfg.Database = pc.Database
	}

	cfg.SSLMode = flags.SSLMode
	if cfg.SSLMode == "" {
		cfg.SSLMode = envVars.PGSSLMODE
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = pc.SSLMode
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "prefer"
	}

	return cfg, nil
}
