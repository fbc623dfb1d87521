package cli

import (
	"os"

	"github.com/vvka-141/pgload/internal/config"
	"github.com/vvka-141/pgload/internal/db"
	"github.com/vvka-141/pgload/pkg/pgload"
)

// connectionStringFromEnv returns the first non-empty connection string from
// PGLOAD_CONNECTION_STRING or DATABASE_URL environment variables.
func connectionStringFromEnv() string {
	if s := os.Getenv("PGLOAD_CONNECTION_STRING"); s != "" {
		return s
	}
	return os.Getenv("DATABASE_URL")
}

// resolveConnection consolidates connection resolution for the load command:
// connection string flag, granular flags, Azure flags, environment
// variables, and pgload.yaml.
func resolveConnection(
	connStringFlag string,
	granularFlags *db.GranularConnFlags,
	azureFlags *db.AzureFlags,
	projectConfig *config.ProjectConfig,
) (*pgload.ConnectionConfig, error) {
	connString := connStringFlag
	if connString == "" && granularFlags.IsEmpty() {
		connString = connectionStringFromEnv()
	}

	envVars := db.LoadFromEnvironment()

	return db.ResolveConnectionParams(
		connString,
		granularFlags,
		azureFlags,
		envVars,
		projectConfig,
	)
}
