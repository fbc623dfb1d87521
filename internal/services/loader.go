// Package services orchestrates the load workflow: schema extraction,
// table creation, CSV normalization, and bulk copy.
package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vvka-141/pgload/internal/dataset"
	"github.com/vvka-141/pgload/internal/db"
	"github.com/vvka-141/pgload/internal/files/filesystem"
	"github.com/vvka-141/pgload/internal/normalize"
	"github.com/vvka-141/pgload/internal/schema"
	"github.com/vvka-141/pgload/pkg/pgload"
)

type connectFunc func(ctx context.Context, connConfig *pgload.ConnectionConfig) (pgload.DBConnection, func(), error)

// LoadService orchestrates a one-shot CSV load into PostgreSQL.
//
// Thread-Safety: NOT safe for concurrent Load() calls on the same instance.
// Create separate instances for concurrent loads.
type LoadService struct {
	connectorFactory func(*pgload.ConnectionConfig) (pgload.Connector, error)
	approver         pgload.Approver
	logger           pgload.Logger
	fs               filesystem.Provider
	connect          connectFunc
}

// NewLoadService creates a LoadService with all dependencies injected.
// Panics on nil dependencies; those are programmer errors that should fail
// loudly at startup rather than as nil dereferences mid-run.
func NewLoadService(
	connectorFactory func(*pgload.ConnectionConfig) (pgload.Connector, error),
	approver pgload.Approver,
	logger pgload.Logger,
	fs filesystem.Provider,
) *LoadService {
	if connectorFactory == nil {
		panic("connectorFactory cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fs == nil {
		panic("fs cannot be nil")
	}

	svc := &LoadService{
		connectorFactory: connectorFactory,
		approver:         approver,
		logger:           logger,
		fs:               fs,
	}
	svc.connect = svc.defaultConnect
	return svc
}

func (s *LoadService) defaultConnect(ctx context.Context, connConfig *pgload.ConnectionConfig) (pgload.DBConnection, func(), error) {
	connector, err := s.connectorFactory(connConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create connector: %w", err)
	}

	pool, err := connector.Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", pgload.ErrConnectionFailed, err)
	}

	conn := db.NewPoolAdapter(pool)
	cleanup := func() { pool.Close() }
	return conn, cleanup, nil
}

// Load executes the full workflow: parse the schema file, create the table
// if absent, normalize the CSV, and bulk copy the rows.
func (s *LoadService) Load(ctx context.Context, config pgload.LoadConfig) (*pgload.LoadResult, error) {
	start := time.Now()

	runID := uuid.New()
	s.logger.Verbose("Starting load run %s", runID)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ddl, sch, err := s.readSchema(config)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Schema declares table '%s' with %d column(s)", sch.Table, len(sch.Columns))

	rows, err := s.readData(config, sch)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Normalized %d row(s) from %s", rows.Len(), s.dataPath(config))

	connConfig, err := s.resolveConnection(config)
	if err != nil {
		return nil, err
	}

	conn, cleanup, err := s.connect(ctx, connConfig)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	created, err := s.ensureTable(ctx, conn, sch.Table, ddl)
	if err != nil {
		return nil, err
	}

	if !created && config.Truncate {
		if err := s.truncateTable(ctx, conn, sch.Table); err != nil {
			return nil, err
		}
	}

	copied, err := conn.CopyFrom(ctx,
		pgx.Identifier{sch.Table},
		rows.Columns,
		pgx.CopyFromRows(rows.Rows),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: bulk copy into '%s': %w", pgload.ErrLoadFailed, sch.Table, err)
	}

	if copied != int64(rows.Len()) {
		return nil, fmt.Errorf("%w: copied %d of %d rows into '%s'", pgload.ErrLoadFailed, copied, rows.Len(), sch.Table)
	}

	result := &pgload.LoadResult{
		RunID:        runID,
		Table:        sch.Table,
		RowsLoaded:   copied,
		TableCreated: created,
		Duration:     time.Since(start),
	}

	s.logger.Info("✓ Loaded %d row(s) into '%s' in %s", result.RowsLoaded, result.Table, result.Duration.Round(time.Millisecond))
	return result, nil
}

// Check parses the schema and data files and reports what a load would do
// without connecting to the database.
func (s *LoadService) Check(config pgload.LoadConfig) (*CheckReport, error) {
	if config.SourcePath == "" {
		return nil, fmt.Errorf("SourcePath is required: %w", pgload.ErrInvalidConfig)
	}

	_, sch, err := s.readSchema(config)
	if err != nil {
		return nil, err
	}

	rows, err := s.readData(config, sch)
	if err != nil {
		return nil, err
	}

	report := &CheckReport{
		Table:   sch.Table,
		Columns: make([]ColumnReport, len(sch.Columns)),
		Rows:    rows.Len(),
	}
	for i, col := range sch.Columns {
		report.Columns[i] = ColumnReport{
			Name:  col.Name,
			Type:  col.RawType,
			Class: col.Type.String(),
			Nulls: rows.NullCount(i),
		}
	}
	return report, nil
}

// CheckReport summarizes what a load run would do.
type CheckReport struct {
	Table   string
	Columns []ColumnReport
	Rows    int
}

// ColumnReport describes one destination column and its null count after
// normalization.
type ColumnReport struct {
	Name  string
	Type  string
	Class string
	Nulls int
}

func (s *LoadService) schemaPath(config pgload.LoadConfig) string {
	name := config.SchemaFile
	if name == "" {
		name = pgload.DefaultSchemaFileName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(config.SourcePath, name)
}

func (s *LoadService) dataPath(config pgload.LoadConfig) string {
	name := config.DataFile
	if name == "" {
		name = pgload.DefaultDataFileName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(config.SourcePath, name)
}

// readSchema reads and parses the schema file, returning the raw DDL and
// the extracted schema.
func (s *LoadService) readSchema(config pgload.LoadConfig) (string, *schema.Schema, error) {
	path := s.schemaPath(config)

	content, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s", pgload.ErrSchemaFileNotFound, path)
		}
		return "", nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	sch, err := schema.Parse(string(content))
	if err != nil {
		return "", nil, fmt.Errorf("schema file %s: %w", path, err)
	}

	return string(content), sch, nil
}

// readData reads the CSV file and normalizes it against the schema.
func (s *LoadService) readData(config pgload.LoadConfig, sch *schema.Schema) (*normalize.Result, error) {
	path := s.dataPath(config)

	r, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer r.Close()

	ds, err := dataset.Read(r)
	if err != nil {
		return nil, fmt.Errorf("data file %s: %w", path, err)
	}

	rows, err := normalize.Normalize(ds, sch)
	if err != nil {
		return nil, fmt.Errorf("data file %s: %w", path, err)
	}

	return rows, nil
}

// resolveConnection parses the connection string and applies auth settings
// from the load config.
func (s *LoadService) resolveConnection(config pgload.LoadConfig) (*pgload.ConnectionConfig, error) {
	connConfig, err := db.ParseConnectionString(config.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if connConfig.AppName == "" {
		connConfig.AppName = "pgload"
	}

	if config.AuthMethod != pgload.AuthMethodStandard {
		connConfig.AuthMethod = config.AuthMethod
	}
	if config.AzureTenantID != "" {
		connConfig.AzureTenantID = config.AzureTenantID
	}
	if config.AzureClientID != "" {
		connConfig.AzureClientID = config.AzureClientID
	}
	if config.AzureClientSecret != "" {
		connConfig.AzureClientSecret = config.AzureClientSecret
	}
	if config.AWSRegion != "" {
		connConfig.AWSRegion = config.AWSRegion
	}
	if config.GoogleInstance != "" {
		connConfig.GoogleInstance = config.GoogleInstance
	}

	return connConfig, nil
}

// ensureTable creates the destination table from the schema file DDL when
// it does not exist yet. Returns whether the table was created.
func (s *LoadService) ensureTable(ctx context.Context, conn pgload.DBConnection, table, ddl string) (bool, error) {
	var exists bool
	if err := conn.QueryRow(ctx, queryTableExists, table).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check if table '%s' exists: %w", table, err)
	}

	if exists {
		s.logger.Verbose("Table '%s' already exists", table)
		return false, nil
	}

	s.logger.Info("Table '%s' does not exist. Creating...", table)
	if _, err := conn.Exec(ctx, ddl); err != nil {
		return false, fmt.Errorf("%w: creating table '%s': %w", pgload.ErrLoadFailed, table, err)
	}

	return true, nil
}

// truncateTable empties the destination table after approval.
func (s *LoadService) truncateTable(ctx context.Context, conn pgload.DBConnection, table string) error {
	s.logger.Verbose("Truncate requested for table '%s'. Requesting approval.", table)

	approved, err := s.approver.RequestApproval(ctx, table)
	if err != nil {
		return fmt.Errorf("approval request failed: %w", err)
	}
	if !approved {
		return pgload.ErrApprovalDenied
	}

	stmt := fmt.Sprintf("TRUNCATE TABLE %s", pgx.Identifier{table}.Sanitize())
	if _, err := conn.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("%w: truncating table '%s': %w", pgload.ErrLoadFailed, table, err)
	}

	s.logger.Verbose("Table '%s' truncated", table)
	return nil
}
