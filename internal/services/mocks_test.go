package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/pgload/pkg/pgload"
)

type mockConnector struct {
	pool *pgxpool.Pool
	err  error
}

func (m *mockConnector) Connect(_ context.Context) (*pgxpool.Pool, error) {
	return m.pool, m.err
}

type mockApprover struct {
	approved bool
	err      error
	requests []string
}

func (m *mockApprover) RequestApproval(_ context.Context, tableName string) (bool, error) {
	m.requests = append(m.requests, tableName)
	return m.approved, m.err
}

type mockLogger struct{}

func (m *mockLogger) Verbose(_ string, _ ...interface{}) {}
func (m *mockLogger) Info(_ string, _ ...interface{})    {}
func (m *mockLogger) Error(_ string, _ ...interface{})   {}

// mockDBConnection records executed statements and simulates table
// existence checks and COPY results.
type mockDBConnection struct {
	tableExists bool
	existsErr   error

	execStatements []string
	execErr        error

	copyTable   pgx.Identifier
	copyColumns []string
	copyRows    [][]any
	copyCount   int64
	copyErr     error
}

func (m *mockDBConnection) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	m.execStatements = append(m.execStatements, sql)
	return pgconn.CommandTag{}, m.execErr
}

func (m *mockDBConnection) QueryRow(_ context.Context, sql string, _ ...any) pgload.Row {
	return &mockRow{exists: m.tableExists, err: m.existsErr}
}

func (m *mockDBConnection) CopyFrom(_ context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	m.copyTable = tableName
	m.copyColumns = columnNames
	for rowSrc.Next() {
		row, err := rowSrc.Values()
		if err != nil {
			return 0, err
		}
		m.copyRows = append(m.copyRows, row)
	}
	if m.copyErr != nil {
		return 0, m.copyErr
	}
	if m.copyCount != 0 {
		return m.copyCount, nil
	}
	return int64(len(m.copyRows)), nil
}

type mockRow struct {
	exists bool
	err    error
}

func (r *mockRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != 1 {
		return fmt.Errorf("expected 1 scan destination, got %d", len(dest))
	}
	b, ok := dest[0].(*bool)
	if !ok {
		return fmt.Errorf("expected *bool destination, got %T", dest[0])
	}
	*b = r.exists
	return nil
}
