// Package db resolves connection parameters, parses connection strings,
// and establishes pgx connection pools for standard and cloud IAM
// authentication methods.
package db
