// Package schema extracts an ordered column/type description from a
// single-table CREATE TABLE statement.
//
// The parser deliberately covers only the narrow DDL subset pgload needs:
// one CREATE TABLE with a parenthesized column list. Constraint keywords
// (NOT NULL, PRIMARY KEY, ...) are tolerated and ignored; only the column
// name and the leading type token matter. Declaration order is preserved
// because it defines the positional column order of the bulk-copy stream.
package schema
