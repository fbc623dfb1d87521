package schema

import (
	"fmt"
	"strings"

	"github.com/vvka-141/pgload/pkg/pgload"
)

// tableConstraintKeywords are tokens that begin a table-level constraint
// entry inside the column list. Entries starting with one of these carry
// no column declaration and are skipped.
var tableConstraintKeywords = map[string]bool{
	"PRIMARY":    true,
	"FOREIGN":    true,
	"UNIQUE":     true,
	"CONSTRAINT": true,
	"CHECK":      true,
	"EXCLUDE":    true,
}

// Parse extracts the table name and ordered column list from DDL text
// containing a single CREATE TABLE statement.
//
// Keyword matching is case-insensitive and the statement body is captured
// up to the first ");". Column entries are split on top-level commas; for
// each entry the first token is the column name and the second is the type
// token (trailing constraint keywords are ignored). Parse does not validate
// SQL beyond this structural extraction: malformed but matching text yields
// a best-effort schema.
//
// Returns pgload.ErrSchemaParse if no CREATE TABLE statement is found and
// pgload.ErrDuplicateColumn if a column name is declared twice.
func Parse(ddl string) (*Schema, error) {
	table, body, found := findCreateTable(ddl)
	if !found {
		return nil, fmt.Errorf("no CREATE TABLE statement found in schema file: %w", pgload.ErrSchemaParse)
	}

	sch := &Schema{Table: table}
	seen := make(map[string]bool)

	for _, entry := range splitTopLevel(body) {
		fields := strings.Fields(entry)
		if len(fields) < 2 {
			continue
		}
		if tableConstraintKeywords[strings.ToUpper(fields[0])] {
			continue
		}

		name := fields[0]
		baseType := normalizeTypeToken(fields[1])

		if seen[name] {
			return nil, fmt.Errorf("column %q declared more than once in table %q: %w",
				name, table, pgload.ErrDuplicateColumn)
		}
		seen[name] = true

		sch.Columns = append(sch.Columns, Column{
			Name:    name,
			RawType: baseType,
			Type:    Classify(baseType),
		})
	}

	if len(sch.Columns) == 0 {
		return nil, fmt.Errorf("CREATE TABLE %q declares no columns: %w", table, pgload.ErrSchemaParse)
	}

	return sch, nil
}

// findCreateTable scans the DDL for the CREATE TABLE keywords, reads the
// table identifier, and captures the column list between the opening
// parenthesis and the first ");".
func findCreateTable(ddl string) (table, body string, found bool) {
	lower := strings.ToLower(ddl)

	for i := 0; i < len(lower); {
		idx := strings.Index(lower[i:], "create")
		if idx < 0 {
			return "", "", false
		}
		pos := i + idx
		i = pos + len("create")

		j, ok := expectKeyword(lower, pos, "create")
		if !ok {
			continue
		}
		j, ok = expectKeyword(lower, j, "table")
		if !ok {
			continue
		}

		// Optional IF NOT EXISTS before the table name.
		if k, ok := expectKeyword(lower, j, "if"); ok {
			if k, ok = expectKeyword(lower, k, "not"); ok {
				if k, ok = expectKeyword(lower, k, "exists"); ok {
					j = k
				}
			}
		}

		j = skipSpace(ddl, j)
		start := j
		for j < len(ddl) && isIdentChar(ddl[j]) {
			j++
		}
		if j == start {
			continue
		}
		table = ddl[start:j]

		j = skipSpace(ddl, j)
		if j >= len(ddl) || ddl[j] != '(' {
			continue
		}

		end := strings.Index(ddl[j:], ");")
		if end < 0 {
			continue
		}

		// Body excludes the opening '(' and the ')' preceding ';'.
		return table, ddl[j+1 : j+end], true
	}

	return "", "", false
}

// expectKeyword matches the keyword at pos (case-insensitive input is
// pre-lowered by the caller) followed by at least one whitespace character.
// Returns the position after the trailing whitespace.
func expectKeyword(lower string, pos int, keyword string) (int, bool) {
	pos = skipSpace(lower, pos)
	if !strings.HasPrefix(lower[pos:], keyword) {
		return pos, false
	}
	next := pos + len(keyword)
	if next >= len(lower) || !isSpace(lower[next]) {
		return pos, false
	}
	return skipSpace(lower, next), true
}

// splitTopLevel splits the column list on commas that are not nested
// inside parentheses, so NUMERIC(10,2) stays a single entry.
func splitTopLevel(body string) []string {
	var entries []string
	depth := 0
	start := 0

	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				entries = append(entries, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	entries = append(entries, strings.TrimSpace(body[start:]))

	return entries
}

// normalizeTypeToken strips a parenthesized size/precision suffix from a
// type token and uppercases the base keyword: "VARCHAR(255)" -> "VARCHAR",
// "numeric(10,2)" -> "NUMERIC".
func normalizeTypeToken(token string) string {
	if idx := strings.IndexByte(token, '('); idx >= 0 {
		token = token[:idx]
	}
	return strings.ToUpper(token)
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
