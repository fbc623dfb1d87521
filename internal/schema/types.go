package schema

import "strings"

// TypeClass classifies a declared SQL type into one of the coercion
// behaviors the normalizer understands.
type TypeClass int

const (
	// Passthrough leaves values unchanged. Any type token the classifier
	// does not recognize falls into this class.
	Passthrough TypeClass = iota

	// Integer coerces values via integer parsing; failures become NULL.
	Integer

	// Float coerces values via float parsing; failures become NULL.
	Float

	// Boolean coerces recognized boolean literals; everything else becomes NULL.
	Boolean

	// Date coerces values via permissive timestamp parsing; failures become NULL.
	Date

	// Text keeps values as strings.
	Text
)

// String returns a human-readable name for the TypeClass.
func (t TypeClass) String() string {
	switch t {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Boolean:
		return "boolean"
	case Date:
		return "date"
	case Text:
		return "text"
	default:
		return "passthrough"
	}
}

// Column is a single column declaration: the name as written in the DDL,
// the normalized base type token (uppercased, parameters stripped), and
// the derived TypeClass.
type Column struct {
	Name    string
	RawType string
	Type    TypeClass
}

// Schema is the ordered column list of one CREATE TABLE statement.
// Order is significant: it defines the column order of normalized output
// rows and of the positional COPY stream.
type Schema struct {
	Table   string
	Columns []Column
}

// ColumnNames returns the column names in declaration order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Classify maps a base type token (already uppercased, parameters stripped)
// to its TypeClass. Unrecognized tokens map to Passthrough so that unusual
// column types are loaded verbatim rather than rejected.
func Classify(baseType string) TypeClass {
	switch strings.ToUpper(baseType) {
	case "INT", "INTEGER", "BIGINT":
		return Integer
	case "FLOAT", "NUMERIC", "DECIMAL":
		return Float
	case "BOOLEAN":
		return Boolean
	case "DATE":
		return Date
	case "TEXT":
		return Text
	default:
		return Passthrough
	}
}
