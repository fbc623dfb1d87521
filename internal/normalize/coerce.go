package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/pgload/internal/schema"
)

// dateLayouts are tried in order for Date columns. The set covers the
// formats seen in the feeds this tool ingests; anything else becomes NULL.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02.01.2006",
}

// coerceValue converts one raw cell to a typed value according to the
// column's TypeClass. The raw value has already passed sentinel
// replacement, so it is known to be non-empty. A nil return means the
// value could not be coerced and loads as NULL.
func coerceValue(raw string, class schema.TypeClass) any {
	switch class {
	case schema.Integer:
		return coerceInteger(raw)
	case schema.Float:
		return coerceFloat(raw)
	case schema.Boolean:
		return coerceBoolean(raw)
	case schema.Date:
		return coerceDate(raw)
	case schema.Text:
		return raw
	default:
		// Passthrough: hand the string to the driver unchanged.
		return raw
	}
}

func coerceInteger(raw string) any {
	s := strings.TrimSpace(raw)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	// Feeds sometimes serialize whole numbers as "50000.0". float64 cannot
	// represent MaxInt64 exactly, so the upper bound must be strict: the
	// nearest float at or above 1<<63 does not fit in int64.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
	}
	return nil
}

func coerceFloat(raw string) any {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		// A parsed NaN or infinity is still a missing value; NULL is the
		// only missing representation in the output.
		return nil
	}
	return f
}

// coerceBoolean parses explicit boolean literals. Unrecognized text
// becomes NULL instead of inheriting host-language truthiness.
func coerceBoolean(raw string) any {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "yes", "y", "1":
		return true
	case "false", "f", "no", "n", "0":
		return false
	default:
		return nil
	}
}

func coerceDate(raw string) any {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return nil
}
