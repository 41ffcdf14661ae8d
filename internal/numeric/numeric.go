package numeric

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Coerce converts an arbitrary value into a finite float64. Numeric types pass
// through unless non-finite; strings are parsed after stripping thousands
// separators; everything else is stringified first. Unparseable or non-finite
// input collapses to zero. Coerce never panics and is idempotent.
func Coerce(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		f, _ := Parse(n)
		return f
	default:
		f, _ := Parse(fmt.Sprint(v))
		return f
	}
}

// Parse parses a decimal string into a float64, accepting comma thousands
// separators ("1,234.56"). The second return reports whether the input parsed
// cleanly; on failure the value is always zero.
func Parse(s string) (float64, bool) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if clean == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}

	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}
