package budget

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/studyease/backend/core"
)

// CoerceAmount converts a stored amount into a float64.
// Amounts are stored either as numbers or as decimal strings ("12.50");
// anything else (missing value, non-numeric text, NaN/Inf) fails with an InvalidAmount error.
func CoerceAmount(v interface{}) (float64, error) {
	var f float64
	switch a := v.(type) {
	case nil:
		return 0, core.NewError(core.KindInvalidAmount, "coercing amount", "missing amount")
	case float64:
		f = a
	case float32:
		f = float64(a)
	case int:
		f = float64(a)
	case int32:
		f = float64(a)
	case int64:
		f = float64(a)
	case json.Number:
		return parseAmount(a.String())
	case string:
		return parseAmount(a)
	case fmt.Stringer: // e.g. decimal types from the store driver
		return parseAmount(a.String())
	default:
		return 0, core.NewErrorf(core.KindInvalidAmount, "coercing amount", "unsupported amount type %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, core.NewErrorf(core.KindInvalidAmount, "coercing amount", "amount %v is not a finite number", f)
	}
	return f, nil
}

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, core.NewError(core.KindInvalidAmount, "coercing amount", "empty amount")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, core.NewErrorf(core.KindInvalidAmount, "coercing amount", "%q is not a number", s)
	}
	return f, nil
}
