package internal

import (
	"fmt"
	"math"
	"strconv"
)

// printObj returns the display form used by print
func printObj(value interface{}) string {
	if value == nil {
		return "nil"
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", value)
}

// formatNumber drops the fractional part of integral values
func formatNumber(n float64) string {
	if math.Abs(n) >= 1e21 {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// isEqual never coerces, values of different kinds are not equal.
// Instances, functions and classes compare by identity.
func isEqual(a, b interface{}) bool {
	return a == b
}

func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(loxBool); ok {
		return bool(b)
	}
	return true
}
