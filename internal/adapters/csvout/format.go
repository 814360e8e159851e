package csvout

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat renders v the way the legacy datasets did: shortest decimal
// form, always with a fractional part ("100.0", "12.5", "-3.25").
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatInt(v int) string { return strconv.Itoa(v) }

// Absent gated fields render either as an empty cell or as zero, per column.

func blankFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return formatFloat(*p)
}

func zeroFloat(p *float64) string {
	if p == nil {
		return formatFloat(0)
	}
	return formatFloat(*p)
}

func zeroInt(p *int) string {
	if p == nil {
		return "0"
	}
	return formatInt(*p)
}

func blankString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
