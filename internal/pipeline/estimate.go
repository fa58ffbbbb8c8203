package pipeline

import (
	"strconv"
	"strings"
)

// NormalizeEstimate converts a raw monetary string ("$12,500 approx") into
// its numeric value. Every character that is not a decimal digit or a
// decimal point is stripped, then the longest valid leading number is
// parsed. Returns nil when the input is absent or nothing numeric survives;
// an unparseable string degrades to absence, never an error.
func NormalizeEstimate(raw *string) *float64 {
	if raw == nil {
		return nil
	}

	v, ok := parseLeadingNumber(stripNonNumeric(*raw))
	if !ok {
		return nil
	}
	return &v
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseLeadingNumber parses the longest prefix that forms a valid float:
// digits with at most one decimal point, so "25000.50.25" parses as
// 25000.50. The input contains only digits and dots; a prefix without any
// digit does not parse.
func parseLeadingNumber(s string) (float64, bool) {
	end := 0
	dotSeen := false
	for end < len(s) {
		if s[end] == '.' {
			if dotSeen {
				break
			}
			dotSeen = true
		}
		end++
	}

	candidate := s[:end]
	if !strings.ContainsAny(candidate, "0123456789") {
		return 0, false
	}

	v, err := strconv.ParseFloat(candidate, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatEstimate renders a numeric estimate with the fewest digits that
// round-trip, so 1500 prints as "1500" and 24999.99 keeps its cents.
func formatEstimate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
