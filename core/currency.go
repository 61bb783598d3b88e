package core

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeValue parses a currency string in Brazilian convention (dot as
// thousands separator, comma as decimal separator) and reformats it as
// "R$ 1.234,56" with two decimal places. Any character other than digits,
// commas and dots is stripped before parsing. Returns ErrUnparseableValue
// when the cleaned string is not a number; the caller must skip the record.
//
// NormalizeValue is idempotent on its own output.
func NormalizeValue(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, raw)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnparseableValue, raw)
	}
	return "R$ " + formatBrazilian(num), nil
}

// formatBrazilian renders num with dot thousands separators and a comma
// decimal separator.
func formatBrazilian(num float64) string {
	s := strconv.FormatFloat(num, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)
	return strings.Join(groups, ".") + "," + fracPart
}
