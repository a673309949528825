package extract

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseMoney converts a Brazilian-formatted monetary capture into a float.
// With both separators present the dot is the thousands mark and the comma
// the decimal mark ("1.234,56"); with only a comma it is the decimal mark
// ("1234,56"). A leading "R$" and spaces are discarded.
func ParseMoney(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	clean := strings.ReplaceAll(s, "R$", "")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.TrimSpace(clean)
	switch {
	case strings.Contains(clean, ",") && strings.Contains(clean, "."):
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case strings.Contains(clean, ","):
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// looksLikeDate reports whether a digit run reads as a DDMMYYYY (8 digits)
// or DMMYYYY (7 digits) date with a year between 2000 and 2030. Number
// candidates that collide with dates are rejected by the cascades.
func looksLikeDate(val string) bool {
	clean := strings.NewReplacer("/", "", ".", "", "-", "").Replace(strings.TrimSpace(val))
	if !allDigits(clean) {
		return false
	}
	switch len(clean) {
	case 8:
		d, _ := strconv.Atoi(clean[:2])
		m, _ := strconv.Atoi(clean[2:4])
		y, _ := strconv.Atoi(clean[4:])
		return d >= 1 && d <= 31 && m >= 1 && m <= 12 && y >= 2000 && y <= 2030
	case 7:
		d, _ := strconv.Atoi(clean[:1])
		m, _ := strconv.Atoi(clean[1:3])
		y, _ := strconv.Atoi(clean[3:])
		return d >= 1 && d <= 9 && m >= 1 && m <= 12 && y >= 2000 && y <= 2030
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
