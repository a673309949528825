package extract

import (
	"regexp"
	"strings"
)

var sameLineCompanyRe = regexp.MustCompile(`(?i)(?:LTDA|S\.?A\.?|ME|EPP|EIRELI|S/A)`)

// FindSection cuts the slice of text between the first occurrence of any
// start label and the nearest later end label. The cut begins right after
// the matched label; when the line break falls within the next 50 bytes and
// the remainder of the label's line carries no company suffix, it begins on
// the following line instead. Sections of 20 bytes or fewer report not
// found.
func FindSection(text string, startLabels, endLabels []string) (string, bool) {
	upper := strings.ToUpper(text)
	start := -1
	for _, label := range startLabels {
		ul := strings.ToUpper(label)
		if pos := strings.Index(upper, ul); pos != -1 {
			start = pos + len(ul)
			break
		}
	}
	if start == -1 {
		return "", false
	}

	if nl := strings.Index(text[start:], "\n"); nl != -1 {
		if !sameLineCompanyRe.MatchString(text[start:start+nl]) && nl < 50 {
			start += nl + 1
		}
	}

	end := len(text)
	for _, label := range endLabels {
		if pos := strings.Index(upper[start:], strings.ToUpper(label)); pos != -1 && start+pos < end {
			end = start + pos
		}
	}
	section := text[start:end]
	if len(section) <= 20 {
		return "", false
	}
	return section, true
}
