package extract

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Word is one positioned token of a page layout. Coordinates follow the
// page-text convention: origin at the top-left corner, y growing downward.
type Word struct {
	Page   int
	Text   string
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Strip geometry around a matched label: vertical slack for the run to the
// right, and the window scanned below it.
const (
	rightSlack   = 3.0
	downDepth    = 35.0
	downLeftPad  = 10.0
	downRightPad = 150.0
)

type locate struct {
	labels        []string
	pattern       *regexp.Regexp
	forceVertical bool
}

// nearest runs the proximity search over the document words. Every word
// whose text contains one of the labels anchors a strip to its right (same
// line, strictly right of the label) and a strip below it; the pattern is
// matched inside the concatenated strip text and each hit is scored by its
// strip's distance to the anchor. The smallest distance across all anchors
// on all pages wins; ties keep the first candidate found. Candidates shaped
// like year-prefixed dates or containing '/' or '-' are dropped.
func nearest(words []Word, q locate) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.Left < b.Left
	})

	best := ""
	found := false
	minDist := math.Inf(1)

	for _, anchor := range sorted {
		if !matchesAnyLabel(anchor.Text, q.labels) {
			continue
		}
		for _, c := range stripCandidates(sorted, anchor, q) {
			if len(c.val) == 8 && strings.HasPrefix(c.val, "20") {
				continue
			}
			if strings.ContainsAny(c.val, "/-") {
				continue
			}
			if c.dist < minDist {
				minDist = c.dist
				best = c.val
				found = true
			}
		}
	}
	return best, found
}

type stripHit struct {
	val  string
	dist float64
}

func stripCandidates(sorted []Word, anchor Word, q locate) []stripHit {
	var hits []stripHit

	if !q.forceVertical {
		var strip []Word
		var sb strings.Builder
		for _, c := range sorted {
			if c.Page != anchor.Page {
				continue
			}
			if c.Top >= anchor.Top-rightSlack && c.Bottom <= anchor.Bottom+rightSlack && c.Left > anchor.Right {
				sb.WriteString(c.Text)
				sb.WriteByte(' ')
				strip = append(strip, c)
			}
		}
		if len(strip) > 0 {
			for _, m := range q.pattern.FindAllString(sb.String(), -1) {
				hits = append(hits, stripHit{m, strip[0].Left - anchor.Right})
			}
		}
	}

	var strip []Word
	var sb strings.Builder
	for _, c := range sorted {
		if c.Page != anchor.Page {
			continue
		}
		if c.Top < anchor.Bottom || c.Top > anchor.Bottom+downDepth {
			continue
		}
		center := (c.Left + c.Right) / 2
		if center >= anchor.Left-downLeftPad && center <= anchor.Right+downRightPad {
			sb.WriteString(c.Text)
			sb.WriteByte(' ')
			strip = append(strip, c)
		}
	}
	if len(strip) > 0 {
		for _, m := range q.pattern.FindAllString(sb.String(), -1) {
			hits = append(hits, stripHit{m, strip[0].Top - anchor.Bottom})
		}
	}
	return hits
}

func matchesAnyLabel(text string, labels []string) bool {
	upper := strings.ToUpper(text)
	for _, l := range labels {
		if strings.Contains(upper, strings.ToUpper(l)) {
			return true
		}
	}
	return false
}
