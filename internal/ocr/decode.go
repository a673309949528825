package ocr

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/fiscaldata/nf-extractor/internal/extract"
)

// Decoded is the direct-text view of a PDF: the full layout-preserving text,
// the per-page split, and the positioned words when the bbox pass succeeds.
type Decoded struct {
	Text  string
	Pages []string
	Words []extract.Word
}

// Decode extracts the embedded page text of a PDF. Word geometry is
// best-effort: a bbox failure is logged and leaves Words nil, since every
// cascade also works from plain text.
func (e *Extractor) Decode(ctx context.Context, pdf []byte) (Decoded, error) {
	path, cleanup, err := tempPDF(pdf)
	if err != nil {
		return Decoded{}, err
	}
	defer cleanup()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Decoded{}, fmt.Errorf("pdftotext: %w: %s", err, firstLine(errb))
	}

	d := Decoded{Text: string(out)}
	// Form-feed is the page separator.
	d.Pages = strings.Split(d.Text, "\f")

	words, err := e.decodeWords(ctx, path)
	if err != nil {
		e.logger.Warn("ocr.bbox.failed", "error", err)
	} else {
		d.Words = words
	}
	return d, nil
}

// bbox output of pdftotext: an XHTML document with one <page> element per
// page and one <word> element per positioned token.
type bboxWord struct {
	XMin float64 `xml:"xMin,attr"`
	YMin float64 `xml:"yMin,attr"`
	XMax float64 `xml:"xMax,attr"`
	YMax float64 `xml:"yMax,attr"`
	Text string  `xml:",chardata"`
}

type bboxPage struct {
	Words []bboxWord `xml:"word"`
}

type bboxFile struct {
	Pages []bboxPage `xml:"body>doc>page"`
}

func (e *Extractor) decodeWords(ctx context.Context, path string) ([]extract.Word, error) {
	// pdftotext -bbox <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-bbox", path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext -bbox: %w: %s", err, firstLine(errb))
	}
	return parseBBox(out)
}

func parseBBox(data []byte) ([]extract.Word, error) {
	var f bboxFile
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bbox xml: %w", err)
	}
	var words []extract.Word
	for p, page := range f.Pages {
		for _, w := range page.Words {
			text := strings.TrimSpace(w.Text)
			if text == "" {
				continue
			}
			words = append(words, extract.Word{
				Page:   p + 1,
				Text:   text,
				Left:   w.XMin,
				Top:    w.YMin,
				Right:  w.XMax,
				Bottom: w.YMax,
			})
		}
	}
	return words, nil
}
