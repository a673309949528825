package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/internal/common"
)

// stubRunner fakes the poppler and tesseract binaries. pdftoppm calls write
// placeholder page files so the glob in rasterize finds them; tesseract calls
// answer with the text registered for the last requested resolution.
type stubRunner struct {
	pages     int
	textByDPI map[string]string
	layout    string
	bbox      string
	bboxErr   bool
	failFor   string

	calls   [][]string
	lastDPI string
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.failFor != "" && strings.Contains(name, r.failFor) {
		return nil, []byte("stub failure"), errors.New("exit status 1")
	}
	switch {
	case strings.HasSuffix(name, "pdftoppm"):
		for i, a := range args {
			if a == "-r" && i+1 < len(args) {
				r.lastDPI = args[i+1]
			}
		}
		prefix := args[len(args)-1]
		for i := 1; i <= r.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case strings.HasSuffix(name, "tesseract"):
		return []byte(r.textByDPI[r.lastDPI]), nil, nil
	case strings.HasSuffix(name, "pdftotext"):
		for _, a := range args {
			if a == "-bbox" {
				if r.bboxErr {
					return nil, []byte("bbox failure"), errors.New("exit status 1")
				}
				return []byte(r.bbox), nil, nil
			}
		}
		return []byte(r.layout), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected binary %q", name)
}

func (r *stubRunner) rasterCalls() []string {
	var dpis []string
	for _, call := range r.calls {
		if !strings.HasSuffix(call[0], "pdftoppm") {
			continue
		}
		for i, a := range call {
			if a == "-r" && i+1 < len(call) {
				dpis = append(dpis, call[i+1])
			}
		}
	}
	return dpis
}

func newStubbedExtractor(cfg Config, r *stubRunner) *Extractor {
	e := NewExtractor(cfg, nil)
	e.runner = r
	return e
}

func TestRecognize(t *testing.T) {
	t.Run("joins pages and honors the page limit", func(t *testing.T) {
		r := &stubRunner{pages: 3, textByDPI: map[string]string{"300": "TEXTO DA PAGINA"}}
		e := newStubbedExtractor(Config{MaxPages: 2}, r)

		got, err := e.Recognize(context.Background(), []byte("%PDF-1.4"), 0)
		require.NoError(t, err)
		assert.Equal(t, "TEXTO DA PAGINA\n\f\nTEXTO DA PAGINA", got)

		var tessCalls [][]string
		for _, call := range r.calls {
			if strings.HasSuffix(call[0], "tesseract") {
				tessCalls = append(tessCalls, call)
			}
		}
		require.Len(t, tessCalls, 2)
		assert.Contains(t, tessCalls[0], "-l")
		assert.Contains(t, tessCalls[0], "por")
		assert.Contains(t, tessCalls[0], "--psm")
		assert.Contains(t, tessCalls[0], "4")
		assert.Contains(t, tessCalls[0], "--oem")
		assert.Contains(t, tessCalls[0], "3")
	})

	t.Run("clamps the requested resolution", func(t *testing.T) {
		r := &stubRunner{pages: 1, textByDPI: map[string]string{"600": "ALTA", "72": "BAIXA"}}
		e := newStubbedExtractor(Config{}, r)

		got, err := e.Recognize(context.Background(), []byte("%PDF-1.4"), 1200)
		require.NoError(t, err)
		assert.Equal(t, "ALTA", got)

		got, err = e.Recognize(context.Background(), []byte("%PDF-1.4"), 30)
		require.NoError(t, err)
		assert.Equal(t, "BAIXA", got)

		assert.Equal(t, []string{"600", "72"}, r.rasterCalls())
	})

	t.Run("empty recognition output is an error", func(t *testing.T) {
		r := &stubRunner{pages: 2, textByDPI: map[string]string{"300": "   "}}
		e := newStubbedExtractor(Config{}, r)

		_, err := e.Recognize(context.Background(), []byte("%PDF-1.4"), 300)
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrOCRFailed))
	})

	t.Run("rasterizer failure aborts", func(t *testing.T) {
		r := &stubRunner{pages: 1, failFor: "pdftoppm"}
		e := newStubbedExtractor(Config{}, r)

		_, err := e.Recognize(context.Background(), []byte("%PDF-1.4"), 300)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pdftoppm")
	})

	t.Run("no rendered pages is an ocr failure", func(t *testing.T) {
		r := &stubRunner{pages: 0}
		e := newStubbedExtractor(Config{}, r)

		_, err := e.Recognize(context.Background(), []byte("%PDF-1.4"), 300)
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrOCRFailed))
	})
}

func TestClampDPI(t *testing.T) {
	tests := []struct {
		name     string
		dpi      int
		fallback int
		want     int
	}{
		{"zero uses the fallback", 0, 300, 300},
		{"negative uses the fallback", -1, 240, 240},
		{"below floor", 30, 300, 72},
		{"above ceiling", 1200, 300, 600},
		{"in range unchanged", 400, 300, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampDPI(tt.dpi, tt.fallback))
		})
	}
}

func TestRenderPages(t *testing.T) {
	r := &stubRunner{pages: 3}
	e := newStubbedExtractor(Config{}, r)

	imgs, err := e.RenderPages(context.Background(), []byte("%PDF-1.4"), 200, 2)
	require.NoError(t, err)
	require.Len(t, imgs, 2)
	assert.Equal(t, []byte("png"), imgs[0])
	assert.Equal(t, []string{"200"}, r.rasterCalls())
}
