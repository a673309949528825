package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bboxFixture = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" lang="en" xml:lang="en">
<head>
<title></title>
<meta http-equiv="Content-Type" content="text/html; charset=UTF-8"/>
</head>
<body>
<doc>
  <page width="612.000000" height="792.000000">
    <word xMin="10.500000" yMin="20.250000" xMax="60.000000" yMax="32.000000">CNPJ:</word>
    <word xMin="70.000000" yMin="20.250000" xMax="180.000000" yMax="32.000000">12.345.678/0001-90</word>
    <word xMin="10.000000" yMin="40.000000" xMax="15.000000" yMax="50.000000"> </word>
  </page>
  <page width="612.000000" height="792.000000">
    <word xMin="5.000000" yMin="8.000000" xMax="50.000000" yMax="18.000000">TOTAL</word>
  </page>
</doc>
</body>
</html>`

func TestDecode(t *testing.T) {
	t.Run("text pages and word geometry", func(t *testing.T) {
		r := &stubRunner{
			layout: "PRIMEIRA PAGINA\fSEGUNDA PAGINA",
			bbox:   bboxFixture,
		}
		e := newStubbedExtractor(Config{}, r)

		d, err := e.Decode(context.Background(), []byte("%PDF-1.4"))
		require.NoError(t, err)

		assert.Equal(t, "PRIMEIRA PAGINA\fSEGUNDA PAGINA", d.Text)
		require.Len(t, d.Pages, 2)
		assert.Equal(t, "PRIMEIRA PAGINA", d.Pages[0])
		assert.Equal(t, "SEGUNDA PAGINA", d.Pages[1])

		require.Len(t, d.Words, 3)
		assert.Equal(t, 1, d.Words[0].Page)
		assert.Equal(t, "CNPJ:", d.Words[0].Text)
		assert.InDelta(t, 10.5, d.Words[0].Left, 0.0001)
		assert.InDelta(t, 20.25, d.Words[0].Top, 0.0001)
		assert.InDelta(t, 60.0, d.Words[0].Right, 0.0001)
		assert.InDelta(t, 32.0, d.Words[0].Bottom, 0.0001)
		assert.Equal(t, "12.345.678/0001-90", d.Words[1].Text)
		assert.Equal(t, 2, d.Words[2].Page)
		assert.Equal(t, "TOTAL", d.Words[2].Text)
	})

	t.Run("bbox failure leaves words nil", func(t *testing.T) {
		r := &stubRunner{layout: "TEXTO SIMPLES", bboxErr: true}
		e := newStubbedExtractor(Config{}, r)

		d, err := e.Decode(context.Background(), []byte("%PDF-1.4"))
		require.NoError(t, err)
		assert.Equal(t, "TEXTO SIMPLES", d.Text)
		assert.Nil(t, d.Words)
	})

	t.Run("decoder failure propagates", func(t *testing.T) {
		r := &stubRunner{failFor: "pdftotext"}
		e := newStubbedExtractor(Config{}, r)

		_, err := e.Decode(context.Background(), []byte("%PDF-1.4"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pdftotext")
	})
}

func TestParseBBox(t *testing.T) {
	t.Run("malformed xml", func(t *testing.T) {
		_, err := parseBBox([]byte("<html><body><doc><page>"))
		require.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		words, err := parseBBox([]byte(`<html><body><doc></doc></body></html>`))
		require.NoError(t, err)
		assert.Empty(t, words)
	})
}
