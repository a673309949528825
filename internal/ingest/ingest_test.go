package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfPayload(marker string) []byte {
	return []byte("%PDF-1.4\n" + marker)
}

type zipEntry struct {
	name string
	data []byte
}

func zipPayload(t *testing.T, entries []zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write(e.data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"pdf", pdfPayload("nota"), "PDF"},
		{"zip", zipPayload(t, []zipEntry{{"nota.pdf", pdfPayload("x")}}), "ZIP"},
		{"plain text", []byte("RECIBO DE PAGAMENTO"), ""},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sniff(tt.data))
		})
	}
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".pdf"))
	assert.True(t, AllowedExt("ZIP"))
	assert.False(t, AllowedExt(".png"))
	assert.False(t, AllowedExt(""))
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	nota := writeFile(t, dir, "nfse_recife.pdf", pdfPayload("recife"))
	// A ZIP handed over with a .pdf extension still flattens.
	lote := writeFile(t, dir, "lote_janeiro.pdf", zipPayload(t, []zipEntry{
		{"notas/nfe_filial.pdf", pdfPayload("filial")},
	}))
	texto := writeFile(t, dir, "leiame.pdf", []byte("sem cabecalho"))

	c := NewCollector(nil)
	items := c.Collect([]string{nota, lote, texto, filepath.Join(dir, "inexistente.pdf")})

	require.Len(t, items, 2)
	assert.Equal(t, "nfse_recife.pdf", items[0].Filename)
	assert.Equal(t, pdfPayload("recife"), items[0].Data)
	assert.Equal(t, "nfe_filial.pdf", items[1].Filename)
	assert.Equal(t, pdfPayload("filial"), items[1].Data)
}

func TestFlattenZip(t *testing.T) {
	data := zipPayload(t, []zipEntry{
		{"notas/janeiro/nfse_sp.pdf", pdfPayload("sp")},
		{"notas/NFE_MATRIZ.PDF", pdfPayload("matriz")},
		{"leiame.txt", []byte("ignorado")},
		{"corrompida.pdf", []byte("nao e pdf")},
		{"__MACOSX/._nfse_sp.pdf", []byte{0x00, 0x05, 0x16, 0x07}},
	})

	c := NewCollector(nil)
	items := c.FlattenZip(data, "notas.zip")

	require.Len(t, items, 2)
	assert.Equal(t, "nfse_sp.pdf", items[0].Filename)
	assert.Equal(t, pdfPayload("sp"), items[0].Data)
	assert.Equal(t, "NFE_MATRIZ.PDF", items[1].Filename)
	assert.Equal(t, pdfPayload("matriz"), items[1].Data)
}

func TestFlattenZipInvalidArchive(t *testing.T) {
	c := NewCollector(nil)
	assert.Nil(t, c.FlattenZip([]byte("PK\x03\x04truncado"), "quebrado.zip"))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nfse_recife.pdf", pdfPayload("recife"))
	writeFile(t, dir, filepath.Join("2026", "lote.zip"), zipPayload(t, []zipEntry{{"a.pdf", pdfPayload("a")}}))
	writeFile(t, dir, "planilha.xlsx", []byte("x"))
	writeFile(t, dir, ".parcial.pdf", pdfPayload("parcial"))
	writeFile(t, dir, filepath.Join(".sync", "tmp.pdf"), pdfPayload("tmp"))

	c := NewCollector(nil)
	paths, stats, err := c.ScanDir(dir)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "2026", "lote.zip"), paths[0])
	assert.Equal(t, filepath.Join(dir, "nfse_recife.pdf"), paths[1])
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(0), stats.Failed)
}

func TestScanDirErrors(t *testing.T) {
	c := NewCollector(nil)

	_, _, err := c.ScanDir(filepath.Join(t.TempDir(), "nao_existe"))
	assert.Error(t, err)

	file := writeFile(t, t.TempDir(), "nota.pdf", pdfPayload("x"))
	_, _, err = c.ScanDir(file)
	assert.ErrorContains(t, err, "not a directory")
}

func TestCollectDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "avulsa.pdf", pdfPayload("avulsa"))
	writeFile(t, dir, "lote.zip", zipPayload(t, []zipEntry{
		{"nfe_um.pdf", pdfPayload("um")},
		{"nfe_dois.pdf", pdfPayload("dois")},
	}))

	c := NewCollector(nil)
	items, stats, err := c.CollectDir(dir)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	require.Len(t, items, 3)
	assert.Equal(t, "avulsa.pdf", items[0].Filename)
	assert.Equal(t, "nfe_um.pdf", items[1].Filename)
	assert.Equal(t, "nfe_dois.pdf", items[2].Filename)
}

func TestCollectPaths(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "caixa")
	writeFile(t, sub, "nfe_caixa.pdf", pdfPayload("caixa"))
	loose := writeFile(t, dir, "avulsa.pdf", pdfPayload("avulsa"))

	c := NewCollector(nil)
	items, err := c.CollectPaths([]string{loose, sub})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "avulsa.pdf", items[0].Filename)
	assert.Equal(t, "nfe_caixa.pdf", items[1].Filename)

	_, err = c.CollectPaths([]string{filepath.Join(dir, "sumiu.pdf")})
	assert.Error(t, err)
}
