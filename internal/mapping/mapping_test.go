package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

const tableJSON = `{
	"98.765.432/0001-10": {"coligada": "01", "filial": "003", "nome": "FILIAL RECIFE"},
	"11222333000144": {"coligada": "02", "filial": "001", "nome": ""}
}`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filiais.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("keys normalized to digits", func(t *testing.T) {
		m, err := Load(writeTable(t, tableJSON), nil)
		require.NoError(t, err)
		assert.Equal(t, 2, m.Len())

		u, ok := m.Lookup("98765432000110")
		require.True(t, ok)
		assert.Equal(t, "01", u.Coligada)
		assert.Equal(t, "003", u.Filial)
		assert.Equal(t, "FILIAL RECIFE", u.Nome)

		u, ok = m.Lookup("11.222.333/0001-44")
		require.True(t, ok)
		assert.Equal(t, "02", u.Coligada)
	})

	t.Run("missing file leaves usable empty mapper", func(t *testing.T) {
		m, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
		require.Error(t, err)
		require.NotNil(t, m)
		_, ok := m.Lookup("98765432000110")
		assert.False(t, ok)
	})

	t.Run("malformed file", func(t *testing.T) {
		m, err := Load(writeTable(t, "{broken"), nil)
		require.Error(t, err)
		assert.Equal(t, 0, m.Len())
	})
}

func TestLookupEmpty(t *testing.T) {
	m := New(nil)
	_, ok := m.Lookup("")
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	load := func(t *testing.T) *Mapper {
		t.Helper()
		m, err := Load(writeTable(t, tableJSON), nil)
		require.NoError(t, err)
		return m
	}

	t.Run("recipient id wins and mapped name overwrites", func(t *testing.T) {
		m := load(t)
		doc := fiscal.NewDocument("nota.pdf")
		doc.Emitente = &fiscal.Entity{CNPJ: "11222333000144"}
		doc.Destinatario = &fiscal.Entity{CNPJ: "98765432000110", RazaoSocial: "NOME EXTRAIDO"}

		m.Apply(doc)

		assert.Equal(t, "01", doc.Coligada)
		assert.Equal(t, "003", doc.Filial)
		assert.Equal(t, "FILIAL RECIFE", doc.Destinatario.RazaoSocial)
	})

	t.Run("mapped name creates missing recipient", func(t *testing.T) {
		m := load(t)
		doc := fiscal.NewDocument("nota.pdf")
		doc.Emitente = &fiscal.Entity{CNPJ: "98765432000110"}

		m.Apply(doc)

		require.NotNil(t, doc.Destinatario)
		assert.Equal(t, "98765432000110", doc.Destinatario.CNPJ)
		assert.Equal(t, "FILIAL RECIFE", doc.Destinatario.RazaoSocial)
	})

	t.Run("empty mapped name keeps extracted name", func(t *testing.T) {
		m := load(t)
		doc := fiscal.NewDocument("nota.pdf")
		doc.Destinatario = &fiscal.Entity{CNPJ: "11222333000144", RazaoSocial: "NOME EXTRAIDO"}

		m.Apply(doc)

		assert.Equal(t, "02", doc.Coligada)
		assert.Equal(t, "001", doc.Filial)
		assert.Equal(t, "NOME EXTRAIDO", doc.Destinatario.RazaoSocial)
	})

	t.Run("unmapped id marks both fields", func(t *testing.T) {
		m := load(t)
		doc := fiscal.NewDocument("nota.pdf")
		doc.Destinatario = &fiscal.Entity{CNPJ: "55666777000188"}

		m.Apply(doc)

		assert.Equal(t, Unmapped, doc.Coligada)
		assert.Equal(t, Unmapped, doc.Filial)
	})

	t.Run("no id leaves document untouched", func(t *testing.T) {
		m := load(t)
		doc := fiscal.NewDocument("nota.pdf")

		m.Apply(doc)

		assert.Empty(t, doc.Coligada)
		assert.Empty(t, doc.Filial)
		assert.Nil(t, doc.Destinatario)
	})
}
