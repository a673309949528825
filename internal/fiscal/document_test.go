package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/constants"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("nota.pdf")
	assert.Equal(t, "nota.pdf", doc.Filename)
	assert.Equal(t, constants.DocTypeUnknown, doc.DocumentType)
	assert.Equal(t, constants.StatusPending, doc.Status)
}

func TestEnsureValores(t *testing.T) {
	doc := NewDocument("nota.pdf")
	v := doc.EnsureValores()
	require.NotNil(t, v)
	assert.Same(t, v, doc.EnsureValores())
}

func TestIdentifierCNPJ(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			name: "recipient wins over issuer",
			doc: Document{
				Emitente:     &Entity{CNPJ: "11111111000111"},
				Destinatario: &Entity{CNPJ: "22222222000122"},
			},
			want: "22222222000122",
		},
		{
			name: "issuer when recipient has no id",
			doc: Document{
				Emitente:     &Entity{CNPJ: "11111111000111"},
				Destinatario: &Entity{RazaoSocial: "SEM CNPJ LTDA"},
			},
			want: "11111111000111",
		},
		{name: "no parties", doc: Document{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.IdentifierCNPJ())
		})
	}
}

func TestClearDisallowedTaxes(t *testing.T) {
	filled := func() *TaxValues {
		return &TaxValues{
			IPI:       Float(120),
			ISS:       Float(75),
			ISSRetido: Float(40),
		}
	}

	tests := []struct {
		name    string
		docType constants.DocumentType
		check   func(t *testing.T, v *TaxValues)
	}{
		{
			name:    "service invoice drops ipi",
			docType: constants.DocTypeNFSE,
			check: func(t *testing.T, v *TaxValues) {
				assert.Nil(t, v.IPI)
				assert.NotNil(t, v.ISS)
				assert.NotNil(t, v.ISSRetido)
			},
		},
		{
			name:    "goods invoice drops iss slots",
			docType: constants.DocTypeNFE,
			check: func(t *testing.T, v *TaxValues) {
				assert.NotNil(t, v.IPI)
				assert.Nil(t, v.ISS)
				assert.Nil(t, v.ISSRetido)
			},
		},
		{
			name:    "unknown type keeps everything",
			docType: constants.DocTypeUnknown,
			check: func(t *testing.T, v *TaxValues) {
				assert.NotNil(t, v.IPI)
				assert.NotNil(t, v.ISS)
				assert.NotNil(t, v.ISSRetido)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument("nota.pdf")
			doc.DocumentType = tt.docType
			doc.Valores = filled()
			doc.ClearDisallowedTaxes()
			tt.check(t, doc.Valores)
		})
	}

	t.Run("no values is a no-op", func(t *testing.T) {
		doc := NewDocument("nota.pdf")
		doc.DocumentType = constants.DocTypeNFE
		doc.ClearDisallowedTaxes()
		assert.Nil(t, doc.Valores)
	})
}

func TestAddressString(t *testing.T) {
	tests := []struct {
		name string
		addr *Address
		want string
	}{
		{
			name: "full address",
			addr: &Address{
				Logradouro: "Rua das Flores",
				Numero:     "123",
				Bairro:     "Centro",
				Municipio:  "São Paulo",
				UF:         "SP",
				CEP:        "01310-100",
			},
			want: "Rua das Flores, nº 123, Centro, São Paulo/SP, CEP: 01310-100",
		},
		{
			name: "municipality without state",
			addr: &Address{Municipio: "Recife"},
			want: "Recife",
		},
		{
			name: "state without municipality",
			addr: &Address{UF: "PE"},
			want: "PE",
		},
		{name: "nil", addr: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestAddressEmpty(t *testing.T) {
	assert.True(t, (*Address)(nil).Empty())
	assert.True(t, (&Address{}).Empty())
	assert.False(t, (&Address{CEP: "01310-100"}).Empty())
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345678000190", DigitsOnly("12.345.678/0001-90"))
	assert.Equal(t, "", DigitsOnly("sem números"))
}

func TestNormalizeChave(t *testing.T) {
	formatted := "3524 0898 7654 3200 0110 5500 3000 0551 2310 0098 7654"
	assert.Equal(t, "35240898765432000110550030000551231000987654", NormalizeChave(formatted))

	// Partial captures keep their original trimmed form.
	assert.Equal(t, "3524 0898", NormalizeChave("  3524 0898  "))
}
