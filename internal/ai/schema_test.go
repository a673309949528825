package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAgainstSchema(t *testing.T) {
	schema := BuildFiscalJSONSchema()

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "typical response",
			doc: `{"tipo_documento":"NFS-e","numero":"144","data_emissao":"2024-01-15",
				"emitente":{"cnpj":"12345678000190","razao_social":"ACME LTDA"},
				"valores":{"valor_total":1500.5,"iss":75}}`,
		},
		{
			name: "empty object",
			doc:  `{}`,
		},
		{
			name:    "monetary value as string",
			doc:     `{"valores":{"valor_total":"1.500,00"}}`,
			wantErr: true,
		},
		{
			name:    "unknown top level key",
			doc:     `{"observacao":"x"}`,
			wantErr: true,
		},
		{
			name:    "display form date",
			doc:     `{"data_emissao":"15/01/2024"}`,
			wantErr: true,
		},
		{
			name:    "null field",
			doc:     `{"numero":null}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAgainstSchema(schema, []byte(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// The flow the client runs: strict validation rejects a sloppy response,
// the sanitize pass reshapes it, and the result validates.
func TestSanitizeThenValidate(t *testing.T) {
	raw := []byte(`{"numeroDocumento":144,"valores":{"total":"1.500,00","iss":null},"nota":"x"}`)
	schema := BuildFiscalJSONSchema()

	require.Error(t, ValidateAgainstSchema(schema, raw))

	cleaned, dropped, err := NormalizeResponse(raw, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)
	require.NoError(t, ValidateAgainstSchema(schema, cleaned))
}
