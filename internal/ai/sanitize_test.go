package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			raw:  `{"numero":"123"}`,
			want: `{"numero":"123"}`,
		},
		{
			name: "fenced markdown",
			raw:  "Aqui está o resultado:\n```json\n{\"numero\": \"144\"}\n```\nEspero ter ajudado.",
			want: `{"numero": "144"}`,
		},
		{
			name: "object inside prose",
			raw:  `O JSON extraído é {"numero": "55"} conforme solicitado.`,
			want: `{"numero": "55"}`,
		},
		{
			name:    "no object at all",
			raw:     "não foi possível extrair os dados",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			raw:     `{"numero": `,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONBlock(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestNormalizeResponse(t *testing.T) {
	t.Run("camel case synonyms and coercions", func(t *testing.T) {
		raw := []byte(`{
			"tipoDocumento": "NFS-e",
			"numeroDocumento": 144,
			"dataEmissao": "15/01/2024",
			"destinatarioTomador": {"cnpjCpf": "98.765.432/0001-10", "nomeRazaoSocial": "CLIENTE X"},
			"valores": {"totalDocumento": "1.500,00", "valorLiquidoDocumento": null},
			"chaveAcessoNFe": null,
			"observacao": "nota de serviço"
		}`)

		cleaned, dropped, err := NormalizeResponse(raw, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, dropped)

		var m map[string]any
		require.NoError(t, json.Unmarshal(cleaned, &m))
		assert.Equal(t, "NFS-e", m["tipo_documento"])
		assert.Equal(t, "144", m["numero"])
		assert.Equal(t, "2024-01-15", m["data_emissao"])

		dest, ok := m["destinatario"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "98.765.432/0001-10", dest["cnpj"])
		assert.Equal(t, "CLIENTE X", dest["razao_social"])

		vals, ok := m["valores"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 1500.0, vals["valor_total"], 0.0001)
		_, hasLiquido := vals["valor_liquido"]
		assert.False(t, hasLiquido)

		_, hasChave := m["chave_acesso"]
		assert.False(t, hasChave)
		_, hasObs := m["observacao"]
		assert.False(t, hasObs)

		require.NoError(t, ValidateAgainstSchema(BuildFiscalJSONSchema(), cleaned))
	})

	t.Run("nfse party vocabulary", func(t *testing.T) {
		raw := []byte(`{
			"tipo_documento": "NF-e",
			"serie": null,
			"prestador": {"nome": "EMISSOR LTDA", "cnpj": 11222333000144},
			"tomador": {"razao_social": "CLIENTE SA"},
			"valores": {"pis": "12,50", "icms": 100}
		}`)

		cleaned, _, err := NormalizeResponse(raw, nil)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(cleaned, &m))

		emit, ok := m["emitente"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "EMISSOR LTDA", emit["razao_social"])
		assert.Equal(t, "11222333000144", emit["cnpj"])

		dest, ok := m["destinatario"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "CLIENTE SA", dest["razao_social"])

		vals, ok := m["valores"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 12.5, vals["pis"], 0.0001)
		_, hasICMS := vals["icms"]
		assert.False(t, hasICMS)

		_, hasSerie := m["serie"]
		assert.False(t, hasSerie)

		require.NoError(t, ValidateAgainstSchema(BuildFiscalJSONSchema(), cleaned))
	})

	t.Run("items cleaned per element", func(t *testing.T) {
		raw := []byte(`{
			"itens": [
				{"descricao": "Consultoria", "quantidade": "2", "valor_total": "500,00", "ncm": "x"},
				"texto solto",
				{"observacao": "vazio"}
			]
		}`)

		cleaned, _, err := NormalizeResponse(raw, nil)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(cleaned, &m))

		items, ok := m["itens"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		item := items[0].(map[string]any)
		assert.Equal(t, "Consultoria", item["descricao"])
		assert.InDelta(t, 2.0, item["quantidade"], 0.0001)
		assert.InDelta(t, 500.0, item["valor_total"], 0.0001)
		_, hasNCM := item["ncm"]
		assert.False(t, hasNCM)
	})

	t.Run("bad date dropped", func(t *testing.T) {
		raw := []byte(`{"data_emissao": "janeiro de 2024"}`)
		cleaned, dropped, err := NormalizeResponse(raw, nil)
		require.NoError(t, err)
		assert.Contains(t, dropped, "data_emissao(bad date)")
		assert.Equal(t, "{}", string(cleaned))
	})

	t.Run("not an object", func(t *testing.T) {
		_, _, err := NormalizeResponse([]byte(`[1,2]`), nil)
		require.Error(t, err)
	})
}
