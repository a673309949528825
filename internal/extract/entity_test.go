package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAllCNPJs(t *testing.T) {
	text := "EMITENTE 12.345.678/0001-90 DESTINO 98765432000110 CPF 123.456.789-00"
	got := findAllCNPJs(text)
	assert.Equal(t, []string{"12345678000190", "98765432000110"}, got)

	assert.Empty(t, findAllCNPJs("SEM DOCUMENTOS"))
}

func TestValidEntityName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ACME SERVICOS LTDA", true},
		{"AB", false},
		{"12345678", false},
		{"Empresarial", false},
		{"Nome", false},
		{"RAZÃO SOCIAL LTDA", false},
		{"CONTATO E-MAIL LTDA", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validEntityName(tt.name))
		})
	}
}

func TestBetterCompanyLine(t *testing.T) {
	section := "Nome: AB\nEMPRESA COMPRIDA DE TECNOLOGIA LTDA | FILIAL 02\nCNPJ: 12.345.678/0001-90"
	got, ok := betterCompanyLine(section)
	assert.True(t, ok)
	assert.Equal(t, "EMPRESA COMPRIDA DE TECNOLOGIA LTDA", got)

	_, ok = betterCompanyLine("Nome: AB\nCNPJ: 12.345.678/0001-90")
	assert.False(t, ok)
}

func TestParseEntitySection(t *testing.T) {
	tests := []struct {
		name      string
		section   string
		wantCNPJ  string
		wantRazao string
		wantAddr  *struct{ logradouro, numero, bairro, municipio, uf, cep string }
	}{
		{
			name: "full provider block",
			section: "ACME SERVICOS DE INFORMATICA LTDA\n" +
				"CNPJ: 12.345.678/0001-90\n" +
				"Endereço: Rua das Flores Nº 123\n" +
				"Bairro: Centro\n" +
				"Município: São Paulo UF: SP\n" +
				"CEP: 01310-100\n",
			wantCNPJ:  "12345678000190",
			wantRazao: "ACME SERVICOS DE INFORMATICA LTDA",
			wantAddr: &struct{ logradouro, numero, bairro, municipio, uf, cep string }{
				"Rua das Flores", "123", "Centro", "São Paulo", "SP", "01310-100",
			},
		},
		{
			name:      "degraded tax id with commas",
			section:   "CPF/CNPJ: 15,572.154/0001-25\nEMPRESA DEGRADADA DE SERVICOS LTDA",
			wantCNPJ:  "15572154000125",
			wantRazao: "EMPRESA DEGRADADA DE SERVICOS LTDA",
		},
		{
			name:      "name capture crossing the line break",
			section:   "Razão Social: EMPRESA EXEMPLO DE SERVICOS\nCNPJ: 11.222.333/0001-44",
			wantCNPJ:  "11222333000144",
			wantRazao: "EMPRESA EXEMPLO DE SERVICOS",
		},
		{
			name:      "short logo caption is not a name",
			section:   "Razão Social: Polo IR\nCNPJ: 22.333.444/0001-55\nINSCRICAO MUNICIPAL 9999",
			wantCNPJ:  "22333444000155",
			wantRazao: "",
		},
		{
			name:      "name with suffix tail on a dense line",
			section:   "Nome/Razão Social: CPF/CNPJ:\nPITECNOLOGIA DA INFORMAÇÃO LTDA - ME 07.385.111/0001-02",
			wantCNPJ:  "07385111000102",
			wantRazao: "PITECNOLOGIA DA INFORMAÇÃO LTDA - ME",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseEntitySection(tt.section)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCNPJ, got.CNPJ)
			assert.Equal(t, tt.wantRazao, got.RazaoSocial)
			if tt.wantAddr == nil {
				assert.Nil(t, got.Endereco)
			} else {
				require.NotNil(t, got.Endereco)
				assert.Equal(t, tt.wantAddr.logradouro, got.Endereco.Logradouro)
				assert.Equal(t, tt.wantAddr.numero, got.Endereco.Numero)
				assert.Equal(t, tt.wantAddr.bairro, got.Endereco.Bairro)
				assert.Equal(t, tt.wantAddr.municipio, got.Endereco.Municipio)
				assert.Equal(t, tt.wantAddr.uf, got.Endereco.UF)
				assert.Equal(t, tt.wantAddr.cep, got.Endereco.CEP)
			}
		})
	}
}

func TestExtractEmitente(t *testing.T) {
	e := NewEngine(0, nil)

	t.Run("provider section", func(t *testing.T) {
		text := "PRESTADOR DE SERVIÇOS\n" +
			"ACME SERVICOS DE INFORMATICA LTDA\n" +
			"CNPJ: 12.345.678/0001-90\n" +
			"Endereço: Rua das Flores Nº 123\n" +
			"Bairro: Centro\n" +
			"TOMADOR DE SERVIÇOS\n" +
			"CLIENTE FINAL LTDA\n" +
			"CNPJ: 98.765.432/0001-10"
		got := e.extractEmitente(text, nil)
		require.NotNil(t, got)
		assert.Equal(t, "12345678000190", got.CNPJ)
		assert.Equal(t, "ACME SERVICOS DE INFORMATICA LTDA", got.RazaoSocial)
		require.NotNil(t, got.Endereco)
		assert.Equal(t, "Rua das Flores", got.Endereco.Logradouro)
		assert.Equal(t, "123", got.Endereco.Numero)
		assert.Equal(t, "Centro", got.Endereco.Bairro)
	})

	t.Run("first global tax id without a name", func(t *testing.T) {
		text := "DOCUMENTO AVULSO\n11.222.333/0001-44 e 55.666.777/0001-88\nvalores diversos"
		got := e.extractEmitente(text, nil)
		require.NotNil(t, got)
		assert.Equal(t, "11222333000144", got.CNPJ)
		assert.Empty(t, got.RazaoSocial)
		assert.Nil(t, got.Endereco)
	})

	t.Run("positioned name overrides the section name", func(t *testing.T) {
		text := "PRESTADOR\nNOME CURTO LTDA\nCNPJ: 44.555.666/0001-77\nTOMADOR"
		words := []Word{
			word(1, "Razão Social", 10, 100, 80, 110),
			word(1, "EMPRESA", 10, 115, 60, 125),
			word(1, "GEOMETRICA", 65, 115, 120, 125),
			word(1, "LTDA", 125, 115, 150, 125),
		}
		got := e.extractEmitente(text, words)
		require.NotNil(t, got)
		assert.Equal(t, "44555666000177", got.CNPJ)
		assert.Equal(t, "EMPRESA GEOMETRICA LTDA", got.RazaoSocial)
	})

	t.Run("nothing found", func(t *testing.T) {
		assert.Nil(t, e.extractEmitente("texto livre sem dados fiscais", nil))
	})
}

func TestExtractDestinatario(t *testing.T) {
	e := NewEngine(0, nil)

	t.Run("recipient section with tax id", func(t *testing.T) {
		text := "TOMADOR DE SERVIÇOS\n" +
			"CLIENTE EXEMPLO COMERCIO SA\n" +
			"CNPJ: 98.765.432/0001-10\n" +
			"VALORES"
		got := e.extractDestinatario(text, nil)
		require.NotNil(t, got)
		assert.Equal(t, "98765432000110", got.CNPJ)
		assert.Equal(t, "CLIENTE EXEMPLO COMERCIO SA", got.RazaoSocial)
	})

	t.Run("second global tax id", func(t *testing.T) {
		text := "NOTA\nEMISSOR: 11.222.333/0001-44\nCOMPRADOR: 55.666.777/0001-88"
		got := e.extractDestinatario(text, nil)
		require.NotNil(t, got)
		assert.Equal(t, "55666777000188", got.CNPJ)
		assert.Empty(t, got.RazaoSocial)
	})

	t.Run("labeled recipient fields", func(t *testing.T) {
		text := "CNPJ do Tomador: 33.444.555/0001-66\nNome do Tomador: CLIENTE FINAL DO TESTE"
		got := e.extractDestinatario(text, nil)
		require.NotNil(t, got)
		assert.Equal(t, "33444555000166", got.CNPJ)
		assert.Equal(t, "CLIENTE FINAL DO TESTE", got.RazaoSocial)
	})

	t.Run("nothing found", func(t *testing.T) {
		assert.Nil(t, e.extractDestinatario("texto livre sem dados fiscais", nil))
	})
}
