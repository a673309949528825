package ai

import (
	"fmt"
	"strings"
)

// MaxPromptChars bounds the document text embedded in a prompt so the
// request stays inside the model context window.
const MaxPromptChars = 12000

const jsonShape = `{
    "tipo_documento": "NFS-e" ou "NF-e",
    "numero": "string (ex: 123)",
    "serie": "string",
    "chave_acesso": "string (exatamente 44 dígitos)",
    "data_emissao": "YYYY-MM-DD",
    "data_competencia": "YYYY-MM-DD",
    "emitente": {
        "cnpj": "somente números",
        "razao_social": "string",
        "endereco_completo": "string"
    },
    "destinatario": {
        "cnpj": "somente números",
        "razao_social": "string",
        "endereco_completo": "string"
    },
    "valores": {
        "valor_total": number,
        "valor_servicos": number,
        "base_calculo": number,
        "iss": number,
        "pis": number,
        "cofins": number,
        "inss": number,
        "ir": number,
        "csll": number,
        "valor_liquido": number
    },
    "itens": [
        {
            "descricao": "string",
            "quantidade": number,
            "valor_unitario": number,
            "valor_total": number
        }
    ]
}`

const numeroRule = `ATENÇÃO - DIFERENÇA ENTRE NÚMERO E CHAVE DE ACESSO:
- O campo "numero" é o NÚMERO DA NOTA (geralmente 1 a 10 dígitos, como "144", "12345")
- NUNCA coloque a Chave de Acesso (que tem EXATAMENTE 44 dígitos) no campo "numero"
- A Chave de Acesso deve ir APENAS no campo "chave_acesso"`

// BuildTextPrompt composes the extraction prompt around decoded document
// text, truncated to MaxPromptChars.
func BuildTextPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Você é um assistente especializado em extração de dados de Notas Fiscais brasileiras (NF-e, NFS-e).\n")
	b.WriteString("Analise o texto abaixo extraído de um documento fiscal e retorne APENAS um JSON estritamente válido preenchendo os campos encontrados.\n")
	b.WriteString("Se um campo não for encontrado, use null.\n")
	b.WriteString("Valores monetários: números com ponto decimal (ex: 1234.56). Datas: formato YYYY-MM-DD. CNPJ: apenas números.\n\n")
	b.WriteString(numeroRule)
	b.WriteString("\n\nTEXTO DO DOCUMENTO:\n\"\"\"\n")
	b.WriteString(truncateRunes(text, MaxPromptChars))
	b.WriteString("\n\"\"\"\n(Texto truncado se muito longo)\n\n")
	fmt.Fprintf(&b, "FORMATO JSON DESEJADO:\n%s\n\nResponda APENAS com o JSON:", jsonShape)
	return b.String()
}

// BuildVisionPrompt composes the extraction prompt for page images.
func BuildVisionPrompt() string {
	var b strings.Builder
	b.WriteString("Você é um especialista em extração de dados de documentos fiscais brasileiros (NF-e, NFS-e).\n")
	b.WriteString("Analise a imagem deste documento e extraia os dados abaixo em formato JSON.\n\n")
	b.WriteString("REGRAS:\n")
	b.WriteString("1. Responda APENAS com o JSON válido.\n")
	b.WriteString("2. Se um campo não existir ou estiver ilegível, use null.\n")
	b.WriteString("3. Valores monetários devem ser números (ex: 100.50).\n")
	b.WriteString("4. Datas devem ser YYYY-MM-DD.\n")
	b.WriteString("5. CNPJ: apenas números, sem formatação.\n\n")
	b.WriteString(numeroRule)
	fmt.Fprintf(&b, "\n\nESTRUTURA JSON DESEJADA:\n%s\n", jsonShape)
	return b.String()
}

// truncateRunes cuts s to at most n runes without splitting a multi-byte
// character.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
