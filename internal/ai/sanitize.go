package ai

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"github.com/fiscaldata/nf-extractor/internal/extract"
)

var (
	jsonBlockRe = regexp.MustCompile(`\{[\s\S]*\}`)
	brDateRe    = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ExtractJSONBlock digs the JSON object out of a raw model response. A
// fenced markdown block is unwrapped first, then the outermost brace span,
// then the trimmed response itself.
func ExtractJSONBlock(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)

	if i := strings.Index(s, "```json"); i >= 0 {
		rest := s[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		if b := []byte(strings.TrimSpace(rest)); json.Valid(b) {
			return b, nil
		}
	}
	if m := jsonBlockRe.FindString(s); m != "" && json.Valid([]byte(m)) {
		return []byte(m), nil
	}
	if strings.HasPrefix(s, "{") && json.Valid([]byte(s)) {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("no json object in model response")
}

// Key synonyms the models answer with despite the prompt naming the
// canonical key. NFS-e vocabulary calls the parties prestador/tomador.
var fieldSynonyms = map[string]string{
	"tipoDocumento":        "tipo_documento",
	"numeroDocumento":      "numero",
	"numero_documento":     "numero",
	"numero_nota":          "numero",
	"chaveAcessoNFe":       "chave_acesso",
	"chave_acesso_nfe":     "chave_acesso",
	"dataEmissao":          "data_emissao",
	"dataCompetencia":      "data_competencia",
	"destinatarioTomador":  "destinatario",
	"destinatario_tomador": "destinatario",
	"tomador":              "destinatario",
	"prestador":            "emitente",
}

var entitySynonyms = map[string]string{
	"cnpjCpf":           "cnpj",
	"cnpj_cpf":          "cnpj",
	"nomeRazaoSocial":   "razao_social",
	"nome_razao_social": "razao_social",
	"nome":              "razao_social",
	"endereco":          "endereco_completo",
	"enderecoCompleto":  "endereco_completo",
}

var valueSynonyms = map[string]string{
	"totalDocumento":        "valor_total",
	"total":                 "valor_total",
	"valorLiquidoDocumento": "valor_liquido",
	"liquido":               "valor_liquido",
	"irrf":                  "ir",
}

var (
	topStringKeys = []string{"tipo_documento", "numero", "serie", "chave_acesso"}
	topDateKeys   = []string{"data_emissao", "data_competencia"}
	entityKeys    = []string{"emitente", "destinatario"}
	entitySubKeys = []string{"cnpj", "razao_social", "endereco_completo"}
	valueKeys     = []string{
		"valor_total", "valor_servicos", "base_calculo", "iss", "pis",
		"cofins", "inss", "ir", "csll", "valor_liquido",
	}
	itemStringKeys = []string{"descricao"}
	itemNumberKeys = []string{"quantidade", "valor_unitario", "valor_total"}
)

// NormalizeResponse reshapes a decoded model object toward the schema:
// renames known synonyms, drops nulls and empties, coerces number-ish
// strings in the monetary block (Brazilian comma decimals included),
// stringifies numeric numero/serie, reformats DD/MM/YYYY dates, and removes
// unknown keys at every level. The dropped list records what was touched.
func NormalizeResponse(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renameKeys(m, fieldSynonyms, &dropped)

	for _, k := range topStringKeys {
		coerceString(m, k, k, &dropped)
	}
	for _, k := range topDateKeys {
		coerceString(m, k, k, &dropped)
		if v, ok := m[k].(string); ok {
			switch {
			case isoDateRe.MatchString(v):
			case brDateRe.MatchString(v):
				m[k] = brDateRe.ReplaceAllString(v, "$3-$2-$1")
				dropped = append(dropped, k+"(reformatted)")
			default:
				delete(m, k)
				dropped = append(dropped, k+"(bad date)")
			}
		}
	}

	for _, k := range entityKeys {
		if v, ok := m[k]; ok {
			sub, isMap := v.(map[string]any)
			if !isMap {
				delete(m, k)
				dropped = append(dropped, k+"(type)")
				continue
			}
			renameKeys(sub, entitySynonyms, &dropped)
			for _, sk := range entitySubKeys {
				coerceString(sub, sk, k+"."+sk, &dropped)
			}
			dropUnknown(sub, k, entitySubKeys, &dropped)
			if len(sub) == 0 {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			}
		}
	}

	if v, ok := m["valores"]; ok {
		sub, isMap := v.(map[string]any)
		if !isMap {
			delete(m, "valores")
			dropped = append(dropped, "valores(type)")
		} else {
			renameKeys(sub, valueSynonyms, &dropped)
			for _, vk := range valueKeys {
				coerceNumber(sub, vk, "valores."+vk, &dropped)
			}
			dropUnknown(sub, "valores", valueKeys, &dropped)
			if len(sub) == 0 {
				delete(m, "valores")
				dropped = append(dropped, "valores(empty)")
			}
		}
	}

	if v, ok := m["itens"]; ok {
		arr, isArr := v.([]any)
		if !isArr {
			delete(m, "itens")
			dropped = append(dropped, "itens(type)")
		} else {
			items := make([]any, 0, len(arr))
			for i, el := range arr {
				sub, isMap := el.(map[string]any)
				if !isMap {
					dropped = append(dropped, fmt.Sprintf("itens[%d](type)", i))
					continue
				}
				label := fmt.Sprintf("itens[%d]", i)
				for _, sk := range itemStringKeys {
					coerceString(sub, sk, label+"."+sk, &dropped)
				}
				for _, nk := range itemNumberKeys {
					coerceNumber(sub, nk, label+"."+nk, &dropped)
				}
				dropUnknown(sub, label, append(itemStringKeys, itemNumberKeys...), &dropped)
				if len(sub) > 0 {
					items = append(items, sub)
				}
			}
			if len(items) == 0 {
				delete(m, "itens")
			} else {
				m["itens"] = items
			}
		}
	}

	allowed := map[string]struct{}{
		"tipo_documento": {}, "numero": {}, "serie": {}, "chave_acesso": {},
		"data_emissao": {}, "data_competencia": {},
		"emitente": {}, "destinatario": {}, "valores": {}, "itens": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("ai.extract.sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// renameKeys moves synonym keys onto their canonical name without
// clobbering a canonical key that is already present.
func renameKeys(m map[string]any, synonyms map[string]string, dropped *[]string) {
	for from, to := range synonyms {
		v, ok := m[from]
		if !ok {
			continue
		}
		if _, exists := m[to]; !exists {
			m[to] = v
		}
		delete(m, from)
		*dropped = append(*dropped, from+"->"+to)
	}
}

// coerceString normalizes m[key] into a trimmed non-empty string. Numbers
// are stringified so a numeric numero survives; nulls, empties, and other
// types are dropped. label is the dotted name recorded in the dropped list.
func coerceString(m map[string]any, key, label string, dropped *[]string) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.EqualFold(s, "null") {
			delete(m, key)
			*dropped = append(*dropped, label+"(empty)")
		} else {
			m[key] = s
		}
	case float64:
		m[key] = strconv.FormatFloat(t, 'f', -1, 64)
		*dropped = append(*dropped, label+"(stringified)")
	case nil:
		delete(m, key)
		*dropped = append(*dropped, label+"(null)")
	default:
		delete(m, key)
		*dropped = append(*dropped, label+"(type)")
	}
}

// coerceNumber normalizes m[key] into a float64, parsing Brazilian
// "1.234,56" strings and dropping whatever does not read as money.
func coerceNumber(m map[string]any, key, label string, dropped *[]string) {
	v, ok := m[key]
	if !ok {
		return
	}
	switch t := v.(type) {
	case float64:
	case string:
		if f, ok := extract.ParseMoney(t); ok {
			m[key] = f
			*dropped = append(*dropped, label+"(parsed)")
		} else {
			delete(m, key)
			*dropped = append(*dropped, label+"(bad number)")
		}
	case nil:
		delete(m, key)
		*dropped = append(*dropped, label+"(null)")
	default:
		delete(m, key)
		*dropped = append(*dropped, label+"(type)")
	}
}

func dropUnknown(m map[string]any, prefix string, known []string, dropped *[]string) {
	set := make(map[string]struct{}, len(known))
	for _, k := range known {
		set[k] = struct{}{}
	}
	for k := range maps.Clone(m) {
		if _, ok := set[k]; !ok {
			delete(m, k)
			*dropped = append(*dropped, prefix+"."+k+"(unknown)")
		}
	}
}
