package ai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildFiscalJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. The prompt promises this shape and responses are validated
// against it locally. Nothing is required: a model that finds no field at
// all still answers with a valid empty object.
func BuildFiscalJSONSchema() map[string]any {
	entity := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"cnpj":              map[string]any{"type": "string"},
			"razao_social":      map[string]any{"type": "string"},
			"endereco_completo": map[string]any{"type": "string"},
		},
	}
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"descricao":      map[string]any{"type": "string"},
			"quantidade":     map[string]any{"type": "number"},
			"valor_unitario": map[string]any{"type": "number"},
			"valor_total":    map[string]any{"type": "number"},
		},
	}
	valores := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"valor_total":    map[string]any{"type": "number"},
			"valor_servicos": map[string]any{"type": "number"},
			"base_calculo":   map[string]any{"type": "number"},
			"iss":            map[string]any{"type": "number"},
			"pis":            map[string]any{"type": "number"},
			"cofins":         map[string]any{"type": "number"},
			"inss":           map[string]any{"type": "number"},
			"ir":             map[string]any{"type": "number"},
			"csll":           map[string]any{"type": "number"},
			"valor_liquido":  map[string]any{"type": "number"},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"tipo_documento":   map[string]any{"type": "string"},
			"numero":           map[string]any{"type": "string"},
			"serie":            map[string]any{"type": "string"},
			"chave_acesso":     map[string]any{"type": "string"},
			"data_emissao":     dateProp(),
			"data_competencia": dateProp(),
			"emitente":         entity,
			"destinatario":     entity,
			"valores":          valores,
			"itens":            map[string]any{"type": "array", "items": item},
		},
	}
}

func dateProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}

// ValidateAgainstSchema validates data against schemaMap.
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
