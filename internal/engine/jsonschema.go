package engine

import (
	"encoding/json"
	"fmt"

	"github.com/shaiso/Mayhem/internal/domain"
)

// Фиксированные метаданные схемы файла сценария.
const (
	scenarioSchemaID    = "https://github.com/shaiso/Mayhem/"
	scenarioSchemaDraft = "https://json-schema.org/draft/2020-12/schema"
	scenarioSchemaTitle = "Mayhem scenarios"
)

// Метаданные уровня документа, удаляемые из вложенных схем шагов:
// они осмысленны только на внешнем уровне.
var documentMetaKeys = []string{"$id", "$schema", "title", "description"}

// JSONSchema собирает одну структурную JSON Schema, описывающую любой
// синтаксически валидный файл сценария для данного реестра.
//
// Внешний уровень — массив; items — oneOf-объединение альтернатив,
// по одной на зарегистрированный шаг, в порядке регистрации.
// Каждая альтернатива требует ровно 'id' (константа, равная id шага)
// и 'config' (входная схема шага без метаданных документа).
//
// Для фиксированного реестра результат детерминирован.
func JSONSchema(registry *Registry) (string, error) {
	alternatives := make([]any, 0, registry.Count())

	for _, id := range registry.IDs() {
		step, _ := registry.Get(id)

		configSchema := step.Schema.Input.JSONSchema()
		for _, key := range documentMetaKeys {
			delete(configSchema, key)
		}

		alternatives = append(alternatives, map[string]any{
			"type": "object",
			"properties": map[string]any{
				domain.KeyID:     map[string]any{"const": id},
				domain.KeyConfig: configSchema,
			},
			"required":             []string{domain.KeyID, domain.KeyConfig},
			"additionalProperties": false,
		})
	}

	document := map[string]any{
		"$id":     scenarioSchemaID,
		"$schema": scenarioSchemaDraft,
		"title":   scenarioSchemaTitle,
		"type":    "array",
		"items": map[string]any{
			"oneOf": alternatives,
		},
	}

	out, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal scenario schema: %w", err)
	}

	return string(out), nil
}
