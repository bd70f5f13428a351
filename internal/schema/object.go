package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ObjectSchema — входная схема шага: упорядоченный набор свойств
// плюс фабрика типизированной конфигурации.
type ObjectSchema struct {
	// ID — идентификатор схемы (обычно совпадает с ID шага).
	ID string

	// Title — заголовок для JSON Schema.
	Title string

	// Description — описание для JSON Schema.
	Description string

	// Properties — свойства в порядке объявления.
	Properties []Property

	// New создаёт пустую типизированную конфигурацию (указатель на struct
	// с json-тегами, совпадающими с именами свойств).
	New func() any
}

// Unserialize валидирует сырой mapping против схемы и декодирует его
// в типизированную конфигурацию.
//
// Проверки:
//   - все ключи известны схеме
//   - все обязательные свойства присутствуют
//   - типы значений совпадают с типами свойств
func (s *ObjectSchema) Unserialize(raw map[string]any) (any, error) {
	byName := make(map[string]Property, len(s.Properties))
	for _, p := range s.Properties {
		byName[p.Name] = p
	}

	for key := range raw {
		if _, ok := byName[key]; !ok {
			return nil, fmt.Errorf("%w: %q (schema %s)", ErrUnknownProperty, key, s.ID)
		}
	}

	for _, p := range s.Properties {
		v, present := raw[p.Name]
		if !present {
			if p.Required {
				return nil, fmt.Errorf("%w: %q (schema %s)", ErrMissingProperty, p.Name, s.ID)
			}
			continue
		}
		if v == nil {
			continue
		}
		if !p.matches(v) {
			return nil, fmt.Errorf("%w: %q expects %s, got %T (schema %s)",
				ErrPropertyType, p.Name, p.Type, v, s.ID)
		}
	}

	cfg := s.New()
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnserialize, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnserialize, err)
	}
	return cfg, nil
}

// JSONSchema возвращает структурную JSON Schema входа.
//
// Схема содержит метаданные уровня документа ($id, $schema, title,
// description); при сборке схемы файла сценария они удаляются.
func (s *ObjectSchema) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s.Properties))
	required := make([]string, 0, len(s.Properties))

	for _, p := range s.Properties {
		prop := map[string]any{}
		if t, ok := p.jsonType(); ok {
			prop["type"] = t
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	out := map[string]any{
		"$id":                  "https://github.com/shaiso/Mayhem/schemas/" + s.ID,
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                s.Title,
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}
