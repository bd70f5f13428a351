package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shaiso/Mayhem/internal/schema"
)

func schemaTestRegistry(t *testing.T) *Registry {
	t.Helper()

	first := &schema.StepSchema{
		ID: "first-step",
		Input: &schema.ObjectSchema{
			ID:    "first-step",
			Title: "First step input",
			Properties: []schema.Property{
				{Name: "target", Type: schema.TypeString, Required: true},
			},
			New: func() any { return &struct{}{} },
		},
		Outputs: map[string]*schema.OutputSchema{"success": {}},
		Handler: func(ctx context.Context, cfg any) (string, any) { return "success", nil },
	}
	second := &schema.StepSchema{
		ID: "second-step",
		Input: &schema.ObjectSchema{
			ID:          "second-step",
			Title:       "Second step input",
			Description: "does the second thing",
			Properties: []schema.Property{
				{Name: "count", Type: schema.TypeInteger},
			},
			New: func() any { return &struct{}{} },
		},
		Outputs: map[string]*schema.OutputSchema{"success": {}},
		Handler: func(ctx context.Context, cfg any) (string, any) { return "success", nil },
	}

	s1, err := NewRegisteredStep(first)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := NewRegisteredStep(second)
	if err != nil {
		t.Fatal(err)
	}
	registry, err := NewRegistry(s1, s2)
	if err != nil {
		t.Fatal(err)
	}
	return registry
}

func TestJSONSchema_Structure(t *testing.T) {
	registry := schemaTestRegistry(t)

	out, err := JSONSchema(registry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	if doc["$id"] != "https://github.com/shaiso/Mayhem/" {
		t.Errorf("$id = %v", doc["$id"])
	}
	if doc["$schema"] != "https://json-schema.org/draft/2020-12/schema" {
		t.Errorf("$schema = %v", doc["$schema"])
	}
	if doc["title"] != "Mayhem scenarios" {
		t.Errorf("title = %v", doc["title"])
	}
	if doc["type"] != "array" {
		t.Errorf("type = %v", doc["type"])
	}

	items, ok := doc["items"].(map[string]any)
	if !ok {
		t.Fatalf("expected items object, got %T", doc["items"])
	}
	oneOf, ok := items["oneOf"].([]any)
	if !ok {
		t.Fatalf("expected oneOf array, got %T", items["oneOf"])
	}
	if len(oneOf) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(oneOf))
	}

	wantIDs := []string{"first-step", "second-step"}
	for i, alt := range oneOf {
		altMap := alt.(map[string]any)

		if altMap["type"] != "object" {
			t.Errorf("alternative %d type = %v", i, altMap["type"])
		}

		props := altMap["properties"].(map[string]any)
		idProp := props["id"].(map[string]any)
		if idProp["const"] != wantIDs[i] {
			t.Errorf("alternative %d id const = %v, want %s (registration order)",
				i, idProp["const"], wantIDs[i])
		}

		required := altMap["required"].([]any)
		if len(required) != 2 || required[0] != "id" || required[1] != "config" {
			t.Errorf("alternative %d required = %v", i, required)
		}

		// Метаданные уровня документа зачищены из вложенной схемы.
		configSchema := props["config"].(map[string]any)
		for _, key := range []string{"$id", "$schema", "title", "description"} {
			if _, present := configSchema[key]; present {
				t.Errorf("alternative %d config schema contains %q", i, key)
			}
		}
		if configSchema["type"] != "object" {
			t.Errorf("alternative %d config type = %v", i, configSchema["type"])
		}
	}
}

func TestJSONSchema_Deterministic(t *testing.T) {
	registry := schemaTestRegistry(t)

	first, err := JSONSchema(registry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		next, err := JSONSchema(registry)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != first {
			t.Fatal("expected identical schema output for a fixed registry")
		}
	}
}
