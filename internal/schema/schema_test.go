package schema

import (
	"context"
	"errors"
	"testing"
)

type testConfig struct {
	Name  string  `json:"name"`
	Count int     `json:"count,omitempty"`
	Ratio float64 `json:"ratio,omitempty"`

	kubeconfig string
}

func (c *testConfig) SetKubeconfigPath(path string) {
	c.kubeconfig = path
}

type plainConfig struct {
	Name string `json:"name"`
}

func testObjectSchema() *ObjectSchema {
	return &ObjectSchema{
		ID:    "test",
		Title: "Test input",
		Properties: []Property{
			{Name: "name", Type: TypeString, Required: true},
			{Name: "count", Type: TypeInteger},
			{Name: "ratio", Type: TypeNumber},
		},
		New: func() any { return &testConfig{} },
	}
}

func TestObjectSchema_Unserialize(t *testing.T) {
	s := testObjectSchema()

	cfg, err := s.Unserialize(map[string]any{
		"name":  "probe",
		"count": 3,
		"ratio": 0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, ok := cfg.(*testConfig)
	if !ok {
		t.Fatalf("expected *testConfig, got %T", cfg)
	}
	if c.Name != "probe" || c.Count != 3 || c.Ratio != 0.5 {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestObjectSchema_UnserializeErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		wantErr error
	}{
		{
			name:    "unknown property",
			raw:     map[string]any{"name": "x", "bogus": 1},
			wantErr: ErrUnknownProperty,
		},
		{
			name:    "missing required",
			raw:     map[string]any{"count": 1},
			wantErr: ErrMissingProperty,
		},
		{
			name:    "type mismatch string",
			raw:     map[string]any{"name": 42},
			wantErr: ErrPropertyType,
		},
		{
			name:    "type mismatch integer",
			raw:     map[string]any{"name": "x", "count": "three"},
			wantErr: ErrPropertyType,
		},
		{
			name:    "fractional value for integer",
			raw:     map[string]any{"name": "x", "count": 1.5},
			wantErr: ErrPropertyType,
		},
	}

	s := testObjectSchema()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Unserialize(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestObjectSchema_UnserializeIntegerAsFloat(t *testing.T) {
	// JSON-декодер отдаёт целые как float64; схема должна их принять.
	s := testObjectSchema()

	cfg, err := s.Unserialize(map[string]any{"name": "x", "count": float64(7)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c := cfg.(*testConfig); c.Count != 7 {
		t.Errorf("expected count 7, got %d", c.Count)
	}
}

func TestInject_Kubeconfig(t *testing.T) {
	cfg := &testConfig{}

	if err := Inject(cfg, ContextKubeconfigPath, "/path/to/kubeconfig"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.kubeconfig != "/path/to/kubeconfig" {
		t.Errorf("expected kubeconfig path set, got %q", cfg.kubeconfig)
	}
}

func TestInject_NotAccepted(t *testing.T) {
	tests := []struct {
		name string
		kind ContextKind
	}{
		{name: "kubeconfig on plain config", kind: ContextKubeconfigPath},
		{name: "mayhem config on plain config", kind: ContextMayhemConfig},
		{name: "unknown kind", kind: ContextKind("bogus")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Inject(&plainConfig{}, tt.kind, "/some/path")
			if !errors.Is(err, ErrContextNotAccepted) {
				t.Errorf("expected ErrContextNotAccepted, got %v", err)
			}
		})
	}
}

func TestObjectSchema_JSONSchema(t *testing.T) {
	s := testObjectSchema()
	doc := s.JSONSchema()

	if doc["type"] != "object" {
		t.Errorf("expected type object, got %v", doc["type"])
	}
	if doc["additionalProperties"] != false {
		t.Errorf("expected additionalProperties false")
	}

	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties map, got %T", doc["properties"])
	}
	for _, name := range []string{"name", "count", "ratio"} {
		if _, ok := props[name]; !ok {
			t.Errorf("missing property %q", name)
		}
	}

	required, ok := doc["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "name" {
		t.Errorf("expected required [name], got %v", doc["required"])
	}

	// Метаданные уровня документа присутствуют до зачистки synthesizer'ом.
	for _, key := range []string{"$id", "$schema", "title"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing document meta key %q", key)
		}
	}
}

func TestDefaultSerialize(t *testing.T) {
	out, err := DefaultSerialize(struct {
		Code int `json:"code"`
	}{Code: 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", out)
	}
	if m["code"] != float64(200) {
		t.Errorf("expected code 200, got %v", m["code"])
	}
}

func TestStepSchema_Call(t *testing.T) {
	step := &StepSchema{
		ID:    "echo",
		Input: testObjectSchema(),
		Outputs: map[string]*OutputSchema{
			"success": {},
		},
		Handler: func(ctx context.Context, cfg any) (string, any) {
			return "success", cfg.(*testConfig).Name
		},
	}

	outputID, data := step.Call(context.Background(), &testConfig{Name: "hello"})
	if outputID != "success" {
		t.Errorf("expected success, got %q", outputID)
	}
	if data != "hello" {
		t.Errorf("expected hello, got %v", data)
	}
}
