package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRenderOutput(t *testing.T) {
	step := mustRegisteredStep(t, "step1", "error")

	rendered, err := RenderOutput(step, "success", map[string]any{"message": "done"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(rendered), &envelope); err != nil {
		t.Fatalf("rendered output is not valid JSON: %v", err)
	}

	if envelope["output_id"] != "success" {
		t.Errorf("output_id = %v, want success", envelope["output_id"])
	}
	data, ok := envelope["output_data"].(map[string]any)
	if !ok {
		t.Fatalf("expected output_data map, got %T", envelope["output_data"])
	}
	if data["message"] != "done" {
		t.Errorf("output_data = %v", data)
	}
}

func TestRenderOutput_NilData(t *testing.T) {
	step := mustRegisteredStep(t, "step1")

	rendered, err := RenderOutput(step, "success", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(rendered), &envelope); err != nil {
		t.Fatalf("rendered output is not valid JSON: %v", err)
	}
	if envelope["output_data"] != nil {
		t.Errorf("expected null output_data, got %v", envelope["output_data"])
	}
}

func TestRenderOutput_UnknownOutputID(t *testing.T) {
	step := mustRegisteredStep(t, "step1")

	_, err := RenderOutput(step, "bogus", nil)
	if !errors.Is(err, ErrOutputNotFound) {
		t.Errorf("expected ErrOutputNotFound, got %v", err)
	}
}
