package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shaiso/Mayhem/internal/schema"
)

func TestDefaultRegistry(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{"wait", "http-probe", "command"} {
		step, ok := registry.Get(id)
		if !ok {
			t.Errorf("expected %q registered", id)
			continue
		}
		outcome := step.Classify("error", nil)
		if !outcome.Failed() {
			t.Errorf("expected %q error output classified as failure", id)
		}
		outcome = step.Classify("success", nil)
		if outcome.Failed() {
			t.Errorf("expected %q success output classified as success", id)
		}
	}
}

func TestWaitStep(t *testing.T) {
	step := NewWaitStep()

	cfg, err := step.Input.Unserialize(map[string]any{"duration_sec": 0.01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outputID, data := step.Call(context.Background(), cfg)
	if outputID != "success" {
		t.Fatalf("expected success, got %q (%v)", outputID, data)
	}
	if out := data.(waitSuccess); out.WaitedSec != 0.01 {
		t.Errorf("waited_sec = %v", out.WaitedSec)
	}
}

func TestWaitStep_InvalidDuration(t *testing.T) {
	step := NewWaitStep()

	cfg, err := step.Input.Unserialize(map[string]any{"duration_sec": -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outputID, _ := step.Call(context.Background(), cfg)
	if outputID != "error" {
		t.Errorf("expected error output, got %q", outputID)
	}
}

func TestWaitStep_Cancelled(t *testing.T) {
	step := NewWaitStep()

	cfg, err := step.Input.Unserialize(map[string]any{"duration_sec": 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	outputID, data := step.Call(ctx, cfg)
	if outputID != "error" {
		t.Fatalf("expected error output on cancellation, got %q", outputID)
	}
	if out := data.(waitError); out.Reason == "" {
		t.Error("expected cancellation reason")
	}
}

func TestWaitStep_MissingDuration(t *testing.T) {
	step := NewWaitStep()

	if _, err := step.Input.Unserialize(map[string]any{}); err == nil {
		t.Error("expected error for missing duration_sec")
	}
}

func TestHTTPProbeStep(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	step := NewHTTPProbeStep()

	tests := []struct {
		name       string
		raw        map[string]any
		wantOutput string
	}{
		{
			name:       "expected status",
			raw:        map[string]any{"url": srv.URL, "expected_status": 204},
			wantOutput: "success",
		},
		{
			name:       "unexpected status",
			raw:        map[string]any{"url": srv.URL, "expected_status": 200},
			wantOutput: "error",
		},
		{
			name:       "unreachable",
			raw:        map[string]any{"url": "http://127.0.0.1:1", "timeout_sec": 0.5},
			wantOutput: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := step.Input.Unserialize(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			outputID, _ := step.Call(context.Background(), cfg)
			if outputID != tt.wantOutput {
				t.Errorf("expected %q, got %q", tt.wantOutput, outputID)
			}
		})
	}
}

func TestCommandStep(t *testing.T) {
	step := NewCommandStep()

	cfg, err := step.Input.Unserialize(map[string]any{
		"command": "sh",
		"args":    []any{"-c", `printf %s "$KUBECONFIG"`},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Шаг декларирует ContextKubeconfigPath; инжектируем как runner.
	if err := schema.Inject(cfg, schema.ContextKubeconfigPath, "/path/to/kubeconfig"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outputID, data := step.Call(context.Background(), cfg)
	if outputID != "success" {
		t.Fatalf("expected success, got %q (%v)", outputID, data)
	}
	if out := data.(commandSuccess); out.Stdout != "/path/to/kubeconfig" {
		t.Errorf("expected injected KUBECONFIG in stdout, got %q", out.Stdout)
	}
}

func TestCommandStep_Failure(t *testing.T) {
	step := NewCommandStep()

	cfg, err := step.Input.Unserialize(map[string]any{
		"command": "sh",
		"args":    []any{"-c", "exit 3"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outputID, data := step.Call(context.Background(), cfg)
	if outputID != "error" {
		t.Fatalf("expected error output, got %q", outputID)
	}
	if out := data.(commandError); out.ExitCode != 3 {
		t.Errorf("exit_code = %d, want 3", out.ExitCode)
	}
}

func TestCommandStep_DeclaresKubeconfigContext(t *testing.T) {
	step := NewCommandStep()

	if len(step.Contexts) != 1 || step.Contexts[0] != schema.ContextKubeconfigPath {
		t.Errorf("expected ContextKubeconfigPath declared, got %v", step.Contexts)
	}
}
