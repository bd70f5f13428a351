package steps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shaiso/Mayhem/internal/schema"
)

const defaultProbeTimeout = 30 * time.Second

// HTTPProbeConfig — конфигурация шага "http-probe".
type HTTPProbeConfig struct {
	// URL — адрес для проверки.
	URL string `json:"url"`

	// Method — HTTP-метод. Default: GET.
	Method string `json:"method,omitempty"`

	// ExpectedStatus — ожидаемый код ответа. Default: 200.
	ExpectedStatus int `json:"expected_status,omitempty"`

	// TimeoutSec — таймаут запроса в секундах. Default: 30.
	TimeoutSec float64 `json:"timeout_sec,omitempty"`
}

// probeSuccess — данные success-слота шага "http-probe".
type probeSuccess struct {
	StatusCode int   `json:"status_code"`
	DurationMS int64 `json:"duration_ms"`
}

// probeError — данные error-слота шага "http-probe".
type probeError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
}

// NewHTTPProbeStep создаёт контракт шага "http-probe".
//
// Проверяет доступность endpoint'а во время или после инжекции сбоя:
// выполняет один запрос и сравнивает код ответа с ожидаемым.
// Недоступность или несовпадение кода заполняют error-слот.
func NewHTTPProbeStep() *schema.StepSchema {
	return &schema.StepSchema{
		ID:          "http-probe",
		Description: "Probe an HTTP endpoint and compare the status code",
		Input: &schema.ObjectSchema{
			ID:    "http-probe",
			Title: "HTTP probe step input",
			Properties: []schema.Property{
				{
					Name:        "url",
					Type:        schema.TypeString,
					Required:    true,
					Description: "Endpoint URL to probe",
				},
				{
					Name:        "method",
					Type:        schema.TypeString,
					Description: "HTTP method (default GET)",
				},
				{
					Name:        "expected_status",
					Type:        schema.TypeInteger,
					Description: "Expected HTTP status code (default 200)",
				},
				{
					Name:        "timeout_sec",
					Type:        schema.TypeNumber,
					Description: "Request timeout in seconds (default 30)",
				},
			},
			New: func() any { return &HTTPProbeConfig{} },
		},
		Outputs: map[string]*schema.OutputSchema{
			"success": {Description: "Endpoint responded with the expected status"},
			"error":   {Description: "Endpoint unreachable or unexpected status"},
		},
		Handler: runHTTPProbe,
	}
}

// runHTTPProbe выполняет один запрос.
func runHTTPProbe(ctx context.Context, cfg any) (string, any) {
	c := cfg.(*HTTPProbeConfig)

	method := c.Method
	if method == "" {
		method = http.MethodGet
	}
	expected := c.ExpectedStatus
	if expected == 0 {
		expected = http.StatusOK
	}
	timeout := defaultProbeTimeout
	if c.TimeoutSec > 0 {
		timeout = time.Duration(c.TimeoutSec * float64(time.Second))
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.URL, nil)
	if err != nil {
		return "error", probeError{Message: fmt.Sprintf("create request: %v", err)}
	}

	started := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "error", probeError{Message: err.Error()}
	}
	defer resp.Body.Close()

	// Дочитываем тело, чтобы соединение вернулось в пул.
	io.Copy(io.Discard, resp.Body)

	elapsed := time.Since(started)

	if resp.StatusCode != expected {
		return "error", probeError{
			Message:    fmt.Sprintf("expected status %d, got %d", expected, resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	return "success", probeSuccess{
		StatusCode: resp.StatusCode,
		DurationMS: elapsed.Milliseconds(),
	}
}
