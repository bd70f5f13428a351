package steps

import (
	"context"
	"time"

	"github.com/shaiso/Mayhem/internal/schema"
)

// WaitConfig — конфигурация шага "wait".
type WaitConfig struct {
	// DurationSec — длительность паузы в секундах.
	DurationSec float64 `json:"duration_sec"`
}

// waitSuccess — данные success-слота шага "wait".
type waitSuccess struct {
	WaitedSec float64 `json:"waited_sec"`
}

// waitError — данные error-слота шага "wait".
type waitError struct {
	Reason string `json:"reason"`
}

// NewWaitStep создаёт контракт шага "wait".
//
// Пауза между фазами сценария: даёт кластеру время отреагировать
// на предыдущий шаг. Поддерживает отмену через context — отмена
// заполняет error-слот.
func NewWaitStep() *schema.StepSchema {
	return &schema.StepSchema{
		ID:          "wait",
		Description: "Pause the scenario for a fixed duration",
		Input: &schema.ObjectSchema{
			ID:    "wait",
			Title: "Wait step input",
			Properties: []schema.Property{
				{
					Name:        "duration_sec",
					Type:        schema.TypeNumber,
					Required:    true,
					Description: "Pause duration in seconds",
				},
			},
			New: func() any { return &WaitConfig{} },
		},
		Outputs: map[string]*schema.OutputSchema{
			"success": {Description: "Pause completed"},
			"error":   {Description: "Pause cancelled"},
		},
		Handler: runWait,
	}
}

// runWait выполняет паузу.
func runWait(ctx context.Context, cfg any) (string, any) {
	c := cfg.(*WaitConfig)

	if c.DurationSec <= 0 {
		return "error", waitError{Reason: "duration_sec must be positive"}
	}

	duration := time.Duration(c.DurationSec * float64(time.Second))

	select {
	case <-time.After(duration):
		return "success", waitSuccess{WaitedSec: c.DurationSec}
	case <-ctx.Done():
		return "error", waitError{Reason: ctx.Err().Error()}
	}
}
