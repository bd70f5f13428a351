package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaiso/Mayhem/internal/domain"
	"github.com/shaiso/Mayhem/internal/schema"
	"github.com/shaiso/Mayhem/internal/telemetry"
)

// Runner выполняет сценарии против реестра шагов.
//
// Выполнение строго последовательное: шаги идут один за другим,
// в порядке документа, без параллелизма и interleaving. Единственная
// точка блокировки — вызов Handler'а шага; таймауты и отмена на этом
// уровне не реализуются, это ответственность самого шага.
type Runner struct {
	registry *Registry
	logger   *slog.Logger
	metrics  *telemetry.Metrics
}

// Config — конфигурация Runner.
type Config struct {
	// Registry — реестр шагов. Обязателен.
	Registry *Registry

	// Logger — логгер. Если nil, используется slog.Default().
	Logger *slog.Logger

	// Metrics — метрики выполнения. Может быть nil.
	Metrics *telemetry.Metrics
}

// NewRunner создаёт Runner.
func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		registry: cfg.Registry,
		logger:   logger,
		metrics:  cfg.Metrics,
	}
}

// Run загружает, валидирует и выполняет сценарий.
//
// Порядок:
//  1. загрузка файла и валидация формы всего документа
//  2. для каждого invocation по порядку: резолв id в реестре,
//     десериализация config в типизированную конфигурацию,
//     инжекция задекларированных ambient-значений, вызов шага,
//     классификация результата
//  3. первый failure-результат прерывает run; шаги после него
//     не выполняются, уже выполненные не откатываются
//
// Ошибки десериализации/сериализации схемы пробрасываются как есть:
// они принадлежат типизированному контракту, не этому слою.
func (r *Runner) Run(ctx context.Context, scenarioPath string, run domain.RunContext) error {
	logger := telemetry.WithRunID(r.logger, run.RunID.String())
	logger = telemetry.WithScenario(logger, scenarioPath)

	doc, err := LoadScenario(scenarioPath)
	if err != nil {
		return err
	}

	invocations, err := ValidateDocument(doc)
	if err != nil {
		return err
	}

	logger.Info("scenario validated", "steps", len(invocations))

	for _, inv := range invocations {
		if err := r.runInvocation(ctx, logger, scenarioPath, run, inv); err != nil {
			r.metrics.ObserveRun("failed")
			return err
		}
	}

	r.metrics.ObserveRun("succeeded")
	logger.Info("scenario completed", "steps", len(invocations))
	return nil
}

// runInvocation выполняет один invocation.
func (r *Runner) runInvocation(ctx context.Context, logger *slog.Logger, scenarioPath string, run domain.RunContext, inv domain.Invocation) error {
	step, ok := r.registry.Get(inv.ID)
	if !ok {
		return fmt.Errorf("%w %q at index %d in %s", ErrUnknownStep, inv.ID, inv.Index, scenarioPath)
	}

	cfg, err := step.Schema.Input.Unserialize(inv.Config)
	if err != nil {
		return err
	}

	for _, kind := range step.Schema.Contexts {
		var value string
		switch kind {
		case schema.ContextKubeconfigPath:
			value = run.KubeconfigPath
		case schema.ContextMayhemConfig:
			value = run.MayhemConfigPath
		}
		if err := schema.Inject(cfg, kind, value); err != nil {
			return err
		}
	}

	stepLogger := telemetry.WithStepID(logger, inv.ID)
	stepLogger.Info("executing step", "index", inv.Index)

	started := time.Now()
	outputID, outputData := step.Schema.Call(ctx, cfg)
	elapsed := time.Since(started)

	outcome := step.Classify(outputID, outputData)
	if outcome.Failed() {
		r.metrics.ObserveStep(inv.ID, "failed", elapsed)
		return &StepFailureError{
			Index:    inv.Index,
			Scenario: scenarioPath,
			StepID:   inv.ID,
			OutputID: outputID,
		}
	}

	rendered, err := RenderOutput(step, outcome.OutputID, outcome.Data)
	if err != nil {
		r.metrics.ObserveStep(inv.ID, "failed", elapsed)
		return err
	}

	r.metrics.ObserveStep(inv.ID, "succeeded", elapsed)
	stepLogger.Info("step succeeded",
		"index", inv.Index,
		"duration_ms", elapsed.Milliseconds(),
		"output", rendered)

	return nil
}
