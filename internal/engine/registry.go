package engine

import (
	"fmt"

	"github.com/shaiso/Mayhem/internal/domain"
	"github.com/shaiso/Mayhem/internal/schema"
)

// RegisteredStep — контракт шага плюс классификация его выходных слотов.
//
// Набор failure-слотов вычисляется один раз при создании и далее
// не перепроверяется: Classify — это один lookup.
type RegisteredStep struct {
	// Schema — контракт шага. Только чтение.
	Schema *schema.StepSchema

	failure map[string]bool
}

// NewRegisteredStep оборачивает контракт набором failure-слотов.
//
// Каждый failureID обязан существовать в Outputs контракта —
// иначе классификация была бы молча неполной.
func NewRegisteredStep(s *schema.StepSchema, failureIDs ...string) (RegisteredStep, error) {
	if s == nil {
		return RegisteredStep{}, ErrNilSchema
	}

	failure := make(map[string]bool, len(failureIDs))
	for _, id := range failureIDs {
		if _, ok := s.Outputs[id]; !ok {
			return RegisteredStep{}, fmt.Errorf("%w: %q (step %s)", ErrUnknownOutput, id, s.ID)
		}
		failure[id] = true
	}

	return RegisteredStep{Schema: s, failure: failure}, nil
}

// Classify превращает сырой результат вызова шага в tagged Outcome.
func (r RegisteredStep) Classify(outputID string, data any) domain.Outcome {
	if r.failure[outputID] {
		return domain.NewFailure(outputID, data)
	}
	return domain.NewSuccess(outputID, data)
}

// FailureOutputs возвращает идентификаторы failure-слотов.
func (r RegisteredStep) FailureOutputs() []string {
	ids := make([]string, 0, len(r.failure))
	for id := range r.failure {
		ids = append(ids, id)
	}
	return ids
}

// Registry — неизменяемый реестр шагов по идентификатору.
//
// Создаётся один раз на процесс; после конструирования только чтение,
// поэтому безопасно разделяется между последовательными run'ами
// без блокировок.
type Registry struct {
	byID  map[string]RegisteredStep
	order []string
}

// NewRegistry строит реестр из упорядоченного набора шагов.
//
// Конструирование атомарно: дубликат идентификатора — ошибка,
// частично заполненный реестр наружу не отдаётся.
func NewRegistry(steps ...RegisteredStep) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]RegisteredStep, len(steps)),
		order: make([]string, 0, len(steps)),
	}

	for _, step := range steps {
		if step.Schema == nil {
			return nil, ErrNilSchema
		}
		id := step.Schema.ID
		if _, exists := r.byID[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStep, id)
		}
		r.byID[id] = step
		r.order = append(r.order, id)
	}

	return r, nil
}

// Get возвращает шаг по идентификатору.
// Отсутствие — не ошибка: вызывающий переводит его в свою диагностику.
func (r *Registry) Get(id string) (RegisteredStep, bool) {
	step, ok := r.byID[id]
	return step, ok
}

// IDs возвращает идентификаторы шагов в порядке регистрации.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Count возвращает количество зарегистрированных шагов.
func (r *Registry) Count() int {
	return len(r.byID)
}
