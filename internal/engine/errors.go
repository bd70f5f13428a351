package engine

import (
	"errors"
	"fmt"
)

// Ошибки реестра.
var (
	// ErrDuplicateStep — два контракта с одним идентификатором.
	ErrDuplicateStep = errors.New("duplicate step ID")

	// ErrUnknownOutput — failure-слот не объявлен в outputs контракта.
	ErrUnknownOutput = errors.New("failure output not declared in step outputs")

	// ErrNilSchema — контракт шага отсутствует.
	ErrNilSchema = errors.New("step schema is nil")
)

// Ошибки валидации документа сценария.
var (
	// ErrNotList — верхний уровень документа не список.
	ErrNotList = errors.New("expected list")

	// ErrEntryNotMapping — элемент документа не mapping.
	ErrEntryNotMapping = errors.New("expected a list of dict's")

	// ErrMissingID — в элементе нет ключа 'id'.
	ErrMissingID = errors.New("missing 'id' field")

	// ErrIDNotString — значение 'id' не строка.
	ErrIDNotString = errors.New("'id' must be a string")

	// ErrMissingConfig — в элементе нет ключа 'config'.
	ErrMissingConfig = errors.New("missing 'config' field")

	// ErrConfigNotMapping — значение 'config' не mapping.
	ErrConfigNotMapping = errors.New("'config' must be a mapping")
)

// Ошибки выполнения.
var (
	// ErrUnknownStep — id из документа отсутствует в реестре.
	ErrUnknownStep = errors.New("invalid step")

	// ErrStepFailed — шаг вернул failure-слот.
	ErrStepFailed = errors.New("step failed")

	// ErrOutputNotFound — у контракта нет сериализатора для слота.
	// Ошибка контракта, не данных.
	ErrOutputNotFound = errors.New("output ID not found in step outputs")
)

// StepFailureError — шаг вернул failure-слот.
//
// Сообщение содержит позицию, файл сценария и идентификатор шага —
// независимые маркеры для диагностики и проверок.
type StepFailureError struct {
	Index    int    // позиция invocation в документе
	Scenario string // путь к файлу сценария
	StepID   string // идентификатор шага
	OutputID string // заполненный failure-слот
}

// Error реализует интерфейс error.
func (e *StepFailureError) Error() string {
	return fmt.Sprintf("step %d in %s (%s) failed: output %q", e.Index, e.Scenario, e.StepID, e.OutputID)
}

// Unwrap возвращает базовую ошибку.
func (e *StepFailureError) Unwrap() error {
	return ErrStepFailed
}

// ValidationError — ошибка формы документа сценария с контекстом.
//
// Index равен -1, когда ошибка относится к документу целиком
// (например, верхний уровень не список).
type ValidationError struct {
	Index   int    // позиция элемента; -1 для всего документа
	Message string // описание ошибки
	Err     error  // базовая ошибка (sentinel)
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError создаёт ошибку валидации документа.
func NewValidationError(index int, message string, err error) *ValidationError {
	return &ValidationError{
		Index:   index,
		Message: message,
		Err:     err,
	}
}
