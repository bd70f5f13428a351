package domain

// Ключи элемента сценария.
const (
	// KeyID — ключ идентификатора шага в элементе сценария.
	KeyID = "id"

	// KeyConfig — ключ конфигурации шага в элементе сценария.
	KeyConfig = "config"
)

// Invocation — один валидированный элемент сценария.
//
// Получается 1:1 из элемента документа после проверки формы.
// Idempotent-данные: сценарий может содержать несколько invocations
// с одинаковым ID (один шаг выполняется несколько раз).
type Invocation struct {
	// Index — позиция в документе (с нуля). Только для диагностики.
	Index int

	// ID — идентификатор шага; должен существовать в реестре.
	ID string

	// Config — сырая конфигурация шага, без коэрции.
	Config map[string]any
}
