package engine

import (
	"fmt"

	"github.com/shaiso/Mayhem/internal/domain"
)

// ValidateDocument проверяет форму документа сценария и превращает его
// в упорядоченный список invocations.
//
// Весь документ валидируется до выполнения первого шага: дефект формы
// в любом элементе отклоняет run целиком, с нулевыми side effects.
//
// Проверки, в порядке:
//  1. верхний уровень — список
//  2. каждый элемент — mapping
//  3. в элементе есть 'id' и это строка
//  4. в элементе есть 'config' и это mapping
//
// Дальнейшей коэрции на этом этапе нет; config уходит дальше как есть.
func ValidateDocument(doc any) ([]domain.Invocation, error) {
	entries, ok := doc.([]any)
	if !ok {
		return nil, NewValidationError(-1,
			fmt.Sprintf("invalid scenario: expected list, got %T", doc), ErrNotList)
	}

	invocations := make([]domain.Invocation, 0, len(entries))

	for i, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, NewValidationError(i,
				fmt.Sprintf("invalid scenario: expected a list of dict's, entry %d is %T", i, entry),
				ErrEntryNotMapping)
		}

		rawID, ok := m[domain.KeyID]
		if !ok {
			return nil, NewValidationError(i,
				fmt.Sprintf("invalid scenario: missing 'id' field in entry %d", i), ErrMissingID)
		}
		id, ok := rawID.(string)
		if !ok {
			return nil, NewValidationError(i,
				fmt.Sprintf("invalid scenario: 'id' must be a string in entry %d, got %T", i, rawID),
				ErrIDNotString)
		}

		rawConfig, ok := m[domain.KeyConfig]
		if !ok {
			return nil, NewValidationError(i,
				fmt.Sprintf("invalid scenario: missing 'config' field in entry %d", i), ErrMissingConfig)
		}
		config, ok := rawConfig.(map[string]any)
		if !ok {
			if rawConfig == nil {
				// Пустой config в YAML: "config:" без значения.
				config = map[string]any{}
			} else {
				return nil, NewValidationError(i,
					fmt.Sprintf("invalid scenario: 'config' must be a mapping in entry %d, got %T", i, rawConfig),
					ErrConfigNotMapping)
			}
		}

		invocations = append(invocations, domain.Invocation{
			Index:  i,
			ID:     id,
			Config: config,
		})
	}

	return invocations, nil
}
