package engine

import (
	"encoding/json"
	"fmt"

	"github.com/shaiso/Mayhem/internal/schema"
)

// renderedOutput — единый конверт для результата шага.
type renderedOutput struct {
	OutputID   string `json:"output_id"`
	OutputData any    `json:"output_data"`
}

// RenderOutput сериализует сырой результат шага в JSON-конверт
// {"output_id": ..., "output_data": ...}.
//
// Сериализатор ищется строго по outputID в Outputs контракта;
// неизвестный слот — ошибка контракта, не данных. Чистая функция.
func RenderOutput(step RegisteredStep, outputID string, data any) (string, error) {
	out, ok := step.Schema.Outputs[outputID]
	if !ok {
		return "", fmt.Errorf("%w: %q (step %s)", ErrOutputNotFound, outputID, step.Schema.ID)
	}

	serialize := out.Serialize
	if serialize == nil {
		serialize = schema.DefaultSerialize
	}

	structured, err := serialize(data)
	if err != nil {
		return "", err
	}

	rendered, err := json.Marshal(renderedOutput{
		OutputID:   outputID,
		OutputData: structured,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", schema.ErrSerialize, err)
	}

	return string(rendered), nil
}
