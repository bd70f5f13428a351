package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScenario читает файл сценария и декодирует его в generic-значение.
//
// Синтаксис на диске — YAML; форма в памяти проверяется отдельно
// через ValidateDocument.
func LoadScenario(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	return doc, nil
}
