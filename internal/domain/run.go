package domain

import "github.com/google/uuid"

// RunContext — ambient-входы одного run'а.
//
// Передаётся в Runner.Run и живёт только в пределах run'а.
type RunContext struct {
	// RunID — идентификатор run'а. Используется только для
	// корреляции в логах и метриках.
	RunID uuid.UUID

	// KubeconfigPath — путь к kubeconfig кластера.
	// Инжектируется в шаги, декларирующие ContextKubeconfigPath.
	KubeconfigPath string

	// MayhemConfigPath — путь к конфигурации оркестратора.
	// Инжектируется в шаги, декларирующие ContextMayhemConfig.
	MayhemConfigPath string
}
