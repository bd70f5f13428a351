// Package steps содержит встроенные шаги сценариев Mayhem.
//
// # Обзор
//
// Каждый шаг — это schema.StepSchema: типизированная входная схема,
// именованные выходные слоты и Handler. Поведение шага непрозрачно
// для engine — engine знает только контракт и набор failure-слотов.
//
// # Шаги
//
// ## wait (wait.go)
//
// Пауза между фазами сценария.
//
// Config:
//
//	{"duration_sec": 5}
//
// Outputs:
//
//	success: {"waited_sec": 5}
//	error:   {"reason": "..."}   // отмена или невалидная длительность
//
// ## http-probe (httpprobe.go)
//
// Проверка доступности endpoint'а.
//
// Config:
//
//	{"url": "https://...", "method": "GET", "expected_status": 200, "timeout_sec": 30}
//
// Outputs:
//
//	success: {"status_code": 200, "duration_ms": 12}
//	error:   {"message": "...", "status_code": 503}
//
// ## command (command.go)
//
// Локальная команда (kubectl и т.п.). Декларирует
// schema.ContextKubeconfigPath: runner устанавливает путь kubeconfig,
// шаг экспортирует его команде через KUBECONFIG.
//
// Config:
//
//	{"command": "kubectl", "args": ["delete", "pod", "x"], "timeout_sec": 60}
//
// Outputs:
//
//	success: {"exit_code": 0, "stdout": "..."}
//	error:   {"message": "...", "exit_code": 1, "stderr": "..."}
//
// # Регистрация
//
// Builtin() оборачивает контракты их failure-слотами (у всех
// встроенных шагов это "error"); DefaultRegistry() собирает
// неизменяемый engine.Registry:
//
//	registry, err := steps.DefaultRegistry()
package steps
