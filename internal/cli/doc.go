// Package cli реализует команды mayhem-cli.
//
// Команды:
//   - run       — выполнить сценарий (run.go)
//   - validate  — проверить сценарий без выполнения (validate.go)
//   - schema    — напечатать JSON Schema файла сценария (schema.go)
//   - steps     — перечислить зарегистрированные шаги (steps.go)
//
// Вывод форматируется через Output (output.go): таблица для людей,
// --json для скриптов. Сообщения о ходе работы идут в stderr,
// данные — в stdout.
//
// CLI — тонкий слой: вся семантика выполнения живёт в internal/engine,
// ошибки оттуда пробрасываются наружу как есть и завершают процесс
// ненулевым кодом.
package cli
