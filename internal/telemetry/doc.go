// Package telemetry обеспечивает наблюдаемость выполнения сценариев.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики шагов и run'ов
//
// Логи несут корреляционные поля run_id, step_id и scenario;
// метрики экспортируются CLI на /metrics endpoint по запросу.
package telemetry
