// Package engine выполняет декларативные сценарии Mayhem.
//
// # Обзор
//
// Сценарий — YAML-файл с упорядоченным списком шагов:
//
//	# scenario.yaml
//	- id: wait
//	  config:
//	    duration_sec: 5
//	- id: http-probe
//	  config:
//	    url: https://example.com/healthz
//	    expected_status: 200
//
// Engine превращает такой файл в детерминированную последовательность
// side-effecting действий:
//
//	registry, err := engine.NewRegistry(steps...)
//	runner := engine.NewRunner(engine.Config{Registry: registry})
//	err = runner.Run(ctx, "scenario.yaml", domain.RunContext{...})
//
// # Компоненты
//
// ## Registry (registry.go)
//
// Неизменяемый реестр контрактов шагов по идентификатору.
// Конструирование атомарно: дубликат id — ErrDuplicateStep, частичный
// реестр не отдаётся. RegisteredStep дополняет контракт набором
// failure-слотов; классификация результата вычисляется при регистрации
// один раз (Classify — один lookup).
//
// ## Loader + Validator (loader.go, validate.go)
//
// LoadScenario декодирует YAML в generic-значение; ValidateDocument
// проверяет форму всего документа до выполнения первого шага:
// список → mapping'и → 'id' строка → 'config' mapping.
// Дефект формы отклоняет run целиком, с нулевыми side effects.
//
// ## Runner (runner.go)
//
// Строго последовательное выполнение в порядке документа:
//   - резолв id в реестре (промах — ErrUnknownStep, дальше не идём)
//   - Unserialize config в типизированную конфигурацию
//     (ошибки схемы пробрасываются как есть)
//   - инжекция задекларированных ambient-значений (schema.ContextKind)
//   - вызов Handler'а — opaque, синхронный, блокирующий
//   - классификация результата; первый failure прерывает run
//     (StepFailureError: позиция, файл, id шага)
//
// Откатов нет: выполненные шаги остаются выполненными.
// Retry/backoff, персистентность истории и параллелизм сознательно
// не реализуются на этом уровне.
//
// ## Renderer (render.go)
//
// RenderOutput сериализует результат шага в единый JSON-конверт
// {"output_id": ..., "output_data": ...}.
//
// ## JSON Schema (jsonschema.go)
//
// JSONSchema собирает структурную схему файла сценария из входных схем
// всех зарегистрированных шагов: массив, items.oneOf по альтернативе
// на шаг, каждая требует 'id' (const) и 'config'. Результат
// детерминирован и пригоден для внешних валидаторов и редакторов.
//
// # Ошибки
//
// Все ошибки терминальны для run'а, ничего не ретраится и не
// понижается до warning:
//
//	ErrDuplicateStep    // конструирование реестра
//	*ValidationError    // форма документа (ErrNotList, ErrMissingID, ...)
//	ErrUnknownStep      // id вне реестра, по мере достижения
//	*StepFailureError   // шаг вернул failure-слот (ErrStepFailed)
//	schema.ErrUnserialize и др. // ошибки типизированного контракта
package engine
