// Package schema определяет типизированные контракты шагов сценария.
//
// # Обзор
//
// Контракт шага (StepSchema) описывает одну способность (capability):
//   - ID — стабильный идентификатор шага
//   - Input — схема входной конфигурации (именованные типизированные свойства)
//   - Outputs — именованные выходные слоты с сериализаторами
//   - Contexts — какие ambient-значения шаг принимает (см. ContextKind)
//   - Handler — функция выполнения
//
// Успех/ошибка выполнения выражается не через error, а через то,
// какой выходной слот заполнен: Handler возвращает (outputID, outputData).
// Классификация слотов на success/failure происходит при регистрации
// шага в engine.Registry, а не в этом пакете.
//
// # Входная схема
//
// ObjectSchema валидирует сырой map[string]any и декодирует его
// в типизированную конфигурацию:
//
//	cfg, err := step.Input.Unserialize(raw)
//	if err != nil {
//	    // неизвестный ключ, отсутствующее обязательное свойство
//	    // или несовпадение типа
//	}
//
// Unserialize строгий: неизвестные ключи отклоняются.
//
// # Context injection
//
// Вместо проверки имён свойств во время выполнения шаг статически
// декларирует, какие ambient-значения он принимает:
//
//	Contexts: []schema.ContextKind{schema.ContextKubeconfigPath}
//
// Типизированная конфигурация такого шага обязана реализовать
// соответствующий setter-интерфейс (KubeconfigSetter или
// MayhemConfigSetter). Runner устанавливает только задекларированные
// значения; ничего другого никогда не инжектируется.
//
// # JSON Schema
//
// ObjectSchema.JSONSchema возвращает структурную схему входа.
// Она содержит метаданные уровня документа ($id, $schema, title,
// description) — engine.JSONSchema удаляет их при сборке общей схемы
// файла сценария.
package schema
