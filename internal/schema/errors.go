package schema

import "errors"

// Ошибки схемы.
var (
	// ErrUnknownProperty — во входных данных ключ, которого нет в схеме.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrMissingProperty — отсутствует обязательное свойство.
	ErrMissingProperty = errors.New("missing required property")

	// ErrPropertyType — значение свойства не совпадает с типом схемы.
	ErrPropertyType = errors.New("property type mismatch")

	// ErrUnserialize — не удалось декодировать конфигурацию.
	ErrUnserialize = errors.New("config unserialize failed")

	// ErrSerialize — не удалось сериализовать выходные данные.
	ErrSerialize = errors.New("output serialize failed")

	// ErrContextNotAccepted — конфигурация шага не реализует setter
	// для задекларированного ContextKind.
	ErrContextNotAccepted = errors.New("config does not accept declared context kind")
)
