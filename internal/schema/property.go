package schema

// PropertyType — тип значения свойства входной схемы.
type PropertyType string

// Допустимые типы свойств.
const (
	TypeString  PropertyType = "string"
	TypeInteger PropertyType = "integer"
	TypeNumber  PropertyType = "number"
	TypeBoolean PropertyType = "boolean"
	TypeObject  PropertyType = "object"
	TypeArray   PropertyType = "array"

	// TypeAny — тип не проверяется при Unserialize.
	TypeAny PropertyType = "any"
)

// Property — одно именованное свойство входной схемы.
type Property struct {
	// Name — имя свойства (ключ в config сценария).
	Name string

	// Type — тип значения.
	Type PropertyType

	// Required — обязательно ли свойство.
	Required bool

	// Description — описание для генерируемой JSON Schema.
	Description string
}

// matches проверяет, что сырое значение совместимо с типом свойства.
// nil допустим только для необязательных свойств (проверяется выше).
func (p Property) matches(v any) bool {
	switch p.Type {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeInteger:
		switch v.(type) {
		case int, int32, int64:
			return true
		case float64:
			// YAML/JSON декодеры могут вернуть целое как float64
			f := v.(float64)
			return f == float64(int64(f))
		}
		return false
	case TypeNumber:
		switch v.(type) {
		case int, int32, int64, float32, float64:
			return true
		}
		return false
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeObject:
		_, ok := v.(map[string]any)
		return ok
	case TypeArray:
		_, ok := v.([]any)
		return ok
	default:
		return true
	}
}

// jsonType возвращает имя типа для JSON Schema.
// Для TypeAny тип в схеме не указывается.
func (p Property) jsonType() (string, bool) {
	switch p.Type {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeObject, TypeArray:
		return string(p.Type), true
	default:
		return "", false
	}
}
