package schema

import (
	"context"
	"encoding/json"
	"fmt"
)

// ContextKind — вид ambient-значения, которое шаг может принять от runner'а.
//
// Шаг декларирует принимаемые виды статически в StepSchema.Contexts;
// runner устанавливает только задекларированные значения.
type ContextKind string

const (
	// ContextKubeconfigPath — путь к kubeconfig кластера, с которым
	// работает run.
	ContextKubeconfigPath ContextKind = "kubeconfig_path"

	// ContextMayhemConfig — путь к конфигурации оркестратора mayhem.
	ContextMayhemConfig ContextKind = "mayhem_config"
)

// KubeconfigSetter реализуется конфигурацией шага, декларирующего
// ContextKubeconfigPath.
type KubeconfigSetter interface {
	SetKubeconfigPath(path string)
}

// MayhemConfigSetter реализуется конфигурацией шага, декларирующего
// ContextMayhemConfig.
type MayhemConfigSetter interface {
	SetMayhemConfig(path string)
}

// Inject устанавливает ambient-значение kind на типизированную
// конфигурацию cfg. Возвращает ErrContextNotAccepted, если cfg
// не реализует setter для kind — это ошибка контракта, а не данных.
func Inject(cfg any, kind ContextKind, value string) error {
	switch kind {
	case ContextKubeconfigPath:
		s, ok := cfg.(KubeconfigSetter)
		if !ok {
			return fmt.Errorf("%w: %s (%T)", ErrContextNotAccepted, kind, cfg)
		}
		s.SetKubeconfigPath(value)
	case ContextMayhemConfig:
		s, ok := cfg.(MayhemConfigSetter)
		if !ok {
			return fmt.Errorf("%w: %s (%T)", ErrContextNotAccepted, kind, cfg)
		}
		s.SetMayhemConfig(value)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrContextNotAccepted, kind)
	}
	return nil
}

// SerializeFunc превращает сырые выходные данные шага в структурное
// представление (map/slice/скаляры), пригодное для JSON.
type SerializeFunc func(data any) (any, error)

// OutputSchema — один именованный выходной слот шага.
type OutputSchema struct {
	// Description — назначение слота.
	Description string

	// Serialize — сериализатор данных слота.
	// Если nil, используется DefaultSerialize.
	Serialize SerializeFunc
}

// DefaultSerialize сериализует данные через JSON roundtrip.
func DefaultSerialize(data any) (any, error) {
	if data == nil {
		return nil, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return out, nil
}

// HandlerFunc выполняет шаг с уже типизированной конфигурацией.
//
// Возвращает идентификатор заполненного выходного слота и его данные.
// Ошибки выполнения выражаются через error-слоты, не через panic.
type HandlerFunc func(ctx context.Context, cfg any) (outputID string, outputData any)

// StepSchema — контракт одной способности (capability).
//
// Контракт создаётся один раз при старте и далее не изменяется.
type StepSchema struct {
	// ID — стабильный идентификатор шага.
	ID string

	// Description — назначение шага.
	Description string

	// Input — схема входной конфигурации.
	Input *ObjectSchema

	// Outputs — выходные слоты по идентификатору.
	Outputs map[string]*OutputSchema

	// Contexts — ambient-значения, которые шаг принимает.
	Contexts []ContextKind

	// Handler — функция выполнения.
	Handler HandlerFunc
}

// Call выполняет шаг. Вызов синхронный и блокирующий; его внутреннее
// поведение целиком на стороне реализации шага.
func (s *StepSchema) Call(ctx context.Context, cfg any) (string, any) {
	return s.Handler(ctx, cfg)
}
