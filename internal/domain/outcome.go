package domain

// Outcome — результат выполнения одного invocation.
//
// Tagged-тип: классификация success/failure вычисляется один раз
// при регистрации шага (по набору failure-слотов контракта),
// а не перепроверяется на каждый вызов.
type Outcome struct {
	// OutputID — идентификатор заполненного выходного слота.
	OutputID string

	// Data — сырые данные слота (opaque до сериализации).
	Data any

	failed bool
}

// NewSuccess создаёт успешный Outcome.
func NewSuccess(outputID string, data any) Outcome {
	return Outcome{OutputID: outputID, Data: data}
}

// NewFailure создаёт Outcome, означающий провал шага.
func NewFailure(outputID string, data any) Outcome {
	return Outcome{OutputID: outputID, Data: data, failed: true}
}

// Failed сообщает, означает ли Outcome провал шага.
func (o Outcome) Failed() bool {
	return o.failed
}
