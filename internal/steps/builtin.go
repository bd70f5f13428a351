package steps

import "github.com/shaiso/Mayhem/internal/engine"

// Builtin возвращает все встроенные шаги, обёрнутые их failure-слотами,
// в стабильном порядке.
func Builtin() ([]engine.RegisteredStep, error) {
	wait, err := engine.NewRegisteredStep(NewWaitStep(), "error")
	if err != nil {
		return nil, err
	}
	probe, err := engine.NewRegisteredStep(NewHTTPProbeStep(), "error")
	if err != nil {
		return nil, err
	}
	command, err := engine.NewRegisteredStep(NewCommandStep(), "error")
	if err != nil {
		return nil, err
	}

	return []engine.RegisteredStep{wait, probe, command}, nil
}

// DefaultRegistry создаёт реестр со всеми встроенными шагами.
func DefaultRegistry() (*engine.Registry, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	return engine.NewRegistry(builtin...)
}
