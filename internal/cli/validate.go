package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaiso/Mayhem/internal/engine"
	"github.com/shaiso/Mayhem/internal/steps"
)

// NewValidateCmd создаёт команду статической проверки сценария.
//
// Проверяет форму документа и наличие всех id в реестре,
// не выполняя ни одного шага.
func NewValidateCmd(outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "validate SCENARIO",
		Short: "Validate a scenario file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()
			scenarioPath := args[0]

			doc, err := engine.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}

			invocations, err := engine.ValidateDocument(doc)
			if err != nil {
				return err
			}

			registry, err := steps.DefaultRegistry()
			if err != nil {
				return err
			}

			for _, inv := range invocations {
				if _, ok := registry.Get(inv.ID); !ok {
					return fmt.Errorf("%w %q at index %d in %s",
						engine.ErrUnknownStep, inv.ID, inv.Index, scenarioPath)
				}
			}

			out.Success(fmt.Sprintf("Scenario %s is valid (%d steps)", scenarioPath, len(invocations)))
			return nil
		},
	}
}
