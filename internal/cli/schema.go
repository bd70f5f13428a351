package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/Mayhem/internal/engine"
	"github.com/shaiso/Mayhem/internal/steps"
)

// NewSchemaCmd создаёт команду экспорта JSON Schema файла сценария.
//
// Схема пригодна для внешнего тулинга (редакторы, валидаторы),
// проверяющего сценарии до запуска.
func NewSchemaCmd(outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for scenario files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			registry, err := steps.DefaultRegistry()
			if err != nil {
				return err
			}

			doc, err := engine.JSONSchema(registry)
			if err != nil {
				return err
			}

			out.Raw(doc)
			return nil
		},
	}
}
