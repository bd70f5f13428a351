package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/Mayhem/internal/steps"
)

// stepInfo — строка листинга шагов (для --json).
type stepInfo struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	Contexts       []string `json:"contexts,omitempty"`
	Outputs        []string `json:"outputs"`
	FailureOutputs []string `json:"failure_outputs"`
}

// NewStepsCmd создаёт команду листинга зарегистрированных шагов.
func NewStepsCmd(outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List registered steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			registry, err := steps.DefaultRegistry()
			if err != nil {
				return err
			}

			infos := make([]stepInfo, 0, registry.Count())
			for _, id := range registry.IDs() {
				step, _ := registry.Get(id)

				outputs := make([]string, 0, len(step.Schema.Outputs))
				for outputID := range step.Schema.Outputs {
					outputs = append(outputs, outputID)
				}
				sort.Strings(outputs)

				contexts := make([]string, 0, len(step.Schema.Contexts))
				for _, kind := range step.Schema.Contexts {
					contexts = append(contexts, string(kind))
				}

				failures := step.FailureOutputs()
				sort.Strings(failures)

				infos = append(infos, stepInfo{
					ID:             id,
					Description:    step.Schema.Description,
					Contexts:       contexts,
					Outputs:        outputs,
					FailureOutputs: failures,
				})
			}

			headers := []string{"ID", "CONTEXTS", "OUTPUTS", "FAILURE_OUTPUTS"}
			rows := make([][]string, len(infos))
			for i, info := range infos {
				rows[i] = []string{
					info.ID,
					strings.Join(info.Contexts, ","),
					strings.Join(info.Outputs, ","),
					strings.Join(info.FailureOutputs, ","),
				}
			}

			out.Print(headers, rows, infos)
			return nil
		},
	}
}
