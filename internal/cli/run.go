package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/shaiso/Mayhem/internal/domain"
	"github.com/shaiso/Mayhem/internal/engine"
	"github.com/shaiso/Mayhem/internal/steps"
	"github.com/shaiso/Mayhem/internal/telemetry"
)

// NewRunCmd создаёт команду выполнения сценария.
func NewRunCmd(outputFn func() *Output) *cobra.Command {
	var kubeconfig string
	var configPath string
	var runID string
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "run SCENARIO",
		Short: "Run a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()
			scenarioPath := args[0]

			id, err := parseRunID(runID)
			if err != nil {
				return err
			}

			registry, err := steps.DefaultRegistry()
			if err != nil {
				return err
			}

			logger := telemetry.SetupLogger()

			promReg := prometheus.NewRegistry()
			metrics := telemetry.NewMetrics(promReg)
			if metricsAddr != "" {
				go serveMetrics(metricsAddr, promReg)
			}

			runner := engine.NewRunner(engine.Config{
				Registry: registry,
				Logger:   logger,
				Metrics:  metrics,
			})

			run := domain.RunContext{
				RunID:            id,
				KubeconfigPath:   resolveKubeconfig(kubeconfig),
				MayhemConfigPath: configPath,
			}

			if err := runner.Run(cmd.Context(), scenarioPath, run); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Scenario %s completed (run %s)", scenarioPath, id))
			return nil
		},
	}

	cmd.Flags().StringVar(&kubeconfig, "kubeconfig", "", "Path to kubeconfig (default: $KUBECONFIG or ~/.kube/config)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the mayhem orchestrator config")
	cmd.Flags().StringVar(&runID, "run-id", "", "Run ID for correlation (default: random UUID)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Expose Prometheus metrics on this address during the run")

	return cmd
}

// parseRunID разбирает --run-id или генерирует новый.
func parseRunID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.New("invalid --run-id: expected a UUID")
	}
	return id, nil
}

// resolveKubeconfig определяет путь kubeconfig: флаг, иначе $KUBECONFIG,
// иначе ~/.kube/config.
func resolveKubeconfig(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kube", "config")
}

// serveMetrics поднимает /metrics endpoint на время run'а.
func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	http.ListenAndServe(addr, mux)
}
