package steps

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/shaiso/Mayhem/internal/schema"
)

const defaultCommandTimeout = 60 * time.Second

// CommandConfig — конфигурация шага "command".
type CommandConfig struct {
	// Command — исполняемый файл.
	Command string `json:"command"`

	// Args — аргументы команды.
	Args []string `json:"args,omitempty"`

	// TimeoutSec — таймаут выполнения в секундах. Default: 60.
	TimeoutSec float64 `json:"timeout_sec,omitempty"`

	// kubeconfigPath — инжектируется runner'ом (ContextKubeconfigPath),
	// в конфиге сценария не задаётся.
	kubeconfigPath string
}

// SetKubeconfigPath реализует schema.KubeconfigSetter.
func (c *CommandConfig) SetKubeconfigPath(path string) {
	c.kubeconfigPath = path
}

// commandSuccess — данные success-слота шага "command".
type commandSuccess struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
}

// commandError — данные error-слота шага "command".
type commandError struct {
	Message  string `json:"message"`
	ExitCode int    `json:"exit_code,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
}

// NewCommandStep создаёт контракт шага "command".
//
// Выполняет локальную команду (обычно kubectl или другой клиентский
// инструмент). Путь kubeconfig run'а экспортируется команде через
// переменную окружения KUBECONFIG — шаг декларирует
// ContextKubeconfigPath статически.
func NewCommandStep() *schema.StepSchema {
	return &schema.StepSchema{
		ID:          "command",
		Description: "Run a local command with the run's kubeconfig exported",
		Input: &schema.ObjectSchema{
			ID:    "command",
			Title: "Command step input",
			Properties: []schema.Property{
				{
					Name:        "command",
					Type:        schema.TypeString,
					Required:    true,
					Description: "Executable to run",
				},
				{
					Name:        "args",
					Type:        schema.TypeArray,
					Description: "Command arguments",
				},
				{
					Name:        "timeout_sec",
					Type:        schema.TypeNumber,
					Description: "Execution timeout in seconds (default 60)",
				},
			},
			New: func() any { return &CommandConfig{} },
		},
		Outputs: map[string]*schema.OutputSchema{
			"success": {Description: "Command exited with code 0"},
			"error":   {Description: "Command failed or timed out"},
		},
		Contexts: []schema.ContextKind{schema.ContextKubeconfigPath},
		Handler:  runCommand,
	}
}

// runCommand выполняет команду.
func runCommand(ctx context.Context, cfg any) (string, any) {
	c := cfg.(*CommandConfig)

	timeout := defaultCommandTimeout
	if c.TimeoutSec > 0 {
		timeout = time.Duration(c.TimeoutSec * float64(time.Second))
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Command, c.Args...)
	cmd.Env = os.Environ()
	if c.kubeconfigPath != "" {
		cmd.Env = append(cmd.Env, "KUBECONFIG="+c.kubeconfigPath)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		out := commandError{
			Message: err.Error(),
			Stderr:  stderr.String(),
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			out.ExitCode = exitErr.ExitCode()
		}
		return "error", out
	}

	return "success", commandSuccess{
		ExitCode: 0,
		Stdout:   stdout.String(),
	}
}
