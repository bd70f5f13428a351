// Mayhem CLI — выполняет декларативные fault-сценарии.
//
// Использование:
//
//	mayhem [--json] <command> [flags]
//
// Команды:
//
//	run       Выполнить сценарий
//	validate  Проверить сценарий без выполнения
//	schema    Напечатать JSON Schema файла сценария
//	steps     Перечислить зарегистрированные шаги
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Mayhem/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "mayhem",
		Short:         "Mayhem — declarative fault scenario runner",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewRunCmd(outputFn),
		cli.NewValidateCmd(outputFn),
		cli.NewSchemaCmd(outputFn),
		cli.NewStepsCmd(outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
