package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/bundleaudit/internal/cli"
	"github.com/aretw0/bundleaudit/pkg/adapters/process"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bundle-audit-tasks [task] [-- args...]",
	Short: "Runs bundler-audit as build tasks",
	Long: `Runs the bundle:audit tasks (and their bundler:audit aliases).
A failing audit exits with the exact status bundler-audit returned.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and exits with the task's status.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	cli.Report(os.Stderr, err)
	os.Exit(cli.ExitCode(err))
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", process.DefaultConfigFile, "Config file overriding the bundler-audit command, dir and env")
	rootCmd.PersistentFlags().Bool("debug", false, "Log task and process events to stderr")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file after the run")
}

func optionsFromFlags(cmd *cobra.Command) cli.Options {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	metricsFile, _ := cmd.Flags().GetString("metrics-file")

	return cli.Options{
		ConfigPath:  configPath,
		Debug:       debug,
		MetricsFile: metricsFile,
	}
}
