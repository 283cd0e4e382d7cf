package main

import (
	"github.com/aretw0/bundleaudit/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run TASK [-- ARGS...]",
	Short: "Run a task",
	Long: `Runs TASK and its prerequisites. Arguments after -- are passed to bundler-audit verbatim:

  bundle-audit-tasks run bundle:audit:check -- --ignore CVE-2024-0001`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		host, err := cli.NewHost(optionsFromFlags(cmd))
		if err != nil {
			return err
		}
		return host.Run(cmd.Context(), args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// `bundle-audit-tasks bundle:audit` is shorthand for `run bundle:audit`.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runCmd.RunE(cmd, args)
	}
}
