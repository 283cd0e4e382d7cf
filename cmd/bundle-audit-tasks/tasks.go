package main

import (
	"fmt"
	"os"

	"github.com/aretw0/bundleaudit/internal/cli"
	"github.com/aretw0/bundleaudit/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the available tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		long, _ := cmd.Flags().GetBool("long")

		host, err := cli.NewHost(optionsFromFlags(cmd))
		if err != nil {
			return err
		}
		tasks := host.Registry.Tasks()

		if !long {
			tui.PrintTaskList(cmd.OutOrStdout(), rootCmd.Name(), tasks, all)
			return nil
		}

		markdown := tui.TaskTable(tasks)
		if !tui.IsTerminal(os.Stdout) {
			fmt.Fprint(cmd.OutOrStdout(), markdown)
			return nil
		}
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		out, err := render(markdown)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)

	tasksCmd.Flags().BoolP("all", "A", false, "Include aliases without a description")
	tasksCmd.Flags().BoolP("long", "l", false, "Show a table with prerequisites")
}
