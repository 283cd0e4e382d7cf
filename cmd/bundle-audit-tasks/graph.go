package main

import (
	"fmt"

	"github.com/aretw0/bundleaudit/internal/cli"
	"github.com/aretw0/bundleaudit/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the task graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the tasks and the prerequisites they trigger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, err := cli.NewHost(optionsFromFlags(cmd))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(host.Registry.Tasks()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
