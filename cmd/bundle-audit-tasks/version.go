package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/bundleaudit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bundle-audit-tasks",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bundle-audit-tasks version %s\n", strings.TrimSpace(bundleaudit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
