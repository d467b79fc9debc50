package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/menusys"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of menusys",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "menusys version %s\n", strings.TrimSpace(menusys.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
