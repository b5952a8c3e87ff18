package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/swml"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of swml",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "swml version %s\n", strings.TrimSpace(swml.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
