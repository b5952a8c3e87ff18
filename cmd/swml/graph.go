package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/swml/internal/presentation/graph"
	"github.com/aretw0/swml/pkg/codec"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file|->",
	Short: "Export the section flow as a Mermaid diagram",
	Long:  `Outputs a Mermaid flowchart (graph TD) with one node per section and an edge for every execute, transfer and goto.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")

		data, f, err := readInput(args[0], from)
		if err != nil {
			return err
		}
		tree, err := codec.Decode(data, f)
		if err != nil {
			return err
		}
		out, err := graph.GenerateMermaid(tree)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("from", "", "Input format (default: from the file extension)")
}
