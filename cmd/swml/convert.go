package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/schema"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|->",
	Short: "Convert a document between JSON and YAML",
	Long: `Reads a document and writes it in the other format. Key order is kept, so
sections and switch cases come out in the order they were written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		out, _ := cmd.Flags().GetString("output")

		data, src, err := readInput(args[0], from)
		if err != nil {
			return err
		}

		dst, err := target(to, src)
		if err != nil {
			return err
		}

		tree, err := codec.Decode(data, src)
		if err != nil {
			return err
		}
		if cfg.Strict {
			if err := schema.ValidateDocument(tree); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
		}
		encoded, err := codec.Encode(tree, dst)
		if err != nil {
			return err
		}

		logger.Debug("converted document", "from", src, "to", dst, "bytes", len(encoded))
		return writeOutput(cmd.OutOrStdout(), out, encoded, dst)
	},
}

// target defaults to the opposite of the source format.
func target(to string, src codec.Format) (codec.Format, error) {
	if to != "" {
		return codec.ParseFormat(to)
	}
	if src == codec.YAML {
		return codec.JSON, nil
	}
	return codec.YAML, nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("from", "", "Input format (default: from the file extension, json for stdin)")
	convertCmd.Flags().String("to", "", "Output format (default: the other one)")
	convertCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}
