package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <template>",
	Short: "Generate a document from a built-in template",
	Long: `Builds one of the built-in documents and writes it out. Template parameters
are passed with --param key=value. Use --list to see what is available.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := newRegistry()
		w := cmd.OutOrStdout()

		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, e := range reg.Entries() {
				fmt.Fprintf(w, "%-8s %s\n", e.Name, e.Description)
			}
			return nil
		}

		params, _ := cmd.Flags().GetStringToString("param")
		out, _ := cmd.Flags().GetString("output")

		doc, err := reg.Build(context.Background(), args[0], params)
		if err != nil {
			return err
		}
		if cfg.Strict {
			if err := doc.Validate(); err != nil {
				return err
			}
		}

		f := cfg.OutputFormat()
		var buf bytes.Buffer
		if err := doc.Render(&buf, f); err != nil {
			return err
		}
		return writeOutput(w, out, buf.Bytes(), f)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringToStringP("param", "p", nil, "Template parameter as key=value (repeatable)")
	newCmd.Flags().String("format", "", "Output format: json or yaml")
	newCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	newCmd.Flags().Bool("list", false, "List the available templates")
}
