package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/swml/internal/presentation/tui"
	"github.com/aretw0/swml/internal/validator"
	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check documents against the instruction catalogue",
	Long: `Reports unknown instructions, missing required fields, wrong value types and
empty section names. Each failure names the path of the offending field.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		flow, _ := cmd.Flags().GetBool("flow")
		w := cmd.OutOrStdout()

		failed := 0
		for _, path := range args {
			errs := validateFile(path, from, flow)
			if len(errs) == 0 {
				tui.Success(w, "%s is valid", path)
				continue
			}
			failed++
			tui.Failure(w, "%s: %d problem(s)", path, len(errs))
			for _, err := range errs {
				fmt.Fprintf(w, "    %v\n", err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d document(s) invalid", failed, len(args))
		}
		return nil
	},
}

func validateFile(path, from string, flow bool) []error {
	data, f, err := readInput(path, from)
	if err != nil {
		return []error{err}
	}
	tree, err := codec.Decode(data, f)
	if err != nil {
		return []error{err}
	}

	var errs []error
	if err := schema.ValidateDocument(tree); err != nil {
		if list := schema.ValidationErrors(err); list != nil {
			errs = append(errs, list...)
		} else {
			errs = append(errs, err)
		}
	}
	if flow {
		var flowErr *validator.FlowError
		err := validator.ValidateFlow(tree, "main")
		switch {
		case errors.As(err, &flowErr):
			for _, issue := range flowErr.Issues {
				errs = append(errs, errors.New(issue.String()))
			}
		case err != nil:
			errs = append(errs, err)
		}
	}
	return errs
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("from", "", "Input format (default: from the file extension)")
	validateCmd.Flags().Bool("flow", false, "Also report jumps to undefined sections and sections unreachable from main")
}
