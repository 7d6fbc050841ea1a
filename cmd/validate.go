package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/bank"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
)

// errValidation is returned when any file fails validation.
var errValidation = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check question bank files against the schema",
	Long: "Validates each file against the question bank schema and reports questions that\n" +
		"have no options or no usable correct letter. Without files the built-in bank is checked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		_, closeLog, err := setupLogging(v, os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		strict, _ := cmd.Flags().GetBool("strict")
		out := cmd.OutOrStdout()

		sources := args
		if len(sources) == 0 {
			sources = []string{bank.DefaultName}
		}

		failed := false
		for _, src := range sources {
			records, err := loadSource(src)
			if err != nil {
				fmt.Fprintf(out, "✗ %v\n", err)
				failed = true
				continue
			}

			issues := bank.Lint(records)
			mark := "✓"
			if len(issues) > 0 && strict {
				mark = "✗"
				failed = true
			}
			fmt.Fprintf(out, "%s %s: %d questions, %d warnings\n", mark, src, len(records), len(issues))
			for _, issue := range issues {
				fmt.Fprintf(out, "    %s\n", issue)
			}
		}

		if failed {
			return errValidation
		}
		return nil
	},
}

func loadSource(src string) ([]question.Record, error) {
	if src == bank.DefaultName {
		return bank.Default()
	}
	return bank.LoadFile(src)
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Treat degenerate questions as errors")
}
