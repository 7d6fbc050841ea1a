package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/bank"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import [file...]",
	Short: "Replace the database question bank with JSON file(s)",
	Long: "Validates the given question bank files and stores them in the SQLite database,\n" +
		"replacing any previous bank. With --embedded the built-in bank is imported instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		logger, closeLog, err := setupLogging(v, os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		embedded, _ := cmd.Flags().GetBool("embedded")
		var (
			records []question.Record
			source  string
		)
		switch {
		case embedded && len(args) > 0:
			return fmt.Errorf("use files or --embedded, not both")
		case embedded:
			records, err = bank.Default()
			source = bank.DefaultName
		case len(args) == 0:
			return fmt.Errorf("no files given (or pass --embedded)")
		default:
			records, err = bank.LoadFiles(args)
			source = strings.Join(args, ",")
		}
		if err != nil {
			return err
		}

		for _, issue := range bank.Lint(records) {
			logger.Warn("degenerate question", "id", issue.ID, "problem", issue.Problem)
		}

		dbPath, err := resolveDBPath(v)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ReplaceQuestions(cmd.Context(), source, records); err != nil {
			return err
		}
		logger.Info("imported questions", "source", source, "count", len(records), "db", dbPath)

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d questions in %d sections into %s\n",
			len(records), len(question.Taxonomy(records))-1, dbPath)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("embedded", false, "Import the built-in question bank")
}
