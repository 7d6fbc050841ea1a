package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/store"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the sections of the question bank with counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		_, closeLog, err := setupLogging(v, os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		records, source, err := loadRecords(cmd.Context(), v)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		counts := question.CountByCategory(records)

		fmt.Fprintf(out, "%-40s  %9s\n", "Section", "Questions")
		fmt.Fprintln(out, strings.Repeat("─", 51))
		for _, c := range question.Taxonomy(records) {
			fmt.Fprintf(out, "%-40s  %9d\n", c, counts[c])
		}
		fmt.Fprintf(out, "\nsource: %s\n", source)

		if dbPath, err := resolveDBPath(v); err == nil && dbPath == source {
			imp, err := lastImport(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			if imp != nil {
				fmt.Fprintf(out, "imported: %s from %s (%d questions)\n",
					imp.ImportedAt.Local().Format(time.DateTime), imp.Source, imp.Count)
			}
		}
		return nil
	},
}

// lastImport reads the most recent import log entry from the database.
func lastImport(ctx context.Context, dbPath string) (*store.Import, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	imp, err := st.LastImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("read import log: %w", err)
	}
	return imp, nil
}
