package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/bank"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studytool",
	Short: "Study and quiz tool for CompE 561",
	Long: "studytool: terminal flashcards and scored quizzes over a multiple-choice question bank.\n\n" +
		"Settings can also come from STUDYTOOL_* environment variables or a studytool.yaml file.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default ./studytool.yaml or ~/.config/studytool/studytool.yaml)")
	pf.String("db", "", "Path to SQLite question bank (overrides STUDYTOOL_DB env var)")
	pf.StringSlice("questions", nil, "Question bank JSON file(s); bypasses the database")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")
	pf.String("log-file", "", "Write logs to this file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)

	// Bare `studytool --mode quiz` behaves like `studytool run --mode quiz`.
	addRunFlags(runCmd)
	addRunFlags(rootCmd)
}

// resolveDBPath returns the database path using the db setting (highest
// priority), then STUDYTOOL_DB env var, then the default XDG path.
func resolveDBPath(v *viper.Viper) (string, error) {
	if p := v.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadRecords returns the question bank from, in order: the questions
// files, a non-empty database, or the embedded bank. The second value
// names the source.
func loadRecords(ctx context.Context, v *viper.Viper) ([]question.Record, string, error) {
	if paths := v.GetStringSlice("questions"); len(paths) > 0 {
		records, err := bank.LoadFiles(paths)
		if err != nil {
			return nil, "", err
		}
		return records, fmt.Sprint(paths), nil
	}

	dbPath, err := resolveDBPath(v)
	if err != nil {
		return nil, "", fmt.Errorf("resolve DB path: %w", err)
	}
	if _, err := os.Stat(dbPath); err == nil {
		records, err := storedRecords(ctx, dbPath)
		if err != nil {
			return nil, "", err
		}
		if len(records) > 0 {
			return records, dbPath, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("stat database: %w", err)
	}

	records, err := bank.Default()
	if err != nil {
		return nil, "", err
	}
	return records, bank.DefaultName, nil
}

func storedRecords(ctx context.Context, dbPath string) ([]question.Record, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	records, err := st.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return records, nil
}
