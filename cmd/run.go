package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/app"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the study TUI (default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// addRunFlags registers the TUI settings on cmd.
func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("mode", "study", "Mode to open in (study, quiz)")
	f.String("category", question.AllCategory, "Section to open in")
	f.Int("sample-size", 0, "Quiz sample size over all sections (0 = every question)")
	f.Uint64("seed", 0, "Random seed for shuffling (0 = time based)")
	f.Bool("direct", false, "Skip the menu and open a session right away")
}

// runApp loads the question bank and launches the TUI.
func runApp(cmd *cobra.Command) error {
	v := viperForCmd(cmd)

	// Logging to the terminal would corrupt the alt screen, so logs are
	// dropped unless a log file is configured.
	logger, closeLog, err := setupLogging(v, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	records, source, err := loadRecords(cmd.Context(), v)
	if err != nil {
		return err
	}

	mode, err := question.ParseMode(v.GetString("mode"))
	if err != nil {
		return err
	}

	category := v.GetString("category")
	if category == "" {
		category = question.AllCategory
	}
	if !slices.Contains(question.Taxonomy(records), category) {
		return fmt.Errorf("unknown section %q (see `studytool sections`)", category)
	}

	sampleSize := v.GetInt("sample-size")
	if !slices.Contains(session.SampleSizes, sampleSize) {
		return fmt.Errorf("invalid sample size %d (want one of %v)", sampleSize, session.SampleSizes)
	}

	logger.Info("question bank loaded", "source", source, "questions", len(records))

	return app.Run(app.Options{
		Deck:       session.NewDeck(records, question.NewRand(v.GetUint64("seed"))),
		Logger:     logger,
		Category:   category,
		Mode:       mode,
		SampleSize: sampleSize,
		Direct:     v.GetBool("direct"),
	})
}
