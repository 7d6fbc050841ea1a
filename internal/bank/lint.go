package bank

import (
	"fmt"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
)

// Issue describes a record that loads fine but degrades in use.
type Issue struct {
	ID      int
	Problem string
}

func (i Issue) String() string {
	return fmt.Sprintf("question %d: %s", i.ID, i.Problem)
}

// Lint reports records with no options, no correct letter, or a correct
// letter that is not among the options. None of these stop the app; a
// question without a correct letter can never be scored correct.
func Lint(records []question.Record) []Issue {
	var issues []Issue
	for _, r := range records {
		p := question.Parse(r)
		if len(p.Options) == 0 {
			issues = append(issues, Issue{ID: r.ID, Problem: "no options"})
		}
		switch {
		case p.Correct == "":
			issues = append(issues, Issue{ID: r.ID, Problem: "answer has no letter prefix"})
		case len(p.Options) > 0 && !p.HasOption(p.Correct):
			issues = append(issues, Issue{ID: r.ID, Problem: fmt.Sprintf("correct letter %s is not an option", p.Correct)})
		}
	}
	return issues
}
