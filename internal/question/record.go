package question

import (
	"fmt"
	"strings"
)

// AllCategory is the synthetic section that matches every record.
const AllCategory = "All"

// Record is a single question as it appears in the question bank.
// Records are loaded once and never mutated.
type Record struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// Mode selects how the working set is presented.
type Mode int

const (
	ModeStudy Mode = iota // Browse with reveal, shuffle and random jump
	ModeQuiz              // Select answers and submit for scoring
)

// String returns the lowercase mode name used in flags and logs.
func (m Mode) String() string {
	if m == ModeQuiz {
		return "quiz"
	}
	return "study"
}

// DisplayName returns a human-readable mode label.
func (m Mode) DisplayName() string {
	if m == ModeQuiz {
		return "Quiz Mode"
	}
	return "Study Mode"
}

// ParseMode parses "study" or "quiz" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "study":
		return ModeStudy, nil
	case "quiz":
		return ModeQuiz, nil
	default:
		return ModeStudy, fmt.Errorf("unknown mode %q (want study or quiz)", s)
	}
}
