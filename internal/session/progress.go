package session

import "github.com/albertoserr18/CompE-561-Study-tool/internal/quiz"

// Progress summarises how far through the working set the learner is.
type Progress struct {
	Position int // 1-based; 0 when the working set is empty
	Total    int
	Answered int
}

// ProgressOf computes the progress for s.
func ProgressOf(s State) Progress {
	p := Progress{
		Total:    len(s.WorkingSet),
		Answered: quiz.Answered(s.WorkingSet, s.Answers),
	}
	if p.Total > 0 {
		p.Position = s.Cursor + 1
	}
	return p
}

// Fraction returns Position/Total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Position) / float64(p.Total)
}
