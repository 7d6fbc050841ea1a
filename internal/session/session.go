package session

import (
	"errors"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/quiz"
)

var (
	// ErrNotQuizMode is returned by quiz transitions in study mode.
	ErrNotQuizMode = errors.New("session: not in quiz mode")

	// ErrNothingAnswered is returned when submitting without any answer.
	ErrNothingAnswered = errors.New("session: no answers recorded")

	// ErrAlreadyFinalized is returned when submitting a finalized quiz.
	ErrAlreadyFinalized = errors.New("session: quiz already submitted")

	// ErrNotFinalized is returned when results or a retake are requested
	// before the quiz is submitted.
	ErrNotFinalized = errors.New("session: quiz not submitted")
)

// SelectCategory switches the active section and fully resets the session.
// Selecting the active section is a no-op.
func SelectCategory(d Deck, s State, category string) State {
	if category == s.Category {
		return s
	}
	s.Category = category
	return reset(d, s)
}

// SetMode switches between study and quiz and fully resets the session.
// Selecting the active mode is a no-op.
func SetMode(d Deck, s State, mode question.Mode) State {
	if mode == s.Mode {
		return s
	}
	s.Mode = mode
	return reset(d, s)
}

// SetSampleSize caps a quiz over every section to n random questions
// (0 for all). It only applies in quiz mode with the All section and
// while the quiz is in progress; otherwise s is returned unchanged.
func SetSampleSize(d Deck, s State, n int) State {
	if s.Mode != question.ModeQuiz || s.Category != question.AllCategory || s.Phase != PhaseInProgress || n < 0 {
		return s
	}
	s.SampleSize = n
	return rederive(d, s)
}

// NextSampleSize returns the SampleSizes entry after current, wrapping.
func NextSampleSize(current int) int {
	for i, n := range SampleSizes {
		if n == current {
			return SampleSizes[(i+1)%len(SampleSizes)]
		}
	}
	return SampleSizes[0]
}

// EnableShuffle reorders the working set randomly (study mode only).
// Each call draws a new order.
func EnableShuffle(d Deck, s State) State {
	if s.Mode != question.ModeStudy {
		return s
	}
	s.Shuffle = true
	return rederive(d, s)
}

// ResetOrder restores insertion order (study mode only).
func ResetOrder(d Deck, s State) State {
	if s.Mode != question.ModeStudy {
		return s
	}
	s.Shuffle = false
	return rederive(d, s)
}

// Current returns the record under the cursor.
func Current(s State) (question.Record, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.WorkingSet) {
		return question.Record{}, false
	}
	return s.WorkingSet[s.Cursor], true
}

// Next moves to the following question and hides the answer.
func Next(s State) State {
	if s.Cursor >= len(s.WorkingSet)-1 {
		return s
	}
	s.Cursor++
	s.Revealed = false
	return s
}

// Previous moves to the preceding question and hides the answer.
func Previous(s State) State {
	if s.Cursor <= 0 {
		return s
	}
	s.Cursor--
	s.Revealed = false
	return s
}

// JumpTo moves the cursor to index i. Out-of-range indexes are ignored.
func JumpTo(s State, i int) State {
	if i < 0 || i >= len(s.WorkingSet) {
		return s
	}
	s.Cursor = i
	s.Revealed = false
	return s
}

// Random jumps to a random question (study mode only).
func Random(d Deck, s State) State {
	if s.Mode != question.ModeStudy || s.Empty() {
		return s
	}
	var i int
	if d.Rand != nil {
		i = d.Rand.IntN(len(s.WorkingSet))
	} else {
		i = question.NewRand(0).IntN(len(s.WorkingSet))
	}
	s.Cursor = i
	s.Revealed = false
	return s
}

// ToggleReveal shows or hides the answer (study mode only).
func ToggleReveal(s State) State {
	if s.Mode != question.ModeStudy || s.Empty() {
		return s
	}
	s.Revealed = !s.Revealed
	return s
}

// SelectAnswer records letter for the current question. It is ignored
// outside an in-progress quiz.
func SelectAnswer(s State, letter string) State {
	if s.Mode != question.ModeQuiz || s.Phase != PhaseInProgress {
		return s
	}
	r, ok := Current(s)
	if !ok {
		return s
	}
	s.Answers = quiz.RecordAnswer(s.Answers, r.ID, letter)
	return s
}

// Selected returns the recorded letter for the current question.
func Selected(s State) string {
	r, ok := Current(s)
	if !ok {
		return ""
	}
	return s.Answers[r.ID]
}

// CanSubmit reports whether Submit would succeed.
func CanSubmit(s State) bool {
	_, err := Submit(s)
	return err == nil
}

// Submit finalizes the quiz. At least one answer must be recorded.
func Submit(s State) (State, error) {
	switch {
	case s.Mode != question.ModeQuiz:
		return s, ErrNotQuizMode
	case s.Phase == PhaseFinalized:
		return s, ErrAlreadyFinalized
	case len(s.Answers) == 0:
		return s, ErrNothingAnswered
	}
	s.Phase = PhaseFinalized
	return s, nil
}

// Result scores a finalized quiz.
func Result(s State) (quiz.Result, error) {
	if s.Mode != question.ModeQuiz {
		return quiz.Result{}, ErrNotQuizMode
	}
	if s.Phase != PhaseFinalized {
		return quiz.Result{}, ErrNotFinalized
	}
	return quiz.Score(s.WorkingSet, s.Answers)
}

// Retake starts a fresh attempt over the same working set.
func Retake(s State) (State, error) {
	if s.Mode != question.ModeQuiz {
		return s, ErrNotQuizMode
	}
	if s.Phase != PhaseFinalized {
		return s, ErrNotFinalized
	}
	return restart(s), nil
}
