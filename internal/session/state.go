package session

import (
	"github.com/google/uuid"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/quiz"
)

// Phase is the quiz lifecycle phase.
type Phase int

const (
	PhaseInProgress Phase = iota // Answers can be selected
	PhaseFinalized               // Submitted; results shown, answers locked
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	if p == PhaseFinalized {
		return "finalized"
	}
	return "in_progress"
}

// SampleSizes are the quiz sample sizes offered for the All section.
// Zero means every question.
var SampleSizes = []int{0, 10, 20, 30, 50, 75, 100}

// Deck is the immutable question bank together with the random source
// used to shuffle it.
type Deck struct {
	Records []question.Record
	Rand    question.Shuffler
}

// NewDeck creates a Deck over records using rng for randomness.
func NewDeck(records []question.Record, rng question.Shuffler) Deck {
	return Deck{Records: records, Rand: rng}
}

// Taxonomy returns the section list for the deck.
func (d Deck) Taxonomy() []string {
	return question.Taxonomy(d.Records)
}

// State is the state of one browsing or quiz session. It is a value:
// every operation in this package returns a new State and leaves its
// argument untouched.
type State struct {
	// ID identifies the session for log correlation. It changes on every
	// full reset.
	ID string

	// Category is the active section, question.AllCategory by default.
	Category string

	// Mode is study or quiz.
	Mode question.Mode

	// WorkingSet is the derived question sequence for the current settings.
	WorkingSet []question.Record

	// Cursor indexes WorkingSet.
	Cursor int

	// Revealed is true when the answer is shown (study mode).
	Revealed bool

	// Answers holds the selected letter per question ID (quiz mode).
	Answers quiz.Answers

	// Phase is the quiz lifecycle phase.
	Phase Phase

	// Shuffle is true when the working set is shown in random order (study mode).
	Shuffle bool

	// SampleSize caps the quiz to a random sample (quiz mode, All section).
	SampleSize int
}

// New creates the default session: All sections, study mode, insertion order.
func New(d Deck) State {
	s := State{
		Category: question.AllCategory,
		Mode:     question.ModeStudy,
	}
	return reset(d, s)
}

// Filter returns the working-set filter for the state's settings.
func (s State) Filter() question.Filter {
	return question.Filter{
		Category:   s.Category,
		Mode:       s.Mode,
		Shuffle:    s.Shuffle,
		SampleSize: s.SampleSize,
	}
}

// Empty reports whether the working set has no questions.
func (s State) Empty() bool {
	return len(s.WorkingSet) == 0
}

// Sampling reports whether the working set is a random sample.
func (s State) Sampling() bool {
	return s.Filter().Sampling()
}

// reset performs a full reset: new ID, shuffle and sample cleared,
// fresh working set, cursor and answers cleared.
func reset(d Deck, s State) State {
	s.ID = uuid.NewString()
	s.Shuffle = false
	s.SampleSize = 0
	return rederive(d, s)
}

// rederive recomputes the working set and restarts the attempt.
func rederive(d Deck, s State) State {
	s.WorkingSet = question.DeriveWorkingSet(d.Records, s.Filter(), d.Rand)
	return restart(s)
}

// restart clears per-attempt state without touching the working set.
func restart(s State) State {
	s.Cursor = 0
	s.Revealed = false
	s.Answers = quiz.Answers{}
	s.Phase = PhaseInProgress
	return s
}
