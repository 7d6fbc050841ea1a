// Package quiz scores quiz attempts against a working set of questions.
package quiz

import (
	"errors"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
)

// ErrEmptyWorkingSet is returned when scoring is attempted with no questions.
var ErrEmptyWorkingSet = errors.New("quiz: cannot score an empty working set")

// Answers maps a question ID to the selected option letter.
type Answers map[int]string

// Outcome is the per-question result of a scored attempt.
type Outcome struct {
	QuestionID    int
	Prompt        string
	IsCorrect     bool
	Selected      string // "" when unanswered
	SelectedText  string
	CorrectLetter string
	CorrectText   string
	Explanation   string
}

// Answered reports whether the learner picked an option for this question.
func (o Outcome) Answered() bool {
	return o.Selected != ""
}

// Result is the aggregate score of an attempt.
type Result struct {
	Correct    int
	Total      int
	Percentage int
	Breakdown  []Outcome // in working-set order
}

// RecordAnswer returns a copy of answers with id set to letter, replacing
// any earlier selection. The letter is not validated; a letter that is not
// the correct one simply scores as incorrect.
func RecordAnswer(answers Answers, id int, letter string) Answers {
	next := make(Answers, len(answers)+1)
	for k, v := range answers {
		next[k] = v
	}
	next[id] = letter
	return next
}

// Answered returns how many questions of the working set have an answer.
func Answered(workingSet []question.Record, answers Answers) int {
	n := 0
	for _, r := range workingSet {
		if _, ok := answers[r.ID]; ok {
			n++
		}
	}
	return n
}

// Score compares each answer with the parsed correct letter. Unanswered
// questions count as incorrect.
func Score(workingSet []question.Record, answers Answers) (Result, error) {
	if len(workingSet) == 0 {
		return Result{}, ErrEmptyWorkingSet
	}

	res := Result{
		Total:     len(workingSet),
		Breakdown: make([]Outcome, 0, len(workingSet)),
	}

	for _, r := range workingSet {
		parsed := question.Parse(r)
		selected, ok := answers[r.ID]
		correct := ok && parsed.Correct != "" && selected == parsed.Correct
		if correct {
			res.Correct++
		}
		res.Breakdown = append(res.Breakdown, Outcome{
			QuestionID:    r.ID,
			Prompt:        parsed.Text,
			IsCorrect:     correct,
			Selected:      selected,
			SelectedText:  parsed.OptionText(selected),
			CorrectLetter: parsed.Correct,
			CorrectText:   parsed.OptionText(parsed.Correct),
			Explanation:   parsed.Explanation,
		})
	}

	res.Percentage = Percentage(res.Correct, res.Total)
	return res, nil
}

// Percentage returns correct/total as a whole percentage, rounding halves up.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (correct*200 + total) / (total * 2)
}
