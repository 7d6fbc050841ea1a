package session

import (
	"testing"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
)

func TestProgressOf_Study(t *testing.T) {
	s := Next(New(testDeck()))

	p := ProgressOf(s)

	if p.Position != 2 {
		t.Errorf("Position = %d, want 2", p.Position)
	}
	if p.Total != 5 {
		t.Errorf("Total = %d, want 5", p.Total)
	}
	if p.Fraction() != 0.4 {
		t.Errorf("Fraction = %f, want 0.4", p.Fraction())
	}
}

func TestProgressOf_Answered(t *testing.T) {
	d := testDeck()
	s := SetMode(d, New(d), question.ModeQuiz)
	s = SelectAnswer(s, "A")
	s = SelectAnswer(s, "B")
	s = Next(s)
	s = SelectAnswer(s, "A")

	p := ProgressOf(s)

	if p.Answered != 2 {
		t.Errorf("Answered = %d, want 2", p.Answered)
	}
}

func TestProgress_FractionEmpty(t *testing.T) {
	if f := (Progress{}).Fraction(); f != 0 {
		t.Errorf("Fraction = %f, want 0", f)
	}
}
