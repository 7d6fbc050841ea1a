package session

import (
	"charm.land/bubbles/v2/key"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	sess "github.com/albertoserr18/CompE-561-Study-tool/internal/session"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/layout"
)

type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Random      key.Binding
	Shuffle     key.Binding
	ResetOrder  key.Binding
	Reveal      key.Binding
	Answer      key.Binding
	Submit      key.Binding
	Results     key.Binding
	Retake      key.Binding
	SampleSize  key.Binding
	Jump        key.Binding
	Mode        key.Binding
	NextSection key.Binding
	Sections    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:        key.NewBinding(key.WithKeys("right", "n", "l"), key.WithHelp("→/n", "Next")),
		Prev:        key.NewBinding(key.WithKeys("left", "p", "h"), key.WithHelp("←/p", "Prev")),
		Random:      key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Random")),
		Shuffle:     key.NewBinding(key.WithKeys("s"), key.WithHelp("S", "Shuffle")),
		ResetOrder:  key.NewBinding(key.WithKeys("o"), key.WithHelp("O", "Order")),
		Reveal:      key.NewBinding(key.WithKeys("space", "v"), key.WithHelp("Space", "Answer")),
		Answer:      key.NewBinding(key.WithKeys("a", "b", "c", "d", "1", "2", "3", "4"), key.WithHelp("A-D", "Choose")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Submit")),
		Results:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Results")),
		Retake:      key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Retake")),
		SampleSize:  key.NewBinding(key.WithKeys("z"), key.WithHelp("Z", "Sample")),
		Jump:        key.NewBinding(key.WithKeys("g"), key.WithHelp("G", "Go to")),
		Mode:        key.NewBinding(key.WithKeys("m"), key.WithHelp("M", "Mode")),
		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Section")),
		Sections:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Sections")),
	}
}

// sync enables the bindings that apply to s.
func (k *keyMap) sync(s sess.State) {
	study := s.Mode == question.ModeStudy
	quiz := s.Mode == question.ModeQuiz
	open := quiz && s.Phase == sess.PhaseInProgress
	finalized := quiz && s.Phase == sess.PhaseFinalized
	hasQuestions := !s.Empty()

	k.Next.SetEnabled(hasQuestions)
	k.Prev.SetEnabled(hasQuestions)
	k.Jump.SetEnabled(hasQuestions)
	k.Random.SetEnabled(study && hasQuestions)
	k.Shuffle.SetEnabled(study && hasQuestions)
	k.ResetOrder.SetEnabled(study && s.Shuffle)
	k.Reveal.SetEnabled(study && hasQuestions)
	k.Answer.SetEnabled(open && hasQuestions)
	k.Submit.SetEnabled(open && hasQuestions)
	k.SampleSize.SetEnabled(open && s.Category == question.AllCategory)
	k.Results.SetEnabled(finalized)
	k.Retake.SetEnabled(finalized)
}

func (k keyMap) hints() []layout.KeyHint {
	return layout.HintsFromBindings(
		k.Prev, k.Next, k.Reveal, k.Random, k.Shuffle, k.ResetOrder,
		k.Answer, k.Submit, k.SampleSize, k.Results, k.Retake,
		k.Jump, k.Mode, k.NextSection, k.Sections,
	)
}
