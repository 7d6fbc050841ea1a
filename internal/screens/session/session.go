// Package session is the study and quiz screen.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/router"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screen"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/results"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/sections"
	sess "github.com/albertoserr18/CompE-561-Study-tool/internal/session"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/components"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/ui/layout"
)

// Options sets the state the screen opens with.
type Options struct {
	Mode       question.Mode
	Category   string
	SampleSize int
}

// SessionScreen implements screen.Screen for studying and quizzing.
type SessionScreen struct {
	deck   sess.Deck
	state  sess.State
	keys   keyMap
	submit components.Button
	jump   *components.NumberInput
	notice string
	logger *slog.Logger
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.InputCapturer = (*SessionScreen)(nil)

// New creates a SessionScreen over deck.
func New(deck sess.Deck, opts Options, logger *slog.Logger) *SessionScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	state := sess.New(deck)
	if opts.Category != "" {
		state = sess.SelectCategory(deck, state, opts.Category)
	}
	state = sess.SetMode(deck, state, opts.Mode)
	if opts.SampleSize > 0 {
		state = sess.SetSampleSize(deck, state, opts.SampleSize)
	}

	s := &SessionScreen{
		deck:   deck,
		state:  state,
		keys:   newKeyMap(),
		logger: logger,
	}
	s.submit = components.NewButton("Submit quiz", s.keys.Submit, s.submitQuiz)
	s.sync()
	s.logState("session started")
	return s
}

// State returns the current session state.
func (s *SessionScreen) State() sess.State {
	return s.state
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Title() string {
	return s.state.Mode.DisplayName()
}

func (s *SessionScreen) Status() string {
	return fmt.Sprintf("%s · %s", s.state.Category, s.state.Mode.DisplayName())
}

func (s *SessionScreen) CapturingInput() bool {
	return s.jump != nil
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.jump != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return append(s.keys.hints(), layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sections.ChosenMsg:
		s.apply(sess.SelectCategory(s.deck, s.state, msg.Category), "section changed")
		return s, nil

	case results.RetakeMsg:
		next, err := sess.Retake(s.state)
		if err != nil {
			s.logger.Warn("retake rejected", "session_id", s.state.ID, "error", err)
			return s, nil
		}
		s.apply(next, "quiz retaken")
		return s, nil

	case results.StudyModeMsg:
		s.apply(sess.SetMode(s.deck, s.state, question.ModeStudy), "mode changed")
		return s, nil

	case tea.KeyMsg:
		if s.jump != nil {
			return s.handleJumpKey(msg)
		}
		return s.handleKey(msg)
	}

	if s.jump != nil {
		var cmd tea.Cmd
		*s.jump, cmd = s.jump.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.notice = ""
	k := s.keys
	st := s.state

	if _, cmd := s.submit.Update(msg); cmd != nil {
		return s, cmd
	}

	switch {
	case key.Matches(msg, k.Next):
		s.move(sess.Next(st))
	case key.Matches(msg, k.Prev):
		s.move(sess.Previous(st))
	case key.Matches(msg, k.Random):
		s.move(sess.Random(s.deck, st))
	case key.Matches(msg, k.Reveal):
		s.move(sess.ToggleReveal(st))
	case key.Matches(msg, k.Shuffle):
		s.apply(sess.EnableShuffle(s.deck, st), "working set shuffled")
	case key.Matches(msg, k.ResetOrder):
		s.apply(sess.ResetOrder(s.deck, st), "order reset")
	case key.Matches(msg, k.Answer):
		s.move(sess.SelectAnswer(st, answerLetter(msg.String())))
	case key.Matches(msg, k.Submit):
		s.notice = "Select at least one answer before submitting."
	case key.Matches(msg, k.SampleSize):
		s.apply(sess.SetSampleSize(s.deck, st, sess.NextSampleSize(st.SampleSize)), "sample size changed")
	case key.Matches(msg, k.Results):
		return s, s.showResults()
	case key.Matches(msg, k.Retake):
		return s.Update(results.RetakeMsg{})
	case key.Matches(msg, k.Jump):
		in := components.NewNumberInput("Go to question: ", len(st.WorkingSet))
		s.jump = &in
		return s, in.Init()
	case key.Matches(msg, k.Mode):
		s.apply(sess.SetMode(s.deck, st, toggle(st.Mode)), "mode changed")
	case key.Matches(msg, k.NextSection):
		s.apply(sess.SelectCategory(s.deck, st, nextCategory(s.deck.Taxonomy(), st.Category)), "section changed")
	case key.Matches(msg, k.Sections):
		picker := sections.New(s.deck.Records, st.Category, func(category string) tea.Cmd {
			return router.PopWith(sections.ChosenMsg{Category: category})
		})
		return s, router.Push(picker)
	}
	return s, nil
}

func (s *SessionScreen) handleJumpKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.jump = nil
		return s, nil
	case "enter":
		i, ok := s.jump.Index()
		if !ok {
			return s, nil
		}
		s.jump = nil
		s.move(sess.JumpTo(s.state, i))
		return s, nil
	}

	var cmd tea.Cmd
	*s.jump, cmd = s.jump.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submitQuiz() tea.Cmd {
	next, err := sess.Submit(s.state)
	if err != nil {
		if errors.Is(err, sess.ErrNothingAnswered) {
			s.notice = "Select at least one answer before submitting."
		}
		s.logger.Debug("submit rejected", "session_id", s.state.ID, "error", err)
		return nil
	}
	s.move(next)
	return s.showResults()
}

func (s *SessionScreen) showResults() tea.Cmd {
	summary, err := sess.BuildSummary(s.state)
	if err != nil {
		s.logger.Error("build summary", "session_id", s.state.ID, "error", err)
		return nil
	}
	s.logger.Info("quiz scored",
		"session_id", summary.SessionID,
		"category", summary.Category,
		"correct", summary.Result.Correct,
		"total", summary.Result.Total,
		"percentage", summary.Result.Percentage,
	)
	return router.Push(newResultsScreen(summary))
}

// move replaces the state after a transition that keeps the working set.
func (s *SessionScreen) move(next sess.State) {
	s.state = next
	s.sync()
}

// apply replaces the state after a transition that may rebuild the
// working set, and logs it.
func (s *SessionScreen) apply(next sess.State, event string) {
	s.state = next
	s.sync()
	s.logState(event)
}

func (s *SessionScreen) sync() {
	s.keys.sync(s.state)
	s.submit.SetActive(sess.CanSubmit(s.state))
}

func (s *SessionScreen) logState(event string) {
	s.logger.Info(event,
		"session_id", s.state.ID,
		"category", s.state.Category,
		"mode", s.state.Mode.String(),
		"working_set", len(s.state.WorkingSet),
		"shuffle", s.state.Shuffle,
		"sample_size", s.state.SampleSize,
	)
}

func answerLetter(k string) string {
	switch k {
	case "1":
		return "A"
	case "2":
		return "B"
	case "3":
		return "C"
	case "4":
		return "D"
	}
	return strings.ToUpper(k)
}

func toggle(m question.Mode) question.Mode {
	if m == question.ModeQuiz {
		return question.ModeStudy
	}
	return question.ModeQuiz
}

func nextCategory(taxonomy []string, current string) string {
	for i, c := range taxonomy {
		if c == current {
			return taxonomy[(i+1)%len(taxonomy)]
		}
	}
	return question.AllCategory
}
