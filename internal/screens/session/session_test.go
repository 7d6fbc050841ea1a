package session

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/router"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screen"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/results"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/sections"
	sess "github.com/albertoserr18/CompE-561-Study-tool/internal/session"
)

func testDeck() sess.Deck {
	records := []question.Record{
		{ID: 1, Question: "Which layer routes packets?\nA. Physical\nB. Data link\nC. Network\nD. Transport", Answer: "C. Network - Routing is a layer 3 job", Category: "Networking"},
		{ID: 2, Question: "Default HTTPS port?\nA. 80\nB. 443", Answer: "B. 443", Category: "Networking"},
		{ID: 3, Question: "Which is not a deadlock condition?\nA. Mutual exclusion\nB. Hold and wait\nC. Preemption", Answer: "C. Preemption - No preemption is the condition", Category: "Operating Systems"},
	}
	return sess.NewDeck(records, question.NewRand(42))
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func press(t *testing.T, s *SessionScreen, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var scr screen.Screen = s
	var cmd tea.Cmd
	for _, m := range msgs {
		scr, cmd = scr.Update(m)
	}
	if scr != s {
		t.Fatal("expected Update to return the same screen")
	}
	return cmd
}

func TestSessionScreen_Defaults(t *testing.T) {
	s := New(testDeck(), Options{}, nil)

	st := s.State()
	if st.Mode != question.ModeStudy || st.Category != question.AllCategory {
		t.Fatalf("got mode %v category %q, want study All", st.Mode, st.Category)
	}
	if len(st.WorkingSet) != 3 {
		t.Errorf("working set = %d, want 3", len(st.WorkingSet))
	}
	if s.Title() != "Study Mode" {
		t.Errorf("Title = %q, want Study Mode", s.Title())
	}
	if s.Status() != "All · Study Mode" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestSessionScreen_Options(t *testing.T) {
	s := New(testDeck(), Options{Mode: question.ModeQuiz, Category: "Networking"}, nil)

	st := s.State()
	if st.Mode != question.ModeQuiz || st.Category != "Networking" {
		t.Fatalf("got mode %v category %q", st.Mode, st.Category)
	}
	if len(st.WorkingSet) != 2 {
		t.Errorf("working set = %d, want 2", len(st.WorkingSet))
	}
}

func TestSessionScreen_StudyNavigationAndReveal(t *testing.T) {
	s := New(testDeck(), Options{}, nil)

	press(t, s, specialKey(tea.KeyRight))
	if s.State().Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", s.State().Cursor)
	}

	press(t, s, specialKey(tea.KeySpace))
	if !s.State().Revealed {
		t.Fatal("expected answer revealed")
	}
	if view := s.View(100, 40); !strings.Contains(view, "Answer: B") {
		t.Error("expected revealed answer in view")
	}

	press(t, s, keyPress('p'))
	if s.State().Cursor != 0 || s.State().Revealed {
		t.Errorf("after prev: cursor %d revealed %v", s.State().Cursor, s.State().Revealed)
	}
}

func TestSessionScreen_ShuffleAndReset(t *testing.T) {
	s := New(testDeck(), Options{}, nil)

	press(t, s, keyPress('s'))
	if !s.State().Shuffle {
		t.Fatal("expected shuffle on")
	}
	if !strings.Contains(s.View(100, 40), "Shuffled") {
		t.Error("expected shuffled indicator")
	}

	press(t, s, keyPress('o'))
	st := s.State()
	if st.Shuffle {
		t.Fatal("expected shuffle off")
	}
	for i, r := range st.WorkingSet {
		if r.ID != i+1 {
			t.Errorf("position %d has id %d, want insertion order", i, r.ID)
		}
	}
}

func TestSessionScreen_SectionCycle(t *testing.T) {
	s := New(testDeck(), Options{}, nil)

	press(t, s, specialKey(tea.KeyTab))
	if got := s.State().Category; got != "Networking" {
		t.Errorf("category = %q, want Networking", got)
	}
}

func TestSessionScreen_SectionPicker(t *testing.T) {
	s := New(testDeck(), Options{}, nil)

	cmd := press(t, s, keyPress('/'))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg")
	}

	press(t, s, sections.ChosenMsg{Category: "Operating Systems"})
	if got := s.State().Category; got != "Operating Systems" {
		t.Errorf("category = %q, want Operating Systems", got)
	}
}

func TestSessionScreen_QuizSubmitFlow(t *testing.T) {
	s := New(testDeck(), Options{}, nil)
	press(t, s, keyPress('m'))
	if s.State().Mode != question.ModeQuiz {
		t.Fatal("expected quiz mode")
	}

	// Nothing answered yet.
	cmd := press(t, s, specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command when submitting with no answers")
	}
	if s.State().Phase != sess.PhaseInProgress {
		t.Error("expected quiz still in progress")
	}
	if !strings.Contains(s.View(100, 40), "at least one answer") {
		t.Error("expected a notice about answering first")
	}

	press(t, s, keyPress('c'))
	if got := sess.Selected(s.State()); got != "C" {
		t.Fatalf("selected = %q, want C", got)
	}
	if !strings.Contains(s.View(100, 40), "Answered: 1 / 3") {
		t.Error("expected answered counter")
	}

	cmd = press(t, s, specialKey(tea.KeyEnter))
	if s.State().Phase != sess.PhaseFinalized {
		t.Fatal("expected quiz finalized")
	}
	if cmd == nil {
		t.Fatal("expected push of results screen")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("pushed %T, want *results.ResultsScreen", push.Screen)
	}

	// Answers are locked once finalized.
	press(t, s, keyPress('a'))
	if got := sess.Selected(s.State()); got != "C" {
		t.Errorf("selected after finalize = %q, want C", got)
	}
}

func TestSessionScreen_NumberKeysSelectLetters(t *testing.T) {
	s := New(testDeck(), Options{Mode: question.ModeQuiz}, nil)

	press(t, s, keyPress('2'))
	if got := sess.Selected(s.State()); got != "B" {
		t.Errorf("selected = %q, want B", got)
	}
}

func TestSessionScreen_RetakeAndStudyMessages(t *testing.T) {
	s := New(testDeck(), Options{Mode: question.ModeQuiz}, nil)
	press(t, s, keyPress('a'), specialKey(tea.KeyEnter))
	before := s.State().WorkingSet

	press(t, s, results.RetakeMsg{})
	st := s.State()
	if st.Phase != sess.PhaseInProgress || len(st.Answers) != 0 {
		t.Fatalf("after retake: phase %v answers %d", st.Phase, len(st.Answers))
	}
	for i := range before {
		if st.WorkingSet[i].ID != before[i].ID {
			t.Fatal("retake should keep the working set")
		}
	}

	press(t, s, keyPress('a'), specialKey(tea.KeyEnter))
	press(t, s, results.StudyModeMsg{})
	if s.State().Mode != question.ModeStudy {
		t.Error("expected study mode")
	}
}

func TestSessionScreen_SampleSizeCycle(t *testing.T) {
	s := New(testDeck(), Options{Mode: question.ModeQuiz}, nil)

	press(t, s, keyPress('z'))
	if got := s.State().SampleSize; got != 10 {
		t.Errorf("sample size = %d, want 10", got)
	}
	if len(s.State().WorkingSet) != 3 {
		t.Errorf("sample of 10 over 3 records should keep 3, got %d", len(s.State().WorkingSet))
	}
}

func TestSessionScreen_JumpToQuestion(t *testing.T) {
	s := New(testDeck(), Options{}, nil)

	press(t, s, keyPress('g'))
	if !s.CapturingInput() {
		t.Fatal("expected jump input to capture keys")
	}

	// Out of range keeps the input open.
	press(t, s, keyPress('9'), specialKey(tea.KeyEnter))
	if !s.CapturingInput() {
		t.Fatal("expected input to stay open on an invalid value")
	}

	press(t, s, specialKey(tea.KeyBackspace), keyPress('3'), specialKey(tea.KeyEnter))
	if s.CapturingInput() {
		t.Fatal("expected input closed")
	}
	if s.State().Cursor != 2 {
		t.Errorf("cursor = %d, want 2", s.State().Cursor)
	}
}

func TestSessionScreen_JumpCancel(t *testing.T) {
	s := New(testDeck(), Options{}, nil)

	press(t, s, keyPress('g'), specialKey(tea.KeyEscape))
	if s.CapturingInput() {
		t.Error("expected Esc to close the jump input")
	}
}

func TestSessionScreen_EmptySection(t *testing.T) {
	s := New(testDeck(), Options{Category: "Security"}, nil)

	if !s.State().Empty() {
		t.Fatal("expected empty working set")
	}
	if view := s.View(80, 24); !strings.Contains(view, "No questions") {
		t.Error("expected empty section message")
	}

	press(t, s, specialKey(tea.KeyRight), specialKey(tea.KeySpace))
	if s.State().Cursor != 0 || s.State().Revealed {
		t.Error("navigation should be inert on an empty section")
	}
}

func TestSessionScreen_KeyHintsFollowMode(t *testing.T) {
	s := New(testDeck(), Options{}, nil)
	if !hasHint(s, "Shuffle") || hasHint(s, "Submit") {
		t.Error("study hints should offer shuffle and not submit")
	}

	press(t, s, keyPress('m'))
	if hasHint(s, "Shuffle") || !hasHint(s, "Submit") {
		t.Error("quiz hints should offer submit and not shuffle")
	}
}

func hasHint(s *SessionScreen, desc string) bool {
	for _, h := range s.KeyHints() {
		if h.Description == desc {
			return true
		}
	}
	return false
}
