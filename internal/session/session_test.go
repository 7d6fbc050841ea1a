package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/quiz"
)

func testDeck() Deck {
	records := []question.Record{
		{ID: 1, Category: "Net", Question: "Q1\nA. x\nB. y", Answer: "A. x - reason"},
		{ID: 2, Category: "Sec", Question: "Q2\nA. x\nB. y", Answer: "B. y - because"},
		{ID: 3, Category: "Net", Question: "Q3\nA. x\nB. y", Answer: "A. x"},
		{ID: 4, Category: "OS", Question: "Q4\nA. x\nB. y", Answer: "B."},
		{ID: 5, Category: "Sec", Question: "Q5\nA. x\nB. y", Answer: "A. x - five"},
	}
	return NewDeck(records, question.NewRand(1))
}

func bigDeck(n int) Deck {
	records := make([]question.Record, n)
	for i := range records {
		records[i] = question.Record{
			ID:       i + 1,
			Category: fmt.Sprintf("C%d", i%3),
			Question: fmt.Sprintf("Q%d\nA. a\nB. b", i+1),
			Answer:   "A. a",
		}
	}
	return NewDeck(records, question.NewRand(3))
}

func workingIDs(s State) []int {
	out := make([]int, len(s.WorkingSet))
	for i, r := range s.WorkingSet {
		out[i] = r.ID
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	s := New(testDeck())

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, question.AllCategory, s.Category)
	assert.Equal(t, question.ModeStudy, s.Mode)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, workingIDs(s))
	assert.Equal(t, 0, s.Cursor)
	assert.False(t, s.Revealed)
	assert.Empty(t, s.Answers)
	assert.Equal(t, PhaseInProgress, s.Phase)
	assert.False(t, s.Shuffle)
	assert.Equal(t, 0, s.SampleSize)
}

func TestScenarioA_StudyCategory(t *testing.T) {
	d := NewDeck([]question.Record{
		{ID: 1, Category: "Net", Question: "Q1\nA. x\nB. y", Answer: "A. x - reason"},
	}, question.NewRand(1))

	s := SelectCategory(d, New(d), "Net")

	require.Equal(t, []int{1}, workingIDs(s))
	p := question.Parse(s.WorkingSet[0])
	assert.Equal(t, "A", p.Correct)
	assert.Equal(t, []question.Option{{Letter: "A", Text: "x"}, {Letter: "B", Text: "y"}}, p.Options)
}

func TestScenarioB_QuizSample(t *testing.T) {
	d := testDeck()
	s := SetMode(d, New(d), question.ModeQuiz)

	s = SetSampleSize(d, s, 3)

	require.Len(t, s.WorkingSet, 3)
	seen := make(map[int]bool)
	for _, id := range workingIDs(s) {
		assert.False(t, seen[id])
		seen[id] = true
		assert.GreaterOrEqual(t, id, 1)
		assert.LessOrEqual(t, id, 5)
	}
}

func TestScenarioC_SubmitWithoutAnswers(t *testing.T) {
	d := testDeck()
	s := SetMode(d, New(d), question.ModeQuiz)

	next, err := Submit(s)

	assert.ErrorIs(t, err, ErrNothingAnswered)
	assert.Equal(t, PhaseInProgress, next.Phase)
	assert.False(t, CanSubmit(s))
}

func TestScenarioD_Retake(t *testing.T) {
	d := testDeck()
	s := SetMode(d, New(d), question.ModeQuiz)
	s = SelectAnswer(s, "A")
	s = Next(s)
	s = SelectAnswer(s, "B")
	s, err := Submit(s)
	require.NoError(t, err)
	require.Equal(t, PhaseFinalized, s.Phase)
	before := workingIDs(s)

	s, err = Retake(s)

	require.NoError(t, err)
	assert.Empty(t, s.Answers)
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, PhaseInProgress, s.Phase)
	assert.Equal(t, before, workingIDs(s))
}

func TestRetake_RequiresFinalized(t *testing.T) {
	d := testDeck()
	s := SetMode(d, New(d), question.ModeQuiz)

	_, err := Retake(s)
	assert.ErrorIs(t, err, ErrNotFinalized)

	_, err = Retake(New(d))
	assert.ErrorIs(t, err, ErrNotQuizMode)
}

func TestSubmit_Guards(t *testing.T) {
	d := testDeck()

	_, err := Submit(New(d))
	assert.ErrorIs(t, err, ErrNotQuizMode)

	s := SetMode(d, New(d), question.ModeQuiz)
	s = SelectAnswer(s, "A")
	s, err = Submit(s)
	require.NoError(t, err)

	_, err = Submit(s)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestSelectAnswer_LockedAfterSubmit(t *testing.T) {
	d := testDeck()
	s := SetMode(d, New(d), question.ModeQuiz)
	s = SelectAnswer(s, "B")
	s, err := Submit(s)
	require.NoError(t, err)

	s = SelectAnswer(s, "A")

	assert.Equal(t, "B", Selected(s))
}

func TestSelectAnswer_IgnoredInStudyMode(t *testing.T) {
	s := SelectAnswer(New(testDeck()), "A")
	assert.Empty(t, s.Answers)
}

func TestSelectAnswer_DoesNotAliasPreviousState(t *testing.T) {
	d := testDeck()
	s0 := SetMode(d, New(d), question.ModeQuiz)
	s1 := SelectAnswer(s0, "A")
	s2 := SelectAnswer(s1, "B")

	assert.Empty(t, s0.Answers)
	assert.Equal(t, "A", Selected(s1))
	assert.Equal(t, "B", Selected(s2))
}

func TestResult(t *testing.T) {
	d := testDeck()
	s := SetMode(d, New(d), question.ModeQuiz)
	s = SelectAnswer(s, "A") // id 1, correct
	s = Next(s)
	s = SelectAnswer(s, "A") // id 2, wrong
	s = Next(s)
	s = SelectAnswer(s, "A") // id 3, correct

	_, err := Result(s)
	assert.ErrorIs(t, err, ErrNotFinalized)

	s, err = Submit(s)
	require.NoError(t, err)
	res, err := Result(s)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Correct)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 40, res.Percentage)
}

func TestSelectCategory_FullReset(t *testing.T) {
	d := testDeck()
	s := New(d)
	s = EnableShuffle(d, s)
	s = Next(s)
	s = ToggleReveal(s)
	oldID := s.ID

	s = SelectCategory(d, s, "Sec")

	assert.NotEqual(t, oldID, s.ID)
	assert.Equal(t, []int{2, 5}, workingIDs(s))
	assert.Equal(t, 0, s.Cursor)
	assert.False(t, s.Revealed)
	assert.False(t, s.Shuffle)
}

func TestSelectCategory_SameIsNoop(t *testing.T) {
	d := testDeck()
	s := Next(New(d))

	next := SelectCategory(d, s, question.AllCategory)

	assert.Equal(t, s.ID, next.ID)
	assert.Equal(t, 1, next.Cursor)
}

func TestSelectCategory_EmptySection(t *testing.T) {
	d := testDeck()

	s := SelectCategory(d, New(d), "Physics")

	assert.True(t, s.Empty())
	_, ok := Current(s)
	assert.False(t, ok)
	assert.Equal(t, Progress{}, ProgressOf(s))
	assert.Equal(t, s, Next(s))
	assert.Equal(t, s, Random(d, s))
}

func TestSetMode_ClearsAnswersAndSample(t *testing.T) {
	d := bigDeck(30)
	s := SetMode(d, New(d), question.ModeQuiz)
	s = SetSampleSize(d, s, 10)
	s = SelectAnswer(s, "A")
	require.Len(t, s.WorkingSet, 10)

	s = SetMode(d, s, question.ModeStudy)

	assert.Equal(t, 0, s.SampleSize)
	assert.Empty(t, s.Answers)
	assert.Len(t, s.WorkingSet, 30)
}

func TestSetSampleSize_OnlyQuizAll(t *testing.T) {
	d := bigDeck(30)

	study := SetSampleSize(d, New(d), 10)
	assert.Equal(t, 0, study.SampleSize)
	assert.Len(t, study.WorkingSet, 30)

	section := SelectCategory(d, SetMode(d, New(d), question.ModeQuiz), "C1")
	section = SetSampleSize(d, section, 5)
	assert.Equal(t, 0, section.SampleSize)
	assert.Len(t, section.WorkingSet, 10)
}

func TestSetSampleSize_ResetsAttempt(t *testing.T) {
	d := bigDeck(30)
	s := SetMode(d, New(d), question.ModeQuiz)
	s = Next(SelectAnswer(s, "A"))

	s = SetSampleSize(d, s, 20)

	assert.Len(t, s.WorkingSet, 20)
	assert.Equal(t, 0, s.Cursor)
	assert.Empty(t, s.Answers)

	s = SetSampleSize(d, s, 0)
	assert.Len(t, s.WorkingSet, 30)
}

func TestNextSampleSize(t *testing.T) {
	assert.Equal(t, 10, NextSampleSize(0))
	assert.Equal(t, 75, NextSampleSize(50))
	assert.Equal(t, 0, NextSampleSize(100))
	assert.Equal(t, 0, NextSampleSize(13))
}

func TestShuffleAndResetOrder(t *testing.T) {
	d := bigDeck(20)
	s := Next(New(d))

	s = EnableShuffle(d, s)
	assert.True(t, s.Shuffle)
	assert.Equal(t, 0, s.Cursor)
	assert.ElementsMatch(t, workingIDs(New(d)), workingIDs(s))

	s = ResetOrder(d, s)
	assert.False(t, s.Shuffle)
	assert.Equal(t, workingIDs(New(d)), workingIDs(s))
}

func TestShuffle_IgnoredInQuizMode(t *testing.T) {
	d := testDeck()
	s := SetMode(d, New(d), question.ModeQuiz)

	assert.False(t, EnableShuffle(d, s).Shuffle)
}

func TestNavigation(t *testing.T) {
	d := testDeck()
	s := New(d)

	s = Previous(s)
	assert.Equal(t, 0, s.Cursor)

	s = ToggleReveal(s)
	s = Next(s)
	assert.Equal(t, 1, s.Cursor)
	assert.False(t, s.Revealed, "moving hides the answer")

	for range 10 {
		s = Next(s)
	}
	assert.Equal(t, 4, s.Cursor)

	s = JumpTo(s, 2)
	assert.Equal(t, 2, s.Cursor)
	s = JumpTo(s, 99)
	assert.Equal(t, 2, s.Cursor)

	r, ok := Current(s)
	require.True(t, ok)
	assert.Equal(t, 3, r.ID)
}

func TestRandom(t *testing.T) {
	d := bigDeck(15)
	s := New(d)

	for range 20 {
		s = Random(d, s)
		assert.GreaterOrEqual(t, s.Cursor, 0)
		assert.Less(t, s.Cursor, 15)
	}

	quizState := SetMode(d, New(d), question.ModeQuiz)
	assert.Equal(t, 0, Random(d, quizState).Cursor)
}

func TestToggleReveal_StudyOnly(t *testing.T) {
	d := testDeck()

	assert.True(t, ToggleReveal(New(d)).Revealed)
	assert.False(t, ToggleReveal(ToggleReveal(New(d))).Revealed)
	assert.False(t, ToggleReveal(SetMode(d, New(d), question.ModeQuiz)).Revealed)
}

func TestBuildSummary(t *testing.T) {
	d := testDeck()
	s := SetMode(d, New(d), question.ModeQuiz)
	s = SelectAnswer(s, "A")

	_, err := BuildSummary(s)
	assert.ErrorIs(t, err, ErrNotFinalized)

	s, err = Submit(s)
	require.NoError(t, err)
	sum, err := BuildSummary(s)
	require.NoError(t, err)

	assert.Equal(t, s.ID, sum.SessionID)
	assert.Equal(t, question.AllCategory, sum.Category)
	assert.Equal(t, quiz.Percentage(1, 5), sum.Result.Percentage)
}
