package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertoserr18/CompE-561-Study-tool/internal/question"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParse_Valid(t *testing.T) {
	data := `[{"id":1,"question":"Q1\nA. x\nB. y","answer":"A. x - reason","category":"Net"}]`

	records, err := Parse("test", []byte(data))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, question.Record{ID: 1, Question: "Q1\nA. x\nB. y", Answer: "A. x - reason", Category: "Net"}, records[0])
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"id":`},
		{"not an array", `{"id":1}`},
		{"missing category", `[{"id":1,"question":"Q","answer":"A."}]`},
		{"string id", `[{"id":"1","question":"Q","answer":"A.","category":"Net"}]`},
		{"fractional id", `[{"id":1.5,"question":"Q","answer":"A.","category":"Net"}]`},
		{"empty question", `[{"id":1,"question":"","answer":"A.","category":"Net"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", []byte(tt.data))
			require.Error(t, err)
			var invErr *InvalidError
			assert.True(t, errors.As(err, &invErr), "expected InvalidError, got %T", err)
		})
	}
}

func TestParse_DuplicateID(t *testing.T) {
	data := `[
		{"id":1,"question":"Q1","answer":"A.","category":"Net"},
		{"id":1,"question":"Q2","answer":"B.","category":"Net"}
	]`

	_, err := Parse("test", []byte(data))

	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestParse_EmptyArray(t *testing.T) {
	records, err := Parse("test", []byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadFiles(t *testing.T) {
	a := writeFile(t, "a.json", `[{"id":1,"question":"Q1","answer":"A.","category":"Net"}]`)
	b := writeFile(t, "b.json", `[{"id":2,"question":"Q2","answer":"B.","category":"OS"}]`)

	records, err := LoadFiles([]string{a, b})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 2, records[1].ID)
}

func TestLoadFiles_DuplicateAcrossFiles(t *testing.T) {
	a := writeFile(t, "a.json", `[{"id":1,"question":"Q1","answer":"A.","category":"Net"}]`)
	b := writeFile(t, "b.json", `[{"id":1,"question":"Q2","answer":"B.","category":"OS"}]`)

	_, err := LoadFiles([]string{a, b})

	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	records, err := Default()

	require.NoError(t, err)
	assert.NotEmpty(t, records)
	assert.Empty(t, Lint(records), "embedded bank should be clean")
	assert.Greater(t, len(question.Taxonomy(records)), 1)
}

func TestLint(t *testing.T) {
	records := []question.Record{
		{ID: 1, Question: "Q\nA. a\nB. b", Answer: "A. a - fine"},
		{ID: 2, Question: "Q without options", Answer: "B. b"},
		{ID: 3, Question: "Q\nA. a", Answer: "a is right"},
		{ID: 4, Question: "Q\nA. a\nB. b", Answer: "D. d"},
	}

	issues := Lint(records)

	require.Len(t, issues, 3)
	assert.Equal(t, Issue{ID: 2, Problem: "no options"}, issues[0])
	assert.Equal(t, Issue{ID: 3, Problem: "answer has no letter prefix"}, issues[1])
	assert.Equal(t, Issue{ID: 4, Problem: "correct letter D is not an option"}, issues[2])
	assert.Equal(t, "question 2: no options", issues[0].String())
}
