package session

import "github.com/albertoserr18/CompE-561-Study-tool/internal/quiz"

// Summary holds the data displayed on the results screen.
type Summary struct {
	SessionID  string
	Category   string
	SampleSize int
	Result     quiz.Result
}

// BuildSummary scores a finalized quiz for display.
func BuildSummary(s State) (*Summary, error) {
	res, err := Result(s)
	if err != nil {
		return nil, err
	}
	return &Summary{
		SessionID:  s.ID,
		Category:   s.Category,
		SampleSize: s.SampleSize,
		Result:     res,
	}, nil
}
