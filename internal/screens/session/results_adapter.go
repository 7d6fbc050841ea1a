package session

import (
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screen"
	"github.com/albertoserr18/CompE-561-Study-tool/internal/screens/results"
	sess "github.com/albertoserr18/CompE-561-Study-tool/internal/session"
)

// newResultsScreen creates a results screen from session data.
func newResultsScreen(s *sess.Summary) screen.Screen {
	return results.New(s)
}
