package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionAbandoned = "abandoned"
)

// Outcome is the result of reviewing a single entry in one turn.
type Outcome struct {
	Entry    *VocabEntry
	Response string // last response typed by the user, empty for self-graded modes
	Result   MatchResult
	Missed   bool
	Attempts int
}

// ReviewSession tracks one pass over a working set of entries.
type ReviewSession struct {
	ID          uuid.UUID
	Mode        string     // mode name: "practice", "rapid", "learn", "choice"
	Direction   Direction  // quiz direction used for the session
	TotalItems  int        // size of the initial working set
	Turns       int        // turns played, including redo turns
	Correct     int        // turns answered correctly
	Missed      []*VocabEntry
	Status      string     // "active", "completed" or "abandoned"
	StartedAt   time.Time
	CompletedAt *time.Time // nil while active
}

// NewReviewSession creates an active session for the given mode and working set size.
func NewReviewSession(mode string, dir Direction, total int) *ReviewSession {
	return &ReviewSession{
		ID:         uuid.New(),
		Mode:       mode,
		Direction:  dir,
		TotalItems: total,
		Status:     SessionActive,
		StartedAt:  time.Now(),
	}
}

// Complete marks the session as completed and sets the completion timestamp.
func (s *ReviewSession) Complete() {
	s.finish(SessionCompleted)
}

// Abandon marks the session as stopped before the working set was exhausted.
func (s *ReviewSession) Abandon() {
	s.finish(SessionAbandoned)
}

func (s *ReviewSession) finish(status string) {
	s.Status = status
	now := time.Now()
	s.CompletedAt = &now
}

// Accuracy returns the share of correct turns in percent.
func (s *ReviewSession) Accuracy() float64 {
	if s.Turns == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Turns) * 100
}
