package service

import (
	"context"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

// DisplayOptions controls which extras are shown with a prompt.
type DisplayOptions struct {
	ShowHint  bool
	ShowNotes bool
}

// Presenter is the user-facing side of a review. Ask, Confirm and Pause block
// until the user responds or ctx is done.
type Presenter interface {
	Banner(current, total int)
	Question(side entities.Side, opts DisplayOptions)
	Options(options []string)
	Feedback(result entities.MatchResult, close bool)
	Reveal(side entities.Side)
	Notice(text string)

	Ask(ctx context.Context) (string, error)
	Confirm(ctx context.Context, question string, def bool) (bool, error)
	Pause(ctx context.Context) error
}

// LineRecorder appends raw vocabulary lines to a missed or output file.
type LineRecorder interface {
	AppendLine(line string) error
}

// Mode reviews one entry per turn.
type Mode interface {
	Name() string
	Review(ctx context.Context, turn Turn) (entities.Outcome, error)
}

// Turn is one step of a review session.
type Turn struct {
	Entry     *entities.VocabEntry
	Number    int // 1-based position in the queue
	Total     int // current queue length, grows when missed items are redone
	Direction entities.Direction
}
