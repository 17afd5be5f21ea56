package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
	"github.com/aliskhannn/vocab-trainer/internal/storage"
)

var ErrNoItems = errors.New("no items to review")

const defaultRedoLimit = 1

// ReviewOptions configures one review session.
type ReviewOptions struct {
	Direction  entities.Direction
	RedoMissed bool // re-enqueue a missed entry at the end of the queue
	RedoLimit  int  // extra turns per entry when RedoMissed is set
}

// ReviewService runs review sessions over a working set of entries.
type ReviewService struct {
	logger *zap.Logger
}

// NewReviewService creates a new ReviewService.
func NewReviewService(logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{logger: logger}
}

// Run reviews entries in order with mode. The session is returned even when
// an error stops it early; in that case its status is abandoned.
func (s *ReviewService) Run(
	ctx context.Context,
	mode Mode,
	entries []*entities.VocabEntry,
	opts ReviewOptions,
) (*entities.ReviewSession, error) {
	if len(entries) == 0 {
		return nil, ErrNoItems
	}
	if !opts.Direction.Valid() {
		opts.Direction = entities.ToLang2
	}
	if opts.RedoLimit <= 0 {
		opts.RedoLimit = defaultRedoLimit
	}

	session := entities.NewReviewSession(mode.Name(), opts.Direction, len(entries))
	log := s.logger.With(
		zap.String("session_id", session.ID.String()),
		zap.String("mode", session.Mode),
	)
	log.Info("review started",
		zap.Int("items", len(entries)),
		zap.String("direction", string(opts.Direction)),
		zap.Bool("redo_missed", opts.RedoMissed),
	)

	queue := append([]*entities.VocabEntry(nil), entries...)
	redone := make(map[*entities.VocabEntry]int)
	missed := storage.NewMissedSet()

	stop := func(err error) (*entities.ReviewSession, error) {
		session.Missed = missed.Items()
		session.Abandon()
		log.Info("review abandoned", zap.Int("turns", session.Turns), zap.Error(err))
		return session, err
	}

	for i := 0; i < len(queue); i++ {
		if err := ctx.Err(); err != nil {
			return stop(err)
		}

		entry := queue[i]
		outcome, err := mode.Review(ctx, Turn{
			Entry:     entry,
			Number:    i + 1,
			Total:     len(queue),
			Direction: opts.Direction,
		})
		if err != nil {
			return stop(fmt.Errorf("review %q: %w", entry.Raw, err))
		}

		session.Turns++
		if !outcome.Missed {
			session.Correct++
		} else {
			missed.Add(entry)
			if opts.RedoMissed && redone[entry] < opts.RedoLimit {
				redone[entry]++
				queue = append(queue, entry)
			}
		}

		log.Debug("turn finished",
			zap.Int("turn", i+1),
			zap.String("entry", entry.Raw),
			zap.Bool("missed", outcome.Missed),
			zap.Int("attempts", outcome.Attempts),
		)
	}

	session.Missed = missed.Items()
	session.Complete()
	log.Info("review completed",
		zap.Int("turns", session.Turns),
		zap.Int("correct", session.Correct),
		zap.Int("missed", len(session.Missed)),
	)
	return session, nil
}
