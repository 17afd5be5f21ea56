package terminal

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-trainer/internal/config"
	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
	"github.com/aliskhannn/vocab-trainer/internal/repository"
	"github.com/aliskhannn/vocab-trainer/internal/service"
	"github.com/aliskhannn/vocab-trainer/internal/storage"
)

// ModeConfigSource resolves mode settings; *config.Config implements it.
type ModeConfigSource interface {
	ForMode(name string, overrides map[string]any) (config.ModeConfig, error)
}

// FileSelector is implemented by providers that can switch to another file.
type FileSelector interface {
	Path() string
	Siblings(filter string) ([]string, error)
	Select(path string)
}

type Handler struct {
	console   *Console
	logger    *zap.Logger
	modes     ModeConfigSource
	provider  repository.Provider
	reviews   *service.ReviewService
	selector  *service.ItemSelector
	sessions  *storage.SessionStorage
	mode      string
	overrides map[string]any

	vocab *repository.Vocabulary
}

func NewHandler(
	console *Console,
	logger *zap.Logger,
	modes ModeConfigSource,
	provider repository.Provider,
	selector *service.ItemSelector,
	mode string,
	overrides map[string]any,
) *Handler {
	if selector == nil {
		selector = service.NewItemSelector()
	}
	return &Handler{
		console:   console,
		logger:    logger,
		modes:     modes,
		provider:  provider,
		reviews:   service.NewReviewService(logger),
		selector:  selector,
		sessions:  storage.NewSessionStorage(),
		mode:      mode,
		overrides: overrides,
	}
}

// Run loads the vocabulary and serves the main menu until the user quits,
// the input ends or ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("terminal handler started", zap.String("provider", h.provider.Name()))
	defer h.logger.Info("terminal handler stopped")

	if err := h.loadVocabulary(ctx); err != nil {
		if h.vocab != nil {
			h.console.Notice(formatProblems(h.vocab))
		}
		return err
	}

	_, canSelectFile := h.provider.(FileSelector)
	menu := buildMainMenu(canSelectFile)

	for {
		choice, err := h.console.Choose(ctx, "Vocab Trainer", h.menuNote(), menu, "r")
		if err != nil {
			return h.stopErr(err)
		}

		var action HandlerFunc
		switch choice {
		case "r":
			action = h.withErrorHandling("review", h.reviewHandler())
		case "m":
			action = h.withErrorHandling("mode", h.modeHandler())
		case "f":
			action = h.withErrorHandling("file", h.fileHandler())
		case "p":
			action = h.withErrorHandling("problems", h.problemsHandler())
		case "h":
			action = h.withErrorHandling("history", h.historyHandler())
		case "q":
			h.console.Notice(msgGoodbye)
			return nil
		}

		if action == nil {
			continue
		}
		if err := action(ctx); err != nil {
			return h.stopErr(err)
		}
	}
}

// stopErr turns the end of input into a normal exit.
func (h *Handler) stopErr(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}

func (h *Handler) menuNote() string {
	note := fmt.Sprintf("Mode: %s, entries: %d", h.mode, len(h.vocab.Entries))
	if fs, ok := h.provider.(FileSelector); ok {
		note += ", file: " + fs.Path()
	}
	return note
}

func (h *Handler) loadVocabulary(ctx context.Context) error {
	v, err := h.provider.Load(ctx)
	if err != nil {
		if h.vocab == nil {
			h.vocab = v
		}
		return fmt.Errorf("load vocabulary: %w", err)
	}

	h.vocab = v
	h.console.Notice(formatLoadSummary(v))
	return nil
}

func (h *Handler) reviewHandler() HandlerFunc {
	return func(ctx context.Context) error {
		mc, err := h.modes.ForMode(h.mode, h.overrides)
		if err != nil {
			return err
		}

		items := h.selector.Select(h.vocab.Entries, mc.ReviewNum, mc.Shuffle)
		return h.runReview(ctx, mc, items)
	}
}

// runReview plays a session and offers to repeat the missed items until
// nothing is missed or the user declines.
func (h *Handler) runReview(ctx context.Context, mc config.ModeConfig, items []*entities.VocabEntry) error {
	validator := service.NewAnswerValidator(
		service.WithFoldAccents(mc.FoldAccents),
		service.WithIgnorePunctuation(mc.IgnorePunctuation),
	)

	mode, err := service.NewMode(h.mode, h.console, service.ModeSettings{
		MaxAttempts: mc.MaxAttempts,
		ShowHint:    mc.ShowHint,
		ShowNotes:   mc.ShowNotes,
		Options:     mc.Options,
		Validator:   validator,
		Missed:      recorder(mc.MissedFile),
		Output:      recorder(mc.OutputFile),
		Pool:        h.vocab.Entries,
		Logger:      h.logger,
	})
	if err != nil {
		return err
	}

	for {
		h.console.Notice(formatReviewStart(h.mode, len(items), mc.Direction, h.vocab.Lang1, h.vocab.Lang2))

		session, err := h.reviews.Run(ctx, mode, items, service.ReviewOptions{
			Direction:  mc.Direction,
			RedoMissed: mc.RedoMissed,
			RedoLimit:  mc.RedoLimit,
		})
		if session != nil {
			h.sessions.Store(session)
			h.console.Notice(formatSessionResult(session))
		}
		if err != nil {
			return err
		}

		if len(session.Missed) == 0 {
			return h.console.Pause(ctx)
		}

		again, err := h.console.Confirm(ctx, msgRepeatMissed, true)
		if err != nil || !again {
			return err
		}
		items = session.Missed
	}
}

// recorder returns nil for an empty path so modes can skip recording.
func recorder(path string) service.LineRecorder {
	if path == "" {
		return nil
	}
	return repository.NewLineFile(path)
}

func (h *Handler) modeHandler() HandlerFunc {
	return func(ctx context.Context) error {
		items := make([]MenuItem, 0, len(service.ModeNames))
		for _, name := range service.ModeNames {
			items = append(items, MenuItem{Key: name[:1], Label: name})
		}

		key, err := h.console.Choose(ctx, "Select mode", "", items, h.mode[:1])
		if err != nil {
			return err
		}
		for _, item := range items {
			if item.Key == key {
				h.mode = item.Label
			}
		}
		h.logger.Debug("mode changed", zap.String("mode", h.mode))
		return nil
	}
}

func (h *Handler) fileHandler() HandlerFunc {
	return func(ctx context.Context) error {
		fs, ok := h.provider.(FileSelector)
		if !ok {
			h.console.Notice(msgNotSingleFile)
			return nil
		}

		filter, err := h.console.Prompt(ctx, msgFilterFiles)
		if err != nil {
			return err
		}
		files, err := fs.Siblings(filter)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			h.console.Notice(msgNoFiles)
			return nil
		}

		items := buildListMenu(files, maxListedFiles)
		key, err := h.console.Choose(ctx, "Select file", "", items, "")
		if err != nil {
			return err
		}

		previous := fs.Path()
		for _, item := range items {
			if item.Key == key {
				fs.Select(item.Label)
			}
		}
		if err := h.loadVocabulary(ctx); err != nil {
			fs.Select(previous)
			h.console.Notice(msgVocabularyKept)
			return err
		}
		return nil
	}
}

func (h *Handler) problemsHandler() HandlerFunc {
	return func(_ context.Context) error {
		h.console.Notice(formatProblems(h.vocab))
		return nil
	}
}

func (h *Handler) historyHandler() HandlerFunc {
	return func(_ context.Context) error {
		h.console.Notice(formatHistory(h.sessions.All()))
		return nil
	}
}
