package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
)

// Mode names.
const (
	ModePractice = "practice"
	ModeRapid    = "rapid"
	ModeLearn    = "learn"
	ModeChoice   = "choice"
)

var ErrUnknownMode = errors.New("unknown mode")

// ModeNames lists the available modes in menu order.
var ModeNames = []string{ModePractice, ModeRapid, ModeLearn, ModeChoice}

// Texts shown by the modes through Presenter.Notice.
const (
	msgCopyAnswer   = "Type the answer shown."
	msgRecallAnswer = "Now type it from memory."
	msgPickOption   = "Type the number of an option."
	msgAddToMissed  = "Add to missed file?"
)

// ModeSettings holds what a mode needs besides the presenter.
type ModeSettings struct {
	MaxAttempts int  // typed attempts per turn, at least 1
	ShowHint    bool // show the literal hint with the prompt
	ShowNotes   bool // show annotations with the prompt
	Options     int  // number of options in choice mode

	Validator *AnswerValidator
	Missed    LineRecorder // receives the raw line of missed entries, may be nil
	Output    LineRecorder // receives the raw line of every reviewed entry, may be nil

	// Pool supplies wrong options in choice mode.
	Pool []*entities.VocabEntry

	Logger *zap.Logger
}

// NewMode builds the mode registered under name.
func NewMode(name string, presenter Presenter, settings ModeSettings) (Mode, error) {
	if settings.MaxAttempts < 1 {
		settings.MaxAttempts = 1
	}
	if settings.Validator == nil {
		settings.Validator = defaultValidator
	}
	if settings.Logger == nil {
		settings.Logger = zap.NewNop()
	}

	base := modeBase{
		name:      name,
		presenter: presenter,
		settings:  settings,
		display:   DisplayOptions{ShowHint: settings.ShowHint, ShowNotes: settings.ShowNotes},
	}

	switch name {
	case ModePractice:
		return &practiceMode{modeBase: base}, nil
	case ModeRapid:
		return &rapidMode{modeBase: base}, nil
	case ModeLearn:
		return &learnMode{modeBase: base}, nil
	case ModeChoice:
		return &choiceMode{
			modeBase:  base,
			generator: NewOptionGenerator(settings.Pool, settings.Validator),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
}

type modeBase struct {
	name      string
	presenter Presenter
	settings  ModeSettings
	display   DisplayOptions
}

func (m *modeBase) Name() string {
	return m.name
}

func (m *modeBase) recordMissed(entry *entities.VocabEntry) {
	m.record(m.settings.Missed, "missed", entry)
}

func (m *modeBase) recordOutput(entry *entities.VocabEntry) {
	m.record(m.settings.Output, "output", entry)
}

// record logs write failures instead of failing the turn.
func (m *modeBase) record(rec LineRecorder, kind string, entry *entities.VocabEntry) {
	if rec == nil {
		return
	}
	if err := rec.AppendLine(entry.Raw); err != nil {
		m.settings.Logger.Warn("failed to record line",
			zap.String("file", kind),
			zap.String("entry", entry.Raw),
			zap.Error(err),
		)
	}
}
