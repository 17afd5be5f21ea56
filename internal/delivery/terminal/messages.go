// messages.go contains message templates and formatting functions for the terminal.

package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
	"github.com/aliskhannn/vocab-trainer/internal/repository"
	"github.com/aliskhannn/vocab-trainer/internal/vocab"
)

// Error messages.
const (
	msgInternalError  = "Something went wrong, see the log for details."
	msgInvalidChoice  = "Unknown choice, try again."
	msgNoFiles        = "No matching files found."
	msgNoProblems     = "All lines were loaded."
	msgNoHistory      = "No reviews yet."
	msgNotSingleFile  = "File selection is only available with the singlefile provider."
	msgVocabularyKept = "The previous vocabulary is kept."
)

// Prompts and labels.
const (
	msgCorrect       = "Correct!"
	msgIncorrect     = "Incorrect!"
	msgAlmost        = "Almost, check your spelling."
	msgPressEnter    = "Press Enter to continue..."
	msgRepeatMissed  = "Repeat missed items?"
	msgFilterFiles   = "Filter term (empty for all files)"
	msgAnswerPrompt  = "> "
	msgRevealPrefix  = ">>> "
	msgAnswerJoiner  = " (OR) "
	msgLiteralPrefix = "lit: "
	msgGoodbye       = "Bye!"

	progressBarLength = 10
	maxListedProblems = 20
	maxListedFiles    = 20
)

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// formatBanner formats the position of the current turn.
func formatBanner(current, total int) string {
	return fmt.Sprintf("%d of %d", current, total)
}

// formatQuestion formats the prompt side with its optional extras.
func formatQuestion(side entities.Side, showNotes, showHint bool) string {
	var sb strings.Builder
	sb.WriteString(side.Display())
	if showNotes && side.HasAnnotation() {
		sb.WriteString(" (" + side.Annotation() + ")")
	}
	if showHint && side.LiteralHint != "" {
		sb.WriteString("\n" + msgLiteralPrefix + side.LiteralHint)
	}
	return sb.String()
}

// formatAnswers lists every accepted form of a side.
func formatAnswers(side entities.Side) string {
	text := msgRevealPrefix + strings.Join(side.Candidates, msgAnswerJoiner)
	if side.HasAnnotation() {
		text += " (" + side.Annotation() + ")"
	}
	return text
}

// formatOptions numbers multiple choice options from 1.
func formatOptions(options []string) string {
	lines := make([]string, 0, len(options))
	for i, opt := range options {
		lines = append(lines, fmt.Sprintf("  %d) %s", i+1, opt))
	}
	return strings.Join(lines, "\n")
}

// formatAnswerFeedback formats feedback for one attempt.
func formatAnswerFeedback(result entities.MatchResult, close bool) string {
	switch {
	case result.Correct:
		return msgCorrect
	case close:
		return msgIncorrect + " " + msgAlmost
	default:
		return msgIncorrect
	}
}

// formatReviewStart announces a review.
func formatReviewStart(mode string, items int, dir entities.Direction, lang1, lang2 entities.LanguageName) string {
	from, to := lang1, lang2
	if dir == entities.ToLang1 {
		from, to = lang2, lang1
	}
	return fmt.Sprintf("Starting %s review: %d items, %s to %s.", mode, items, languageLabel(from), languageLabel(to))
}

func languageLabel(l entities.LanguageName) string {
	switch {
	case l.Full != "":
		return l.Full
	case l.Short != "":
		return l.Short
	default:
		return "?"
	}
}

// formatSessionResult formats the result of a finished or stopped session.
func formatSessionResult(session *entities.ReviewSession) string {
	percentage := session.Accuracy()

	message := "Keep practicing!"
	switch {
	case percentage >= 90:
		message = "Excellent result!"
	case percentage >= 70:
		message = "Good result!"
	case percentage >= 50:
		message = "Not bad, keep going!"
	}

	title := "Review completed!"
	if session.Status == entities.SessionAbandoned {
		title = "Review stopped."
	}

	return fmt.Sprintf(
		"%s\n\nResult: %d/%d (%.0f%%)\n%s\n\n%s\nMissed %d items.",
		title,
		session.Correct, session.Turns, percentage,
		buildProgressBar(session.Correct, session.Turns, progressBarLength),
		message,
		len(session.Missed),
	)
}

// formatLoadSummary reports what was loaded and how much was rejected.
func formatLoadSummary(v *repository.Vocabulary) string {
	text := fmt.Sprintf("Loaded %d entries from %d source(s).", len(v.Entries), len(v.Sources))
	if n := len(v.Problems); n > 0 {
		text += fmt.Sprintf(" %d line(s) skipped.", n)
	}
	if n := len(v.Failed); n > 0 {
		text += fmt.Sprintf(" %d source(s) could not be used.", n)
	}
	return text
}

// formatProblems lists rejected lines and failed sources.
func formatProblems(v *repository.Vocabulary) string {
	if v == nil || (len(v.Problems) == 0 && len(v.Failed) == 0) {
		return msgNoProblems
	}

	var sb strings.Builder
	for _, err := range v.Failed {
		sb.WriteString("! " + formatSourceFailure(err) + "\n")
	}
	for i, perr := range v.Problems {
		if i == maxListedProblems {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(v.Problems)-maxListedProblems))
			break
		}
		sb.WriteString(fmt.Sprintf("%s:%d: %s\n    %s\n", perr.File, perr.Line, perr.Reason, perr.Raw))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatSourceFailure(err error) string {
	var serr *vocab.SourceError
	if errors.As(err, &serr) {
		return fmt.Sprintf("%s: no valid entries", serr.Source)
	}
	return err.Error()
}

// formatHistory lists the sessions of this run, oldest first.
func formatHistory(sessions []*entities.ReviewSession) string {
	if len(sessions) == 0 {
		return msgNoHistory
	}

	lines := make([]string, 0, len(sessions))
	for i, s := range sessions {
		lines = append(lines, fmt.Sprintf(
			"%d. %s %s %d/%d (%.0f%%), missed %d, %s",
			i+1, s.StartedAt.Format("15:04"), s.Mode,
			s.Correct, s.Turns, s.Accuracy(), len(s.Missed), s.Status,
		))
	}
	return strings.Join(lines, "\n")
}
