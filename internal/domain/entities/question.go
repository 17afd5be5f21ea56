package entities

// Question is a multiple choice question built from a vocabulary entry.
type Question struct {
	Options      []string // multiple choice
	CorrectIndex int
}

// CorrectAnswer returns the option that answers the question.
func (q Question) CorrectAnswer() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}
