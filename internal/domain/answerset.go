package domain

// AnswerSet maps question_key to the day's answer. A nil value means the
// question has not been answered; unanswered keys are never persisted.
// The set is transient: it is rebuilt from the active catalog whenever the
// selected date changes, and discarded afterwards.
type AnswerSet map[string]*bool

// NewAnswerSet returns a blank set with one nil entry per question.
func NewAnswerSet(questions []Question) AnswerSet {
	set := make(AnswerSet, len(questions))
	for _, q := range questions {
		set[q.QuestionKey] = nil
	}
	return set
}

// Score counts entries that are exactly true. Unanswered and "no" both
// contribute zero. This is the single source of the stored total_score:
// SaveDay persists the same set it scores.
func (a AnswerSet) Score() int {
	score := 0
	for _, v := range a {
		if v != nil && *v {
			score++
		}
	}
	return score
}

// Answered counts entries that carry any answer at all.
func (a AnswerSet) Answered() int {
	n := 0
	for _, v := range a {
		if v != nil {
			n++
		}
	}
	return n
}
