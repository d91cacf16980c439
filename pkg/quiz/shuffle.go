package quiz

import (
	"math/rand"
	"time"
)

// Shuffler produces presentation copies of quiz data. Inputs are never
// mutated, so the authoritative order stays intact for scoring and
// record keeping.
type Shuffler struct {
	rnd *rand.Rand
}

// NewShuffler seeds from the wall clock.
func NewShuffler() *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededShuffler fixes the permutation sequence; meant for tests.
func NewSeededShuffler(seed int64) *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffled returns an unbiased permutation of in as a new slice,
// Fisher-Yates over a copy.
func Shuffled[T any](s *Shuffler, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ShuffleQuiz applies q's shuffle settings and returns the presentation
// copy. Question order and answer order are shuffled independently per
// their flags; true/false questions keep their canonical answer order
// regardless.
func (s *Shuffler) ShuffleQuiz(q Quiz) Quiz {
	out := q
	questions := make([]Question, len(q.Questions))
	copy(questions, q.Questions)
	if q.Settings.ShuffleQuestions {
		questions = Shuffled(s, questions)
	}
	if q.Settings.ShuffleAnswers {
		for i := range questions {
			if questions[i].Type == TrueFalse {
				continue
			}
			questions[i].Answers = Shuffled(s, questions[i].Answers)
		}
	}
	out.Questions = questions
	return out
}
