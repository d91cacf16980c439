package quiz

import (
	"math"
	"strings"
)

// QuestionResult is the scored outcome of a single question.
type QuestionResult struct {
	QuestionID string  `json:"question_id"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	IsCorrect  bool    `json:"is_correct"`
}

// QuizResult aggregates per-question scores over a whole attempt.
type QuizResult struct {
	TotalScore      float64          `json:"total_score"`
	MaxScore        float64          `json:"max_score"`
	Percentage      int              `json:"percentage"`
	QuestionResults []QuestionResult `json:"question_results"`
}

// ScoreQuestion awards full points or none, keyed on the question type.
// fill_blank matches the submitted text against the reference answer after
// trimming and case folding; choice questions require the submitted ID set
// to equal the correct ID set exactly. Malformed or missing submissions
// score 0, never an error.
func ScoreQuestion(q Question, userAnswers []string) float64 {
	if q.Type == FillBlank {
		if len(q.Answers) == 0 || len(userAnswers) == 0 {
			return 0
		}
		want := strings.ToLower(strings.TrimSpace(q.Answers[0].AnswerText))
		got := strings.ToLower(strings.TrimSpace(userAnswers[0]))
		if want == got {
			return q.Points
		}
		return 0
	}

	correct := make(map[string]struct{})
	for _, a := range q.Answers {
		if a.IsCorrect {
			correct[a.ID] = struct{}{}
		}
	}
	if setEqual(correct, toSet(userAnswers)) {
		return q.Points
	}
	return 0
}

// ScoreQuiz scores every question in q against the submitted answers.
// Questions absent from answers are treated as answered with nothing.
// MaxScore is q.TotalPoints, trusted as-is; Percentage is 0 for an empty
// quiz rather than a division by zero.
func ScoreQuiz(q Quiz, answers map[string][]string) QuizResult {
	res := QuizResult{MaxScore: q.TotalPoints}
	for _, question := range q.Questions {
		score := ScoreQuestion(question, answers[question.ID])
		res.TotalScore += score
		res.QuestionResults = append(res.QuestionResults, QuestionResult{
			QuestionID: question.ID,
			Score:      score,
			MaxScore:   question.Points,
			IsCorrect:  score == question.Points,
		})
	}
	if res.MaxScore > 0 {
		res.Percentage = int(math.Round(res.TotalScore / res.MaxScore * 100))
	}
	return res
}

func toSet(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
