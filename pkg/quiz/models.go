package quiz

// QuestionType is the closed set of interaction styles. Validation and
// scoring dispatch on it exhaustively; adding a type means touching both.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	FillBlank      QuestionType = "fill_blank"
)

// Answer-count bounds for choice questions. The authoring UI mirrors these;
// the validator is the source of truth.
const (
	MinAnswersPerQuestion = 2
	MaxAnswersPerQuestion = 6
)

type Answer struct {
	ID         string `json:"id"`
	AnswerText string `json:"answer_text"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index"`
}

type Question struct {
	ID           string       `json:"id"`
	QuestionText string       `json:"question_text"`
	Type         QuestionType `json:"question_type"`
	Answers      []Answer     `json:"answers"`
	Points       float64      `json:"points"`
	OrderIndex   int          `json:"order_index"`
	Explanation  string       `json:"explanation,omitempty"`
}

type Settings struct {
	ShuffleQuestions bool `json:"shuffle_questions"`
	ShuffleAnswers   bool `json:"shuffle_answers"`
	TimeLimit        *int `json:"time_limit"` // minutes; nil means untimed
}

// Quiz is an assembled, ready-to-validate assessment. TotalPoints is
// maintained by the constructor and trusted by the scorer as the
// denominator.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
	TotalPoints float64    `json:"total_points"`
	Settings    Settings   `json:"settings"`
}

// BuilderForm is the authoring-side shape: a quiz before it has an
// identifier and a computed total.
type BuilderForm struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Settings    Settings   `json:"settings"`
}

// NewQuizFromForm assembles a Quiz from an authoring form: it fills in
// missing identifiers, renumbers order indexes, and computes TotalPoints as
// the sum of question points. The form is not mutated.
func NewQuizFromForm(form BuilderForm) Quiz {
	questions := make([]Question, len(form.Questions))
	copy(questions, form.Questions)
	total := 0.0
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = NewQuestionID()
		}
		questions[i].OrderIndex = i
		answers := make([]Answer, len(questions[i].Answers))
		copy(answers, questions[i].Answers)
		for j := range answers {
			if answers[j].ID == "" {
				answers[j].ID = NewAnswerID()
			}
			answers[j].OrderIndex = j
		}
		questions[i].Answers = answers
		total += questions[i].Points
	}
	return Quiz{
		ID:          NewQuizID(),
		Title:       form.Title,
		Description: form.Description,
		Questions:   questions,
		TotalPoints: total,
		Settings:    form.Settings,
	}
}
