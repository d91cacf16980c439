package quiz

import (
	"fmt"
	"strings"
)

// ValidationError describes one structural problem in authored quiz data.
// Validation results are data, not control flow: nothing in this package
// returns a Go error for a business-rule violation.
type ValidationError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	QuestionIndex int    `json:"question_index,omitempty"` // 1-based; 0 when not question-scoped
	AnswerIndex   *int   `json:"answer_index,omitempty"`   // 0-based within the question's answers
}

// QuizValidation is the outcome of ValidateQuiz. Warnings are advisory and
// never affect IsValid.
type QuizValidation struct {
	IsValid  bool              `json:"is_valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// Author-facing messages, verbatim from the product UI.
const (
	msgEmptyQuestionText  = "Nội dung câu hỏi không được để trống"
	msgInvalidPoints      = "Điểm số phải lớn hơn 0"
	msgFillBlankOneAnswer = "Câu điền từ phải có đúng một đáp án"
	msgFillBlankEmpty     = "Đáp án của câu điền từ không được để trống"
	msgNoCorrectAnswer    = "Phải có ít nhất một đáp án đúng"
	msgMultipleCorrect    = "Câu trắc nghiệm chỉ được có một đáp án đúng"
	msgTrueFalseTwo       = "Câu đúng/sai phải có đúng 2 đáp án"
	msgTrueFalseOneRight  = "Câu đúng/sai phải có đúng một đáp án đúng"
	msgEmptyTitle         = "Tiêu đề quiz không được để trống"
	msgNoQuestions        = "Quiz phải có ít nhất một câu hỏi"

	warnFewQuestions = "Quiz nên có ít nhất 5 câu hỏi"
	warnLowPoints    = "Tổng điểm của quiz nên từ 10 điểm trở lên"
	warnShortTime    = "Thời gian làm bài có thể quá ngắn so với số câu hỏi"
)

// ValidateQuestion checks one question against the structural rules of its
// type and returns every violation, not just the first. An empty result
// means the question is usable.
func ValidateQuestion(q Question) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(q.QuestionText) == "" {
		errs = append(errs, ValidationError{Field: "question_text", Message: msgEmptyQuestionText})
	}
	if q.Points <= 0 {
		errs = append(errs, ValidationError{Field: "points", Message: msgInvalidPoints})
	}

	if q.Type == FillBlank {
		// The single answer is the accepted text; correctness is implicit.
		if len(q.Answers) != 1 {
			errs = append(errs, ValidationError{Field: "answers", Message: msgFillBlankOneAnswer})
		} else if strings.TrimSpace(q.Answers[0].AnswerText) == "" {
			errs = append(errs, ValidationError{Field: "answers", Message: msgFillBlankEmpty})
		}
		return errs
	}

	if len(q.Answers) < MinAnswersPerQuestion {
		errs = append(errs, ValidationError{
			Field:   "answers",
			Message: fmt.Sprintf("Phải có ít nhất %d đáp án", MinAnswersPerQuestion),
		})
	}
	if len(q.Answers) > MaxAnswersPerQuestion {
		errs = append(errs, ValidationError{
			Field:   "answers",
			Message: fmt.Sprintf("Chỉ được có tối đa %d đáp án", MaxAnswersPerQuestion),
		})
	}

	correct := 0
	for i, a := range q.Answers {
		if strings.TrimSpace(a.AnswerText) == "" {
			idx := i
			errs = append(errs, ValidationError{
				Field:       "answers",
				Message:     fmt.Sprintf("Đáp án %d không được để trống", i+1),
				AnswerIndex: &idx,
			})
		}
		if a.IsCorrect {
			correct++
		}
	}
	if correct < 1 {
		errs = append(errs, ValidationError{Field: "answers", Message: msgNoCorrectAnswer})
	}
	if q.Type == MultipleChoice && correct > 1 {
		errs = append(errs, ValidationError{Field: "answers", Message: msgMultipleCorrect})
	}
	if q.Type == TrueFalse {
		if len(q.Answers) != 2 {
			errs = append(errs, ValidationError{Field: "answers", Message: msgTrueFalseTwo})
		}
		if correct != 1 {
			errs = append(errs, ValidationError{Field: "answers", Message: msgTrueFalseOneRight})
		}
	}
	return errs
}

// ValidateQuiz runs quiz-level checks plus ValidateQuestion over every
// question. Question errors are re-labeled with their 1-based position so
// the author sees all problems across the whole form at once; there is no
// short-circuiting.
func ValidateQuiz(form BuilderForm) QuizValidation {
	var errs, warns []ValidationError

	if strings.TrimSpace(form.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: msgEmptyTitle})
	}
	if len(form.Questions) == 0 {
		errs = append(errs, ValidationError{Field: "questions", Message: msgNoQuestions})
	}

	total := 0.0
	for i, q := range form.Questions {
		total += q.Points
		for _, e := range ValidateQuestion(q) {
			e.QuestionIndex = i + 1
			e.Message = fmt.Sprintf("Câu %d: %s", i+1, e.Message)
			errs = append(errs, e)
		}
	}

	if len(form.Questions) < 5 {
		warns = append(warns, ValidationError{Field: "questions", Message: warnFewQuestions})
	}
	if total < 10 {
		warns = append(warns, ValidationError{Field: "questions", Message: warnLowPoints})
	}
	// Heuristic: allow at least 2 minutes per question.
	if form.Settings.TimeLimit != nil && *form.Settings.TimeLimit < 2*len(form.Questions) {
		warns = append(warns, ValidationError{Field: "settings", Message: warnShortTime})
	}

	return QuizValidation{IsValid: len(errs) == 0, Errors: errs, Warnings: warns}
}
