package quiz

import "math"

// CompletionStatus summarizes how much of a question set passes validation,
// for authoring progress displays.
type CompletionStatus struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// IsQuestionComplete reports whether q passes every structural check.
func IsQuestionComplete(q Question) bool {
	return len(ValidateQuestion(q)) == 0
}

// QuestionCompletionStatus counts individually complete questions.
// Percentage is 0 for an empty set.
func QuestionCompletionStatus(questions []Question) CompletionStatus {
	st := CompletionStatus{Total: len(questions)}
	for _, q := range questions {
		if IsQuestionComplete(q) {
			st.Completed++
		}
	}
	if st.Total > 0 {
		st.Percentage = int(math.Round(float64(st.Completed) / float64(st.Total) * 100))
	}
	return st
}
