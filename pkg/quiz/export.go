package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The JSON export is a stable external contract; its field names are
// deliberately renamed from the internal model.
type exportDoc struct {
	QuizTitle       string           `json:"quiz_title"`
	QuizDescription string           `json:"quiz_description"`
	Settings        Settings         `json:"settings"`
	Questions       []exportQuestion `json:"questions"`
	ExportDate      string           `json:"export_date"`
}

type exportQuestion struct {
	Order       int            `json:"order"`
	Question    string         `json:"question"`
	Type        QuestionType   `json:"type"`
	Points      float64        `json:"points"`
	Answers     []exportAnswer `json:"answers"`
	Explanation string         `json:"explanation,omitempty"`
}

type exportAnswer struct {
	Order   int    `json:"order"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// ExportJSON renders q as the portable JSON document, stamped with the
// export time.
func ExportJSON(q Quiz) (string, error) {
	doc := exportDoc{
		QuizTitle:       q.Title,
		QuizDescription: q.Description,
		Settings:        q.Settings,
		Questions:       make([]exportQuestion, 0, len(q.Questions)),
		ExportDate:      time.Now().UTC().Format(time.RFC3339),
	}
	for i, question := range q.Questions {
		eq := exportQuestion{
			Order:       i + 1,
			Question:    question.QuestionText,
			Type:        question.Type,
			Points:      question.Points,
			Answers:     make([]exportAnswer, 0, len(question.Answers)),
			Explanation: question.Explanation,
		}
		for j, a := range question.Answers {
			eq.Answers = append(eq.Answers, exportAnswer{Order: j + 1, Text: a.AnswerText, Correct: a.IsCorrect})
		}
		doc.Questions = append(doc.Questions, eq)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal quiz export: %w", err)
	}
	return string(b), nil
}

// csvMaxAnswers caps the flat layout; answers past the fourth do not fit a
// fixed-column spreadsheet row and are dropped.
const csvMaxAnswers = 4

const csvHeader = "Question,Type,Points,Answer 1,Correct 1,Answer 2,Correct 2,Answer 3,Correct 3,Answer 4,Correct 4,Explanation"

// ExportCSV flattens q into the fixed 12-column spreadsheet layout, one row
// per question.
func ExportCSV(q Quiz) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, question := range q.Questions {
		fields := []string{
			csvQuote(question.QuestionText),
			string(question.Type),
			strconv.FormatFloat(question.Points, 'f', -1, 64),
		}
		for i := 0; i < csvMaxAnswers; i++ {
			if i < len(question.Answers) {
				a := question.Answers[i]
				fields = append(fields, csvQuote(a.AnswerText), csvBool(a.IsCorrect))
			} else {
				fields = append(fields, "", "")
			}
		}
		fields = append(fields, csvQuote(question.Explanation))
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// csvQuote always quotes and doubles embedded quotes, so downstream tools
// never have to guess about commas or newlines in authored text.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func csvBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}
