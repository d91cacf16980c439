package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quizforge/quizkit/pkg/quiz"
)

// File shapes mirror the builder form with YAML-friendly tags. Authored
// files may omit identifiers; quiz.NewQuizFromForm fills them in.
type quizFile struct {
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Settings    settingsFile   `json:"settings" yaml:"settings"`
	Questions   []questionFile `json:"questions" yaml:"questions"`
}

type settingsFile struct {
	ShuffleQuestions bool `json:"shuffle_questions" yaml:"shuffle_questions"`
	ShuffleAnswers   bool `json:"shuffle_answers" yaml:"shuffle_answers"`
	TimeLimit        *int `json:"time_limit" yaml:"time_limit"`
}

type questionFile struct {
	ID          string       `json:"id" yaml:"id"`
	Question    string       `json:"question" yaml:"question"`
	Type        string       `json:"type" yaml:"type"`
	Points      float64      `json:"points" yaml:"points"`
	Answers     []answerFile `json:"answers" yaml:"answers"`
	Explanation string       `json:"explanation" yaml:"explanation"`
}

type answerFile struct {
	ID      string `json:"id" yaml:"id"`
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// loadQuizFile reads an authored quiz from path, parsing JSON for .json
// files and YAML otherwise. Unknown fields are rejected so typos surface
// as load errors instead of silently dropped settings.
func loadQuizFile(path string) (quiz.BuilderForm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return quiz.BuilderForm{}, fmt.Errorf("read quiz file: %w", err)
	}

	var qf quizFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&qf); err != nil {
			return quiz.BuilderForm{}, fmt.Errorf("parse quiz json: %w", err)
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return quiz.BuilderForm{}, fmt.Errorf("parse quiz json: trailing content")
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&qf); err != nil {
			return quiz.BuilderForm{}, fmt.Errorf("parse quiz yaml: %w", err)
		}
	}

	return qf.toForm(), nil
}

func (f quizFile) toForm() quiz.BuilderForm {
	form := quiz.BuilderForm{
		Title:       f.Title,
		Description: f.Description,
		Settings: quiz.Settings{
			ShuffleQuestions: f.Settings.ShuffleQuestions,
			ShuffleAnswers:   f.Settings.ShuffleAnswers,
			TimeLimit:        f.Settings.TimeLimit,
		},
	}
	for i, q := range f.Questions {
		question := quiz.Question{
			ID:           q.ID,
			QuestionText: q.Question,
			Type:         quiz.QuestionType(q.Type),
			Points:       q.Points,
			OrderIndex:   i,
			Explanation:  q.Explanation,
		}
		for j, a := range q.Answers {
			question.Answers = append(question.Answers, quiz.Answer{
				ID:         a.ID,
				AnswerText: a.Text,
				IsCorrect:  a.Correct,
				OrderIndex: j,
			})
		}
		form.Questions = append(form.Questions, question)
	}
	return form
}

// loadAnswersFile reads a submitted-answers map: question ID to the list of
// selected answer IDs, or a single string for fill-in-the-blank text.
func loadAnswersFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse answers json: %w", err)
	}
	answers := make(map[string][]string, len(raw))
	for id, msg := range raw {
		var list []string
		if err := json.Unmarshal(msg, &list); err == nil {
			answers[id] = list
			continue
		}
		var single string
		if err := json.Unmarshal(msg, &single); err != nil {
			return nil, fmt.Errorf("parse answers json: question %s: want string or list of strings", id)
		}
		answers[id] = []string{single}
	}
	return answers, nil
}
