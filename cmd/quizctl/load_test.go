package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quizforge/quizkit/pkg/quiz"
)

const quizYAML = `title: Geography
description: European capitals
settings:
  shuffle_questions: true
  shuffle_answers: false
  time_limit: 10
questions:
  - question: Capital of France?
    type: multiple_choice
    points: 5
    answers:
      - text: Paris
        correct: true
      - text: Lyon
      - text: Nice
      - text: Toulouse
  - question: Largest planet?
    type: fill_blank
    points: 5
    answers:
      - text: Jupiter
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadQuizFile_YAML(t *testing.T) {
	form, err := loadQuizFile(writeFile(t, "geo.yaml", quizYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.Title != "Geography" {
		t.Fatalf("title: got %q", form.Title)
	}
	if !form.Settings.ShuffleQuestions || form.Settings.ShuffleAnswers {
		t.Fatalf("settings mismatch: %+v", form.Settings)
	}
	if form.Settings.TimeLimit == nil || *form.Settings.TimeLimit != 10 {
		t.Fatalf("time limit mismatch: %+v", form.Settings.TimeLimit)
	}
	if len(form.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(form.Questions))
	}
	if form.Questions[0].Type != quiz.MultipleChoice || len(form.Questions[0].Answers) != 4 {
		t.Fatalf("question 1 mismatch: %+v", form.Questions[0])
	}
	if !form.Questions[0].Answers[0].IsCorrect {
		t.Fatalf("correct flag lost in loading")
	}

	result := quiz.ValidateQuiz(form)
	if !result.IsValid {
		t.Fatalf("loaded quiz should validate, errors: %v", result.Errors)
	}
}

func TestLoadQuizFile_RejectsUnknownFields(t *testing.T) {
	path := writeFile(t, "bad.yaml", "title: X\nshuffle: true\n")
	if _, err := loadQuizFile(path); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoadQuizFile_JSON(t *testing.T) {
	path := writeFile(t, "geo.json", `{"title":"Geography","questions":[{"question":"Largest planet?","type":"fill_blank","points":5,"answers":[{"text":"Jupiter"}]}]}`)
	form, err := loadQuizFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(form.Questions) != 1 || form.Questions[0].QuestionText != "Largest planet?" {
		t.Fatalf("json quiz not loaded: %+v", form)
	}
}

func TestLoadAnswersFile(t *testing.T) {
	path := writeFile(t, "answers.json", `{"q1":["a1","a2"],"q2":"Jupiter"}`)
	answers, err := loadAnswersFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(answers["q1"]) != 2 {
		t.Fatalf("q1: got %v", answers["q1"])
	}
	if len(answers["q2"]) != 1 || answers["q2"][0] != "Jupiter" {
		t.Fatalf("q2: single string should become a one-element list, got %v", answers["q2"])
	}
}
