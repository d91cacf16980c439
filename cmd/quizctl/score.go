package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizkit/pkg/quiz"
)

func CommandScore(cmd *cobra.Command, args []string) {
	form, err := loadQuizFile(args[0])
	if err != nil {
		log.Fatalf("load quiz: %v", err)
	}
	answers, err := loadAnswersFile(args[1])
	if err != nil {
		log.Fatalf("load answers: %v", err)
	}

	q := quiz.NewQuizFromForm(form)
	if q.Settings.TimeLimit != nil {
		limit := quiz.ParseTimeLimit(*q.Settings.TimeLimit)
		fmt.Printf("time limit: %s\n", quiz.FormatTime(limit))
	}

	result := quiz.ScoreQuiz(q, answers)
	for i, qr := range result.QuestionResults {
		mark := "✗"
		if qr.IsCorrect {
			mark = "✓"
		}
		fmt.Printf("%s question %d (%s): %s/%s\n",
			mark, i+1, qr.QuestionID, points(qr.Score), points(qr.MaxScore))
	}
	fmt.Printf("total: %s/%s (%d%%)\n",
		points(result.TotalScore), points(result.MaxScore), result.Percentage)
}

func points(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
