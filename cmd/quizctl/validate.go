package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizkit/pkg/quiz"
)

func CommandValidate(cmd *cobra.Command, args []string) {
	form, err := loadQuizFile(args[0])
	if err != nil {
		log.Fatalf("load quiz: %v", err)
	}

	result := quiz.ValidateQuiz(form)
	for _, e := range result.Errors {
		fmt.Printf("error: [%s] %s\n", e.Field, e.Message)
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning: [%s] %s\n", w.Field, w.Message)
	}

	status := quiz.QuestionCompletionStatus(form.Questions)
	fmt.Printf("complete questions: %d/%d (%d%%)\n", status.Completed, status.Total, status.Percentage)

	if !result.IsValid {
		os.Exit(1)
	}
	fmt.Printf("%s: valid\n", args[0])
}
