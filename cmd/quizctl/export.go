package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizforge/quizkit/pkg/qti"
	"github.com/quizforge/quizkit/pkg/quiz"
)

func CommandExport(cmd *cobra.Command, args []string) {
	form, err := loadQuizFile(args[0])
	if err != nil {
		log.Fatalf("load quiz: %v", err)
	}

	q := quiz.NewQuizFromForm(form)
	if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
		q = quiz.NewShuffler().ShuffleQuiz(q)
	}

	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	var data []byte
	switch format {
	case "json":
		s, err := quiz.ExportJSON(q)
		if err != nil {
			log.Fatalf("export json: %v", err)
		}
		data = []byte(s)
	case "csv":
		data = []byte(quiz.ExportCSV(q))
	case "qti":
		if out == "" {
			log.Fatalf("qti export writes a zip package; --out is required")
		}
		data, err = qti.BuildPackage(q)
		if err != nil {
			log.Fatalf("export qti: %v", err)
		}
	default:
		log.Fatalf("unknown format %q (want json, csv, or qti)", format)
	}

	if out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}
}
