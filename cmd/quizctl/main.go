package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

const version = "v0.3"

func main() {
	log.SetFlags(0)

	cmdQuizctl := &cobra.Command{
		Use:   "quizctl",
		Short: "command-line companion for the quizkit engine",
		Long: "Validate, score, and export quizzes authored as YAML or JSON files.\n" +
			"quizctl is a thin consumer of the quizkit library; everything it does\n" +
			"is available in-process to embedding applications.",
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "print the version number of quizctl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("quizctl " + version)
		},
	}
	cmdQuizctl.AddCommand(cmdVersion)

	cmdValidate := &cobra.Command{
		Use:   "validate <quiz-file>",
		Short: "check a quiz file and report every error and warning",
		Args:  cobra.ExactArgs(1),
		Run:   CommandValidate,
	}
	cmdQuizctl.AddCommand(cmdValidate)

	cmdScore := &cobra.Command{
		Use:   "score <quiz-file> <answers-file>",
		Short: "score a JSON answers file against a quiz",
		Long: "   The answers file is a JSON object mapping question IDs to the list\n" +
			"   of submitted answer IDs (or, for fill-in-the-blank questions, the\n" +
			"   submitted text). Unanswered questions score zero.",
		Args: cobra.ExactArgs(2),
		Run:  CommandScore,
	}
	cmdQuizctl.AddCommand(cmdScore)

	cmdExport := &cobra.Command{
		Use:   "export <quiz-file>",
		Short: "export a quiz as JSON, CSV, or a QTI package",
		Args:  cobra.ExactArgs(1),
		Run:   CommandExport,
	}
	cmdExport.Flags().StringP("format", "f", "json", "export format: json, csv, or qti")
	cmdExport.Flags().StringP("out", "o", "", "output file (default stdout; required for qti)")
	cmdExport.Flags().Bool("shuffle", false, "apply the quiz's shuffle settings before exporting")
	cmdQuizctl.AddCommand(cmdExport)

	cmdQuizctl.Execute()
}
