package qti_test

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/quizforge/quizkit/pkg/qti"
	"github.com/quizforge/quizkit/pkg/quiz"
)

func packageQuiz() quiz.Quiz {
	return quiz.Quiz{
		ID:    "quiz-geo",
		Title: "Geography",
		Questions: []quiz.Question{
			{
				ID: "q1", QuestionText: "Capital of France?", Type: quiz.MultipleChoice, Points: 5,
				Answers: []quiz.Answer{
					{ID: "c1", AnswerText: "Paris", IsCorrect: true},
					{ID: "c2", AnswerText: "Lyon"},
				},
			},
			{
				ID: "q2", QuestionText: "Largest planet?", Type: quiz.FillBlank, Points: 5,
				Answers: []quiz.Answer{{ID: "c3", AnswerText: "Jupiter"}},
			},
		},
		TotalPoints: 10,
	}
}

func readEntry(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(b)
	}
	t.Fatalf("entry %s not in package", name)
	return ""
}

func TestBuildPackage(t *testing.T) {
	data, err := qti.BuildPackage(packageQuiz())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("package is not a zip: %v", err)
	}
	if len(zr.File) != 3 {
		t.Fatalf("expected manifest + 2 items, got %d entries", len(zr.File))
	}

	manifest := readEntry(t, zr, "imsmanifest.xml")
	if !strings.Contains(manifest, `type="imsqti_item_xmlv2p1"`) {
		t.Fatalf("manifest missing item resource type:\n%s", manifest)
	}
	if !strings.Contains(manifest, `href="q1.xml"`) || !strings.Contains(manifest, `href="q2.xml"`) {
		t.Fatalf("manifest missing item hrefs:\n%s", manifest)
	}

	choice := readEntry(t, zr, "q1.xml")
	if !strings.Contains(choice, "<choiceInteraction") {
		t.Fatalf("choice item missing interaction:\n%s", choice)
	}
	if !strings.Contains(choice, "<value>c1</value>") {
		t.Fatalf("choice item missing correct response:\n%s", choice)
	}
	if strings.Contains(choice, "<value>c2</value>") {
		t.Fatalf("incorrect choice listed as correct:\n%s", choice)
	}

	text := readEntry(t, zr, "q2.xml")
	if !strings.Contains(text, "<textEntryInteraction") {
		t.Fatalf("fill-blank item missing interaction:\n%s", text)
	}
	if !strings.Contains(text, "<value>Jupiter</value>") {
		t.Fatalf("fill-blank item missing reference answer:\n%s", text)
	}
}

func TestBuildPackage_EscapesText(t *testing.T) {
	q := packageQuiz()
	q.Questions[0].QuestionText = "Is 1 < 2 & 3 > 2?"
	data, err := qti.BuildPackage(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zr, _ := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	item := readEntry(t, zr, "q1.xml")
	if !strings.Contains(item, "Is 1 &lt; 2 &amp; 3 &gt; 2?") {
		t.Fatalf("prompt not escaped:\n%s", item)
	}
}
