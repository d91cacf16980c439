package quiz_test

import (
	"testing"

	"github.com/quizforge/quizkit/pkg/quiz"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{59, "0:59"},
		{60, "1:00"},
		{90, "1:30"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{7322, "2:02:02"},
		{36000, "10:00:00"},
	}
	for _, c := range cases {
		if got := quiz.FormatTime(c.seconds); got != c.want {
			t.Errorf("FormatTime(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestParseTimeLimit(t *testing.T) {
	if got := quiz.ParseTimeLimit(10); got != 600 {
		t.Fatalf("ParseTimeLimit(10) = %d, want 600", got)
	}
	if got := quiz.ParseTimeLimit(0); got != 0 {
		t.Fatalf("ParseTimeLimit(0) = %d, want 0", got)
	}
}
