package quiz

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// newID returns "<kind>-<base36 unix millis>-<uuid fragment>". Unique within
// a process run with overwhelming probability, which is all interactive
// authoring needs; no cross-process guarantee is claimed.
func newID(kind string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return fmt.Sprintf("%s-%s-%s", kind, ts, uuid.NewString()[:8])
}

func NewQuizID() string     { return newID("quiz") }
func NewQuestionID() string { return newID("question") }
func NewAnswerID() string   { return newID("answer") }
