package qti

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/quizforge/quizkit/pkg/quiz"
)

// BuildPackage writes a minimal QTI 2.1 content package for q: an IMS
// manifest plus one assessment item per question. multiple_choice and
// true_false become choiceInteraction items, fill_blank becomes a
// textEntryInteraction item.
func BuildPackage(q quiz.Quiz) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	mf := imsManifest{Identifier: q.ID}
	for _, question := range q.Questions {
		itemName := fmt.Sprintf("%s.xml", question.ID)
		mf.Resources = append(mf.Resources, imsResource{
			Identifier: question.ID,
			Type:       "imsqti_item_xmlv2p1",
			Href:       itemName,
			Files:      []imsFile{{Href: itemName}},
		})
		w, err := zw.Create(itemName)
		if err != nil {
			return nil, fmt.Errorf("create item %s: %w", itemName, err)
		}
		if _, err := io.WriteString(w, buildItemXML(question)); err != nil {
			return nil, fmt.Errorf("write item %s: %w", itemName, err)
		}
	}

	mw, err := zw.Create("imsmanifest.xml")
	if err != nil {
		return nil, fmt.Errorf("create manifest: %w", err)
	}
	b, err := xml.MarshalIndent(mf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	if _, err := mw.Write([]byte(xml.Header)); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	if _, err := mw.Write(b); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return buf.Bytes(), nil
}

// --- mini XML model for the manifest (export only) ---

type imsManifest struct {
	XMLName    xml.Name      `xml:"manifest"`
	Identifier string        `xml:"identifier,attr,omitempty"`
	Resources  []imsResource `xml:"resources>resource"`
}

type imsResource struct {
	Identifier string    `xml:"identifier,attr"`
	Type       string    `xml:"type,attr"`
	Href       string    `xml:"href,attr"`
	Files      []imsFile `xml:"file"`
}

type imsFile struct {
	Href string `xml:"href,attr"`
}

func buildItemXML(q quiz.Question) string {
	switch q.Type {
	case quiz.MultipleChoice, quiz.TrueFalse:
		var choices strings.Builder
		var correct strings.Builder
		for _, a := range q.Answers {
			fmt.Fprintf(&choices, `<simpleChoice identifier="%s">%s</simpleChoice>`, a.ID, xmlEscape(a.AnswerText))
			if a.IsCorrect {
				fmt.Fprintf(&correct, "<value>%s</value>", xmlEscape(a.ID))
			}
		}
		return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<assessmentItem identifier="%s" title="%s" xmlns="http://www.imsglobal.org/xsd/imsqti_v2p1">
  <responseDeclaration identifier="RESPONSE" cardinality="single">
    <correctResponse>%s</correctResponse>
  </responseDeclaration>
  <itemBody>
    <p>%s</p>
    <choiceInteraction responseIdentifier="RESPONSE" maxChoices="1">
      %s
    </choiceInteraction>
  </itemBody>
</assessmentItem>`,
			q.ID, q.ID, correct.String(), xmlEscape(q.QuestionText), choices.String())
	default: // fill_blank
		var correct string
		if len(q.Answers) > 0 {
			correct = fmt.Sprintf("<value>%s</value>", xmlEscape(q.Answers[0].AnswerText))
		}
		return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<assessmentItem identifier="%s" title="%s" xmlns="http://www.imsglobal.org/xsd/imsqti_v2p1">
  <responseDeclaration identifier="RESPONSE" cardinality="single">
    <correctResponse>%s</correctResponse>
  </responseDeclaration>
  <itemBody>
    <p>%s</p>
    <textEntryInteraction responseIdentifier="RESPONSE"/>
  </itemBody>
</assessmentItem>`,
			q.ID, q.ID, correct, xmlEscape(q.QuestionText))
	}
}

func xmlEscape(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s)) // cannot fail on a bytes.Buffer
	return b.String()
}
