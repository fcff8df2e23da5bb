package question

import (
	"strings"

	"github.com/hvpham/lexiflash/internal/models"
)

// Question is the sealed union of everything the engines can ask. The
// marker method keeps the set closed so transition code can type-switch
// over a known list of variants.
type Question interface {
	isQuestion()
}

// MultipleChoice asks the user to recognize the answer among options.
// CorrectIndex points into Options.
type MultipleChoice struct {
	Title        string      `json:"title"`
	Card         models.Card `json:"card"`
	Options      []string    `json:"options"`
	CorrectIndex int         `json:"correct_index"`
}

// Written asks the user to recall and type the answer.
type Written struct {
	Title  string      `json:"title"`
	Card   models.Card `json:"card"`
	Answer string      `json:"answer"`
}

// TrueFalse shows a proposed answer and asks whether it matches the card.
type TrueFalse struct {
	Title string      `json:"title"`
	Card  models.Card `json:"card"`
	Shown string      `json:"shown"`
	Truth bool        `json:"truth"`
}

func (MultipleChoice) isQuestion() {}
func (Written) isQuestion()        {}
func (TrueFalse) isQuestion()      {}

// Response is a question paired with the user's answer. Correct never
// errors: an absent answer is simply not correct.
type Response interface {
	isResponse()
	Correct() bool
}

// MultipleChoiceResponse carries the selected option index, or -1 when
// the user never picked one.
type MultipleChoiceResponse struct {
	Question      MultipleChoice
	SelectedIndex int
}

func (r MultipleChoiceResponse) Correct() bool {
	return r.SelectedIndex >= 0 && r.SelectedIndex == r.Question.CorrectIndex
}

// WrittenResponse carries the typed answer. Comparison is an exact,
// case-insensitive string match; blank input is incorrect.
type WrittenResponse struct {
	Question Written
	Text     string
}

func (r WrittenResponse) Correct() bool {
	return r.Text != "" && strings.EqualFold(r.Text, r.Question.Answer)
}

// TrueFalseResponse carries the user's verdict, nil when unanswered.
type TrueFalseResponse struct {
	Question TrueFalse
	Answer   *bool
}

func (r TrueFalseResponse) Correct() bool {
	return r.Answer != nil && *r.Answer == r.Question.Truth
}

func (MultipleChoiceResponse) isResponse() {}
func (WrittenResponse) isResponse()        {}
func (TrueFalseResponse) isResponse()      {}
