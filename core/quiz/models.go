package quiz

import (
	"github.com/go-playground/validator/v10"

	"github.com/studyease/backend/core"
)

const (
	// QuestionsPerSet is the number of questions of a generated QuizSet.
	QuestionsPerSet = 5
	// OptionsPerQuestion is the number of choices of every generated Question.
	OptionsPerQuestion = 4
)

// Question is a multiple-choice question. CorrectAnswer is one of Options.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuizSet is a validated set of exactly QuestionsPerSet generated questions.
type QuizSet struct {
	Quiz []Question `json:"quiz"`
}

// StoredQuiz is a question kept in the quiz bank.
type StoredQuiz struct {
	ID            string   `json:"_id"`
	Subject       string   `json:"subject"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

// QueryFilter selects stored quizzes; empty fields match everything.
type QueryFilter struct {
	Subject    string `query:"subject"`
	Difficulty string `query:"difficulty"`
}

func (qf *QueryFilter) Clean() {
	qf.Subject = core.CleanString(qf.Subject)
	qf.Difficulty = core.CleanString(qf.Difficulty)
}

// GenerateRequest asks for a new QuizSet on a subject.
type GenerateRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required"`
}

func (gr *GenerateRequest) Validate(validate *validator.Validate) error {
	gr.Subject = core.CleanString(gr.Subject)
	gr.Difficulty = core.CleanString(gr.Difficulty)
	return validate.Struct(gr)
}
