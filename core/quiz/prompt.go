package quiz

import (
	"fmt"
	"strings"

	"github.com/studyease/backend/core"
)

const promptTemplate = "Generate exactly %d multiple-choice quiz questions on the subject %q at %q difficulty. " +
	"Each question must have exactly %d distinct options and exactly one correct answer. " +
	"Give different questions and answers every time you are asked for the same subject and difficulty. " +
	`Format the response as a JSON object with a single "quiz" key containing an array of question objects. ` +
	`Each question object must have "question" (a string), "options" (an array of %d strings) ` +
	`and "correctAnswer" (a string equal to one of the options).`

// BuildPrompt returns the instruction sent to the model for subject and difficulty.
// The same input always yields the same prompt.
func BuildPrompt(subject, difficulty string) (string, error) {
	subject = strings.TrimSpace(subject)
	difficulty = strings.TrimSpace(difficulty)
	if subject == "" {
		return "", core.NewError(core.KindInvalidInput, "building quiz prompt", "subject is required")
	}
	if difficulty == "" {
		return "", core.NewError(core.KindInvalidInput, "building quiz prompt", "difficulty is required")
	}
	return fmt.Sprintf(promptTemplate, QuestionsPerSet, subject, difficulty, OptionsPerQuestion, OptionsPerQuestion), nil
}
