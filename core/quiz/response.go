package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/studyease/backend/core"
)

const (
	codeFence = "```"
	parseOp   = "parsing quiz response"
)

// Violation describes the first rule broken by a parsed quiz.
// Index is the position of the offending question, or -1 when the set as a whole is at fault.
type Violation struct {
	Index int
	Rule  string
}

func (v *Violation) Error() string {
	if v.Index < 0 {
		return v.Rule
	}
	return fmt.Sprintf("quiz[%d]: %s", v.Index, v.Rule)
}

func violation(idx int, format string, args ...interface{}) error {
	v := &Violation{Index: idx, Rule: fmt.Sprintf(format, args...)}
	return &core.Error{Kind: core.KindSchemaViolation, Op: parseOp, Detail: v.Error(), Err: v}
}

func malformed(format string, args ...interface{}) error {
	return core.NewErrorf(core.KindMalformedResponse, parseOp, format, args...)
}

// StripCodeFences removes a markdown code fence (```json ... ```) wrapped around raw.
// A fence only counts when it opens the text or starts a line, so backticks inside
// the payload are left alone. Text without fences is only trimmed.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	start := -1
	if strings.HasPrefix(s, codeFence) {
		start = 0
	} else if i := strings.Index(s, "\n"+codeFence); i >= 0 {
		start = i + 1
	}
	if start < 0 {
		return s
	}

	body := s[start+len(codeFence):]
	// drop the info string of the opening fence, e.g. "json"
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.ContainsAny(body[:nl], "{[") {
		body = body[nl+1:]
	} else {
		body = strings.TrimLeftFunc(body, unicode.IsLetter)
	}
	body = strings.TrimSpace(body)
	// the closing fence either ends the text or is followed by prose on its own lines
	if strings.HasSuffix(body, codeFence) {
		body = body[:len(body)-len(codeFence)]
	} else if end := strings.LastIndex(body, "\n"+codeFence); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// ParseQuizSet turns the raw model output into a validated QuizSet.
//
// Text that is already valid JSON is parsed as is; otherwise code fences are stripped first.
// It fails with a MalformedResponse error when the resulting text is not a JSON object
// holding a "quiz" array, and with a SchemaViolation error (wrapping a *Violation) on the first
// invalid question or when the array does not hold exactly QuestionsPerSet questions.
// No partial QuizSet is ever returned.
func ParseQuizSet(raw string) (QuizSet, error) {
	text := strings.TrimSpace(raw)
	if !json.Valid([]byte(text)) {
		text = StripCodeFences(text)
	}
	if text == "" {
		return QuizSet{}, malformed("empty response")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return QuizSet{}, malformed("response is not a JSON object: %v", err)
	}
	rawQuiz, ok := envelope["quiz"]
	if !ok {
		return QuizSet{}, malformed(`response has no "quiz" field`)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(rawQuiz, &items); err != nil || items == nil {
		return QuizSet{}, malformed(`"quiz" field is not an array`)
	}

	questions := make([]Question, 0, len(items))
	for i, item := range items {
		q, err := parseQuestion(i, item)
		if err != nil {
			return QuizSet{}, err
		}
		questions = append(questions, q)
	}

	if len(questions) != QuestionsPerSet {
		return QuizSet{}, violation(-1, "quiz must contain exactly %d questions (got %d)", QuestionsPerSet, len(questions))
	}
	return QuizSet{Quiz: questions}, nil
}

func parseQuestion(idx int, raw json.RawMessage) (Question, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Question{}, violation(idx, "question is not an object")
	}

	var q Question
	if err := unmarshalField(fields, "question", &q.Question); err != nil {
		return Question{}, violation(idx, `"question" must be a string`)
	}
	if strings.TrimSpace(q.Question) == "" {
		return Question{}, violation(idx, `"question" must not be empty`)
	}

	if err := unmarshalField(fields, "options", &q.Options); err != nil {
		return Question{}, violation(idx, `"options" must be an array of strings`)
	}
	if len(q.Options) != OptionsPerQuestion {
		return Question{}, violation(idx, `"options" must contain exactly %d entries (got %d)`, OptionsPerQuestion, len(q.Options))
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return Question{}, violation(idx, `"options" must not contain empty entries`)
		}
		if _, dup := seen[opt]; dup {
			return Question{}, violation(idx, `"options" must be distinct (%q repeated)`, opt)
		}
		seen[opt] = struct{}{}
	}

	if err := unmarshalField(fields, "correctAnswer", &q.CorrectAnswer); err != nil {
		return Question{}, violation(idx, `"correctAnswer" must be a string`)
	}
	if _, ok := seen[q.CorrectAnswer]; !ok {
		return Question{}, violation(idx, `"correctAnswer" must be one of the options`)
	}
	return q, nil
}

// unmarshalField decodes fields[name] into v; a missing or null field is an error.
func unmarshalField(fields map[string]json.RawMessage, name string, v interface{}) error {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return fmt.Errorf("missing %q", name)
	}
	return json.Unmarshal(raw, v)
}
