package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyease/backend/core"
)

func sampleQuestions(n int) []map[string]interface{} {
	qs := make([]map[string]interface{}, n)
	for i := range qs {
		opts := []interface{}{
			fmt.Sprintf("A%d", i), fmt.Sprintf("B%d", i), fmt.Sprintf("C%d", i), fmt.Sprintf("D%d", i),
		}
		qs[i] = map[string]interface{}{
			"question":      fmt.Sprintf("Question %d?", i+1),
			"options":       opts,
			"correctAnswer": opts[i%len(opts)],
		}
	}
	return qs
}

func marshalQuiz(t *testing.T, qs interface{}) string {
	data, err := json.Marshal(map[string]interface{}{"quiz": qs})
	if err != nil {
		t.Fatalf("marshalQuiz() failed: %v", err)
	}
	return string(data)
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: ` {"quiz": []} `, want: `{"quiz": []}`},
		{name: "json fence", raw: "```json\n{\"quiz\": []}\n```", want: `{"quiz": []}`},
		{name: "bare fence", raw: "```\n{\"quiz\": []}\n```", want: `{"quiz": []}`},
		{name: "inline fence", raw: "```json{\"quiz\": []}```", want: `{"quiz": []}`},
		{name: "chatter around fence", raw: "Here you go:\n```json\n{\"quiz\": []}\n```\nEnjoy!", want: `{"quiz": []}`},
		{name: "unterminated fence", raw: "```json\n{\"quiz\": []}", want: `{"quiz": []}`},
		{name: "empty", raw: "  ", want: ""},
		{name: "fence inside a line", raw: "Wrap code in ``` like ```go x```", want: "Wrap code in ``` like ```go x```"},
		{
			name: "backticks inside fenced payload",
			raw:  "```json\n{\"q\": \"use ```go\\nx\\n``` here\"}\n```",
			want: "{\"q\": \"use ```go\\nx\\n``` here\"}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.raw))
		})
	}
}

func TestParseQuizSet_Valid(t *testing.T) {
	raw := marshalQuiz(t, sampleQuestions(QuestionsPerSet))

	const codeQuestion = "What does ```go\nx := 1\n``` declare?"
	withCode := sampleQuestions(QuestionsPerSet)
	withCode[0]["question"] = codeQuestion
	rawCode := marshalQuiz(t, withCode)

	tests := []struct {
		name         string
		text         string
		wantQuestion string
	}{
		{name: "plain", text: raw, wantQuestion: "Question 1?"},
		{name: "fenced", text: "```json\n" + raw + "\n```", wantQuestion: "Question 1?"},
		{name: "plain with backticks in question", text: rawCode, wantQuestion: codeQuestion},
		{name: "fenced with backticks in question", text: "```json\n" + rawCode + "\n```", wantQuestion: codeQuestion},
		{name: "fenced with chatter and backticks", text: "Sure!\n```json\n" + rawCode + "\n```\nGood luck.", wantQuestion: codeQuestion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseQuizSet(tt.text)
			require.NoError(t, err)
			require.Len(t, set.Quiz, QuestionsPerSet)
			assert.Equal(t, tt.wantQuestion, set.Quiz[0].Question)
			for i, q := range set.Quiz[1:] {
				assert.Equal(t, fmt.Sprintf("Question %d?", i+2), q.Question)
			}
			for _, q := range set.Quiz {
				assert.Len(t, q.Options, OptionsPerQuestion)
				assert.Contains(t, q.Options, q.CorrectAnswer)
			}
		})
	}
}

func TestParseQuizSet_Malformed(t *testing.T) {
	valid := marshalQuiz(t, sampleQuestions(QuestionsPerSet))

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "empty fence", raw: "```json\n```"},
		{name: "prose", raw: "Sorry, I cannot help with that."},
		{name: "truncated", raw: valid[:len(valid)/2]},
		{name: "array", raw: `[{"question": "q"}]`},
		{name: "no quiz field", raw: `{"questions": []}`},
		{name: "quiz is object", raw: `{"quiz": {"question": "q"}}`},
		{name: "quiz is string", raw: `{"quiz": "q"}`},
		{name: "quiz is null", raw: `{"quiz": null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseQuizSet(tt.raw)
			assert.True(t, core.IsKind(err, core.KindMalformedResponse), "error = %v", err)
			assert.Empty(t, set.Quiz)
		})
	}
}

func TestParseQuizSet_SchemaViolation(t *testing.T) {
	with := func(idx int, key string, value interface{}) string {
		qs := sampleQuestions(QuestionsPerSet)
		if value == nil {
			delete(qs[idx], key)
		} else {
			qs[idx][key] = value
		}
		return marshalQuiz(t, qs)
	}
	elems := func(items ...interface{}) string { return marshalQuiz(t, items) }

	tests := []struct {
		name      string
		raw       string
		wantIndex int
		wantRule  string
	}{
		{name: "four questions", raw: marshalQuiz(t, sampleQuestions(4)), wantIndex: -1, wantRule: "exactly 5 questions"},
		{name: "six questions", raw: marshalQuiz(t, sampleQuestions(6)), wantIndex: -1, wantRule: "exactly 5 questions"},
		{name: "no questions", raw: `{"quiz": []}`, wantIndex: -1, wantRule: "exactly 5 questions"},
		{name: "question not an object", raw: elems("what?"), wantIndex: 0, wantRule: "not an object"},
		{name: "missing question", raw: with(2, "question", nil), wantIndex: 2, wantRule: `"question" must be a string`},
		{name: "question not a string", raw: with(1, "question", 42), wantIndex: 1, wantRule: `"question" must be a string`},
		{name: "blank question", raw: with(0, "question", "   "), wantIndex: 0, wantRule: `"question" must not be empty`},
		{name: "missing options", raw: with(3, "options", nil), wantIndex: 3, wantRule: `"options" must be an array`},
		{name: "options not strings", raw: with(0, "options", []int{1, 2, 3, 4}), wantIndex: 0, wantRule: `"options" must be an array`},
		{name: "three options", raw: with(4, "options", []string{"A4", "B4", "C4"}), wantIndex: 4, wantRule: "exactly 4 entries"},
		{name: "five options", raw: with(0, "options", []string{"A0", "B0", "C0", "D0", "E0"}), wantIndex: 0, wantRule: "exactly 4 entries"},
		{name: "duplicate options", raw: with(0, "options", []string{"A0", "A0", "C0", "D0"}), wantIndex: 0, wantRule: "distinct"},
		{name: "empty option", raw: with(1, "options", []string{"A1", "", "C1", "D1"}), wantIndex: 1, wantRule: "empty entries"},
		{name: "missing answer", raw: with(2, "correctAnswer", nil), wantIndex: 2, wantRule: `"correctAnswer" must be a string`},
		{name: "answer not a string", raw: with(2, "correctAnswer", 1), wantIndex: 2, wantRule: `"correctAnswer" must be a string`},
		{name: "answer not an option", raw: with(3, "correctAnswer", "Z"), wantIndex: 3, wantRule: "one of the options"},
		{
			name: "element errors come first", raw: elems(sampleQuestions(1)[0], map[string]interface{}{"question": "q"}),
			wantIndex: 1, wantRule: `"options" must be an array`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseQuizSet(tt.raw)
			require.Error(t, err)
			assert.Empty(t, set.Quiz)
			assert.True(t, core.IsKind(err, core.KindSchemaViolation), "error = %v", err)

			var v *Violation
			require.True(t, errors.As(err, &v), "error should wrap a *Violation")
			assert.Equal(t, tt.wantIndex, v.Index)
			assert.True(t, strings.Contains(v.Rule, tt.wantRule), "rule %q should contain %q", v.Rule, tt.wantRule)
		})
	}
}
