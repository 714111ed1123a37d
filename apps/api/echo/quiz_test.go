package echoapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyease/backend/core/quiz"
)

type quizErr struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

func quizText(t *testing.T, n int) string {
	qs := make([]quiz.Question, n)
	for i := range qs {
		opts := []string{"1", "2", "3", fmt.Sprint(i + 4)}
		qs[i] = quiz.Question{Question: fmt.Sprintf("Q%d?", i), Options: opts, CorrectAnswer: opts[0]}
	}
	data, err := json.Marshal(quiz.QuizSet{Quiz: qs})
	if err != nil {
		t.Fatalf("quizText(): %v", err)
	}
	return string(data)
}

func Test_quizApi_generate(t *testing.T) {
	body := []byte(`{"subject": "Physics", "difficulty": "easy"}`)
	defer func() { gen.text, gen.err = "", nil }()

	t.Run("valid", func(t *testing.T) {
		gen.text, gen.err = "```json\n"+quizText(t, quiz.QuestionsPerSet)+"\n```", nil
		rec := do(http.MethodPost, "/quiz-ai", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var set quiz.QuizSet
		unmarshalObj(t, rec, &set)
		assert.Len(t, set.Quiz, quiz.QuestionsPerSet)
	})

	tests := []struct {
		name     string
		text     string
		err      error
		wantCode int
		wantKind string
	}{
		{name: "four questions", text: quizText(t, 4), wantCode: http.StatusBadGateway, wantKind: "schema_violation"},
		{name: "truncated", text: `{"quiz": [{"question": "Q?"`, wantCode: http.StatusBadGateway, wantKind: "malformed_response"},
		{name: "generator down", err: errors.New("dial tcp: connection refused"), wantCode: http.StatusServiceUnavailable, wantKind: "infrastructure_failure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen.text, gen.err = tt.text, tt.err
			rec := do(http.MethodPost, "/quiz-ai", body)
			assert.Equal(t, tt.wantCode, rec.Code)

			var qErr quizErr
			unmarshalObj(t, rec, &qErr)
			assert.Equal(t, "Failed to generate quiz!", qErr.Error)
			assert.Equal(t, tt.wantKind, qErr.Kind)
			assert.NotEmpty(t, qErr.Detail)
		})
	}

	t.Run("subject required", func(t *testing.T) {
		rec := do(http.MethodPost, "/quiz-ai", []byte(`{"difficulty": "easy"}`))
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": "Failed to generate quiz!", "kind": "invalid_input", "detail": "subject: this field is required"}`),
		}, rec)
	})
}

func Test_quizApi_query(t *testing.T) {
	ctx := context.Background()
	q1, err := quizRepo.CreateQuiz(ctx, quiz.StoredQuiz{Subject: "History", Difficulty: "easy", Question: "Who?"})
	require.NoError(t, err)
	q2, err := quizRepo.CreateQuiz(ctx, quiz.StoredQuiz{Subject: "History", Difficulty: "hard", Question: "When?"})
	require.NoError(t, err)

	runHTTPTests(t, []httpTest{
		{
			name: "by subject", method: http.MethodGet, path: "/quizes?subject=History",
			wantCode: http.StatusOK, wantData: marshalObj(t, []quiz.StoredQuiz{q1, q2}),
		},
		{
			name: "by subject and difficulty", method: http.MethodGet, path: "/quizes?subject=History&difficulty=hard",
			wantCode: http.StatusOK, wantData: marshalObj(t, []quiz.StoredQuiz{q2}),
		},
		{
			name: "no match", method: http.MethodGet, path: "/quizes?subject=Latin",
			wantCode: http.StatusOK, wantData: []byte(`[]`),
		},
	})

	t.Run("unreadable filter", func(t *testing.T) {
		rec := do(http.MethodGet, "/quizes?subject=History", []byte(`{`))
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"error"`)
	})
}
