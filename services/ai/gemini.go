package aisvc

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/quiz"
)

const defaultModel = "gemini-2.5-flash"

var errMissingAPIKey = errors.New("gemini API key is required")

// GeminiGenerator generates text with Google's Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ quiz.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a client for the configured model.
// baseURL is optional and overrides the API endpoint.
func NewGeminiGenerator(ctx context.Context, conf core.GenAIConfig, baseURL ...string) (*GeminiGenerator, error) {
	if conf.APIKey == "" {
		return nil, errMissingAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  conf.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if len(baseURL) > 0 && baseURL[0] != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL[0]}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, errors.Wrap(err, "creating genai client")
	}

	model := strings.TrimSpace(conf.Model)
	if model == "" {
		model = defaultModel
	}
	return &GeminiGenerator{client: client, model: model, timeout: conf.Timeout}, nil
}

// Generate sends prompt to the model and returns the text of the first candidate.
// Transport and API failures are InfrastructureFailure errors; an empty answer is a MalformedResponse.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", core.WrapError(err, core.KindInfrastructureFailure, "calling gemini")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", core.NewError(core.KindMalformedResponse, "calling gemini", "model returned no text")
	}
	return text, nil
}

// Model returns the name of the model in use.
func (g *GeminiGenerator) Model() string { return g.model }

// unavailable stands in for a generator that could not be configured.
type unavailable struct {
	reason error
}

// NewUnavailableGenerator returns a Generator failing every call with an InfrastructureFailure
// caused by reason. The rest of the API keeps serving.
func NewUnavailableGenerator(reason error) quiz.Generator {
	return unavailable{reason: reason}
}

func (u unavailable) Generate(context.Context, string) (string, error) {
	return "", core.WrapError(u.reason, core.KindInfrastructureFailure, "calling gemini")
}
