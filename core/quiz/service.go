package quiz

import (
	"context"

	"github.com/studyease/backend/core"
)

type (
	// Generator is the generative-text API: it returns the raw text produced for prompt.
	// Implementations own transport concerns (timeouts, credentials) and report their failures
	// as InfrastructureFailure errors.
	Generator interface {
		Generate(ctx context.Context, prompt string) (string, error)
	}

	// Repository is the quiz bank.
	Repository interface {
		QueryQuizzes(ctx context.Context, filter QueryFilter) ([]StoredQuiz, error)
	}

	// Bank is a Repository that can also be filled.
	Bank interface {
		Repository
		CreateQuiz(ctx context.Context, q StoredQuiz) (StoredQuiz, error)
	}

	Service struct {
		repo   Repository
		gen    Generator
		logger core.Logger
	}
)

func NewService(repo Repository, gen Generator, logger core.Logger) *Service {
	return &Service{repo: repo, gen: gen, logger: logger}
}

// Query returns the stored quizzes matching filter.
func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]StoredQuiz, error) {
	filter.Clean()
	quizzes, err := svc.repo.QueryQuizzes(ctx, filter)
	if err != nil {
		return nil, core.WrapError(err, core.KindInfrastructureFailure, "querying quizzes")
	}
	if quizzes == nil {
		quizzes = []StoredQuiz{}
	}
	return quizzes, nil
}

// Generate asks the model for a new QuizSet. The generator is called exactly once;
// its output is validated by ParseQuizSet and every failure comes back classified.
func (svc *Service) Generate(ctx context.Context, req GenerateRequest) (QuizSet, error) {
	prompt, err := BuildPrompt(req.Subject, req.Difficulty)
	if err != nil {
		return QuizSet{}, err
	}

	raw, err := svc.gen.Generate(ctx, prompt)
	if err != nil {
		if core.KindOf(err) == core.KindUnknown {
			err = core.WrapError(err, core.KindInfrastructureFailure, "generating quiz")
		}
		svc.log(err, req)
		return QuizSet{}, err
	}

	set, err := ParseQuizSet(raw)
	if err != nil {
		svc.log(err, req)
		return QuizSet{}, err
	}
	return set, nil
}

func (svc *Service) log(err error, req GenerateRequest) {
	if svc.logger == nil {
		return
	}
	extras := map[string]interface{}{
		"kind":       string(core.KindOf(err)),
		"subject":    req.Subject,
		"difficulty": req.Difficulty,
	}
	if core.IsKind(err, core.KindInfrastructureFailure) {
		svc.logger.Error("quiz generation failed", err, extras)
	} else {
		svc.logger.Warn("quiz generation returned an invalid quiz", err, extras)
	}
}
