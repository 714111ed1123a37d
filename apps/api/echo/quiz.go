package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/quiz"
)

type quizApi struct {
	svc      *quiz.Service
	validate *validator.Validate
}

func registerQuizAPI(e *echo.Echo, svc *quiz.Service, validate *validator.Validate) {
	api := quizApi{svc: svc, validate: validate}

	e.GET("/quizes", api.query)
	e.POST("/quiz-ai", api.generate)
}

// Handlers

func (api *quizApi) query(ctx echo.Context) error {
	filter := new(quiz.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	quizzes, err := api.svc.Query(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying quizzes")
	}
	return ctx.JSON(http.StatusOK, quizzes)
}

func (api *quizApi) generate(ctx echo.Context) error {
	var data quiz.GenerateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerateRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return quizFailure{err: core.WrapError(err, core.KindInvalidInput, "validating GenerateRequest")}
	}

	set, err := api.svc.Generate(ctx.Request().Context(), data)
	if err != nil {
		return quizFailure{err: errors.Wrap(err, "generating quiz")}
	}
	return ctx.JSON(http.StatusOK, set)
}
