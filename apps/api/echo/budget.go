package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyease/backend/core/budget"
)

type budgetApi struct {
	svc      *budget.Service
	validate *validator.Validate
}

func registerBudgetAPI(e *echo.Echo, svc *budget.Service, validate *validator.Validate) {
	api := budgetApi{svc: svc, validate: validate}

	e.POST("/budget", api.create)
	e.GET("/budget/:email", api.query)
	e.GET("/budget-graph/:email", api.summary)
}

// Handlers

func (api *budgetApi) create(ctx echo.Context) error {
	var data budget.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	entry, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating budget entry")
	}
	return ctx.JSON(http.StatusCreated, entry)
}

func (api *budgetApi) query(ctx echo.Context) error {
	entries, err := api.svc.Query(ctx.Request().Context(), ctx.Param("email"))
	if err != nil {
		return errors.Wrap(err, "querying budget entries")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *budgetApi) summary(ctx echo.Context) error {
	sum, err := api.svc.Summarize(ctx.Request().Context(), ctx.Param("email"))
	if err != nil {
		return errors.Wrap(err, "summarizing budget")
	}
	return ctx.JSON(http.StatusOK, sum)
}
