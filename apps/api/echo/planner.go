package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyease/backend/core/planner"
)

type plannerApi struct {
	svc      *planner.Service
	validate *validator.Validate
}

func registerPlannerAPI(e *echo.Echo, svc *planner.Service, validate *validator.Validate) {
	api := plannerApi{svc: svc, validate: validate}

	e.POST("/plan", api.create)
	e.GET("/plan/:email", api.query)
	e.PUT("/plan", api.updateStatus)
	e.DELETE("/task/:id", api.destroy)
}

// Handlers

func (api *plannerApi) create(ctx echo.Context) error {
	var data planner.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	task, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating task")
	}
	return ctx.JSON(http.StatusCreated, task)
}

func (api *plannerApi) query(ctx echo.Context) error {
	tasks, err := api.svc.Query(ctx.Request().Context(), ctx.Param("email"))
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *plannerApi) updateStatus(ctx echo.Context) error {
	var data planner.UpdateStatus
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStatus")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.UpdateStatus(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "updating task status")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *plannerApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting task")
	}
	return ctx.NoContent(http.StatusNoContent)
}
