package planner

import (
	"context"

	"github.com/pkg/errors"

	"github.com/studyease/backend/core"
)

// StatusTodo is given to new tasks created without a status.
const StatusTodo = "todo"

var (
	// errors
	ErrNotFound      = core.NewError(core.KindNotFound, "planner", "task not found")
	ErrInvalidID     = core.NewError(core.KindInvalidInput, "planner", "invalid task id")
	ErrOwnerRequired = core.NewError(core.KindInvalidInput, "planner", "owner email is required")
)

type (
	Repository interface {
		CreateTask(ctx context.Context, task Task) (Task, error)
		QueryTasksByOwner(ctx context.Context, owner string) ([]Task, error)
		UpdateTaskStatus(ctx context.Context, id, status string, opts core.UpdateOptions) (core.UpdateResult, error)
		DeleteTask(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
		opts core.UpdateOptions
	}
)

func NewService(repo Repository, opts core.UpdateOptions) *Service {
	return &Service{repo: repo, opts: opts}
}

func (svc *Service) Create(ctx context.Context, nt NewTask) (Task, error) {
	task := Task{
		User:        nt.User,
		Title:       nt.Title,
		Description: nt.Description,
		Subject:     nt.Subject,
		Priority:    nt.Priority,
		Deadline:    nt.Deadline,
		Status:      nt.Status,
	}
	if task.Status == "" {
		task.Status = StatusTodo
	}
	task, err := svc.repo.CreateTask(ctx, task)
	if err != nil {
		return Task{}, errors.Wrap(err, "creating task")
	}
	return task, nil
}

func (svc *Service) Query(ctx context.Context, owner string) ([]Task, error) {
	owner = core.CleanString(owner)
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	tasks, err := svc.repo.QueryTasksByOwner(ctx, owner)
	if err != nil {
		return nil, core.WrapError(err, core.KindInfrastructureFailure, "querying tasks")
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func (svc *Service) UpdateStatus(ctx context.Context, us UpdateStatus) (core.UpdateResult, error) {
	res, err := svc.repo.UpdateTaskStatus(ctx, us.ID, us.Value, svc.opts)
	if err != nil {
		return core.UpdateResult{}, errors.Wrap(err, "updating task status")
	}
	return res, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(svc.repo.DeleteTask(ctx, id), "deleting task")
}
