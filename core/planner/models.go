package planner

import (
	"github.com/go-playground/validator/v10"

	"github.com/studyease/backend/core"
)

// Task is a study-plan task.
type Task struct {
	ID          string `json:"_id"`
	User        string `json:"user"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Status      string `json:"status"`
}

// NewTask contains information needed to add a Task to a study plan.
type NewTask struct {
	User        string `json:"user" validate:"required,email"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
}

func (nt *NewTask) Validate(validate *validator.Validate) error {
	nt.User = core.CleanString(nt.User)
	nt.Title = core.CleanString(nt.Title)
	nt.Status = core.CleanString(nt.Status)
	return validate.Struct(nt)
}

// UpdateStatus moves a Task to another progress status.
type UpdateStatus struct {
	ID    string `json:"id" validate:"required"`
	Value string `json:"value" validate:"required"`
}

func (us *UpdateStatus) Validate(validate *validator.Validate) error {
	us.ID = core.CleanString(us.ID)
	us.Value = core.CleanString(us.Value)
	return validate.Struct(us)
}
