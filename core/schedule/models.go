package schedule

import (
	"github.com/go-playground/validator/v10"

	"github.com/studyease/backend/core"
)

// Class is a weekly class entry of a user's timetable.
// StartTime and EndTime are 24-hour zero-padded "HH:MM" strings so that they sort lexically.
type Class struct {
	ID         string `json:"_id"`
	User       string `json:"user"`
	Day        string `json:"day"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Subject    string `json:"subject,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	Room       string `json:"room,omitempty"`
	Color      string `json:"color,omitempty"`
}

// NewClass contains information needed to create a new Class.
type NewClass struct {
	User       string `json:"user" validate:"required,email"`
	Day        string `json:"day" validate:"required"`
	StartTime  string `json:"startTime" validate:"required,clock"`
	EndTime    string `json:"endTime" validate:"omitempty,clock"`
	Subject    string `json:"subject"`
	Instructor string `json:"instructor"`
	Room       string `json:"room"`
	Color      string `json:"color"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.User = core.CleanString(nc.User)
	nc.Day = core.CleanString(nc.Day)
	nc.StartTime = core.CleanString(nc.StartTime)
	nc.EndTime = core.CleanString(nc.EndTime)
	nc.Subject = core.CleanString(nc.Subject)
	return validate.Struct(nc)
}

// UpdateClass defines what information may be provided to move an existing Class.
// Only day, startTime and endTime are ever written.
type UpdateClass struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime" validate:"omitempty,clock"`
	EndTime   string `json:"endTime" validate:"omitempty,clock"`
}

func (uc *UpdateClass) Validate(validate *validator.Validate) error {
	uc.Day = core.CleanString(uc.Day)
	uc.StartTime = core.CleanString(uc.StartTime)
	uc.EndTime = core.CleanString(uc.EndTime)
	return validate.Struct(uc)
}
