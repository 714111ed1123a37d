package schedule

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/studyease/backend/core"
)

var (
	// errors
	ErrNotFound      = core.NewError(core.KindNotFound, "schedule", "class not found")
	ErrInvalidID     = core.NewError(core.KindInvalidInput, "schedule", "invalid class id")
	ErrEmptyUpdate   = core.NewError(core.KindInvalidInput, "schedule", "one of day, startTime or endTime is required")
	ErrOwnerRequired = core.NewError(core.KindInvalidInput, "schedule", "owner email is required")
)

type (
	// Repository is the document store holding class entries.
	Repository interface {
		CreateClass(ctx context.Context, class Class) (Class, error)
		// QueryClassesByOwner returns the owner's classes. Stores may pre-sort them by
		// (DayOrdinal, StartTime); ties must keep the store's natural order.
		QueryClassesByOwner(ctx context.Context, owner string) ([]Class, error)
		UpdateClassTimes(ctx context.Context, id string, upd UpdateClass, opts core.UpdateOptions) (core.UpdateResult, error)
		DeleteClass(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
		opts core.UpdateOptions
	}
)

func NewService(repo Repository, opts core.UpdateOptions) *Service {
	return &Service{repo: repo, opts: opts}
}

func (svc *Service) Create(ctx context.Context, nc NewClass) (Class, error) {
	class := Class{
		User:       nc.User,
		Day:        nc.Day,
		StartTime:  nc.StartTime,
		EndTime:    nc.EndTime,
		Subject:    nc.Subject,
		Instructor: nc.Instructor,
		Room:       nc.Room,
		Color:      nc.Color,
	}
	class, err := svc.repo.CreateClass(ctx, class)
	if err != nil {
		return Class{}, errors.Wrap(err, "creating class")
	}
	return class, nil
}

// View returns the owner's weekly schedule ordered by weekday, then by start time.
// It is recomputed from the store on every call; an owner without classes gets an empty slice.
func (svc *Service) View(ctx context.Context, owner string) ([]Class, error) {
	owner = core.CleanString(owner)
	if owner == "" {
		return nil, ErrOwnerRequired
	}

	classes, err := svc.repo.QueryClassesByOwner(ctx, owner)
	if err != nil {
		return nil, core.WrapError(err, core.KindInfrastructureFailure, "querying classes")
	}
	if classes == nil {
		classes = []Class{}
	}
	SortClasses(classes)
	return classes, nil
}

func (svc *Service) Reschedule(ctx context.Context, id string, uc UpdateClass) (core.UpdateResult, error) {
	if uc.Day == "" && uc.StartTime == "" && uc.EndTime == "" {
		return core.UpdateResult{}, ErrEmptyUpdate
	}
	res, err := svc.repo.UpdateClassTimes(ctx, id, uc, svc.opts)
	if err != nil {
		return core.UpdateResult{}, errors.Wrap(err, "updating class")
	}
	return res, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(svc.repo.DeleteClass(ctx, id), "deleting class")
}

// SortClasses orders classes by (DayOrdinal(Day), StartTime) ascending.
// The sort is stable: entries with the same day and start time keep their relative order.
func SortClasses(classes []Class) {
	sort.SliceStable(classes, func(i, j int) bool {
		oi, oj := DayOrdinal(classes[i].Day), DayOrdinal(classes[j].Day)
		if oi != oj {
			return oi < oj
		}
		return classes[i].StartTime < classes[j].StartTime
	})
}
