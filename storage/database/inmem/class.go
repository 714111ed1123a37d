package inmemdb

import (
	"context"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/schedule"
)

type classRepository struct {
	db *classTable
}

var _ schedule.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *DB) schedule.Repository {
	return &classRepository{db: db.class}
}

func (repo *classRepository) find(id string) (int, *schedule.Class) {
	for i, c := range repo.db.rows {
		if c.ID == id {
			return i, c
		}
	}
	return -1, nil
}

func (repo *classRepository) CreateClass(_ context.Context, class schedule.Class) (schedule.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	class.ID = newID()
	repo.db.rows = append(repo.db.rows, &class)
	return class, nil
}

func (repo *classRepository) QueryClassesByOwner(_ context.Context, owner string) ([]schedule.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	classes := make([]schedule.Class, 0)
	for _, c := range repo.db.rows {
		if c.User == owner {
			classes = append(classes, *c)
		}
	}
	return classes, nil
}

func (repo *classRepository) UpdateClassTimes(
	_ context.Context,
	id string,
	upd schedule.UpdateClass,
	opts core.UpdateOptions,
) (core.UpdateResult, error) {
	if !validID(id) {
		return core.UpdateResult{}, schedule.ErrInvalidID
	}

	repo.db.Lock()
	defer repo.db.Unlock()

	_, class := repo.find(id)
	if class == nil {
		if !opts.Upsert {
			return core.UpdateResult{}, schedule.ErrNotFound
		}
		class = &schedule.Class{ID: id}
		setClassTimes(class, upd)
		repo.db.rows = append(repo.db.rows, class)
		return core.UpdateResult{Upserted: 1, UpsertedID: id}, nil
	}

	res := core.UpdateResult{Matched: 1}
	if setClassTimes(class, upd) {
		res.Modified = 1
	}
	return res, nil
}

// setClassTimes only writes the provided fields and reports whether anything changed.
func setClassTimes(class *schedule.Class, upd schedule.UpdateClass) bool {
	orig := *class
	if upd.Day != "" {
		class.Day = upd.Day
	}
	if upd.StartTime != "" {
		class.StartTime = upd.StartTime
	}
	if upd.EndTime != "" {
		class.EndTime = upd.EndTime
	}
	return orig != *class
}

func (repo *classRepository) DeleteClass(_ context.Context, id string) error {
	if !validID(id) {
		return schedule.ErrInvalidID
	}

	repo.db.Lock()
	defer repo.db.Unlock()

	idx, _ := repo.find(id)
	if idx < 0 {
		return schedule.ErrNotFound
	}
	repo.db.rows = append(repo.db.rows[:idx], repo.db.rows[idx+1:]...)
	return nil
}
