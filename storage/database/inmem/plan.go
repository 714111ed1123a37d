package inmemdb

import (
	"context"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/planner"
)

type planRepository struct {
	db *planTable
}

var _ planner.Repository = (*planRepository)(nil) // interface compliance check

func NewPlanRepository(db *DB) planner.Repository {
	return &planRepository{db: db.plan}
}

func (repo *planRepository) find(id string) (int, *planner.Task) {
	for i, t := range repo.db.rows {
		if t.ID == id {
			return i, t
		}
	}
	return -1, nil
}

func (repo *planRepository) CreateTask(_ context.Context, task planner.Task) (planner.Task, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	task.ID = newID()
	repo.db.rows = append(repo.db.rows, &task)
	return task, nil
}

func (repo *planRepository) QueryTasksByOwner(_ context.Context, owner string) ([]planner.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	tasks := make([]planner.Task, 0)
	for _, t := range repo.db.rows {
		if t.User == owner {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

func (repo *planRepository) UpdateTaskStatus(_ context.Context, id, status string, opts core.UpdateOptions) (core.UpdateResult, error) {
	if !validID(id) {
		return core.UpdateResult{}, planner.ErrInvalidID
	}

	repo.db.Lock()
	defer repo.db.Unlock()

	_, task := repo.find(id)
	if task == nil {
		if !opts.Upsert {
			return core.UpdateResult{}, planner.ErrNotFound
		}
		repo.db.rows = append(repo.db.rows, &planner.Task{ID: id, Status: status})
		return core.UpdateResult{Upserted: 1, UpsertedID: id}, nil
	}

	res := core.UpdateResult{Matched: 1}
	if task.Status != status {
		task.Status = status
		res.Modified = 1
	}
	return res, nil
}

func (repo *planRepository) DeleteTask(_ context.Context, id string) error {
	if !validID(id) {
		return planner.ErrInvalidID
	}

	repo.db.Lock()
	defer repo.db.Unlock()

	idx, _ := repo.find(id)
	if idx < 0 {
		return planner.ErrNotFound
	}
	repo.db.rows = append(repo.db.rows[:idx], repo.db.rows[idx+1:]...)
	return nil
}
