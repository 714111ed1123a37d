package inmemdb

import (
	"context"

	"github.com/studyease/backend/core/budget"
)

type budgetRepository struct {
	db *budgetTable
}

var _ budget.Repository = (*budgetRepository)(nil) // interface compliance check

func NewBudgetRepository(db *DB) budget.Repository {
	return &budgetRepository{db: db.budget}
}

func (repo *budgetRepository) CreateEntry(_ context.Context, entry budget.Entry) (budget.Entry, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	entry.ID = newID()
	repo.db.rows = append(repo.db.rows, &entry)
	return entry, nil
}

func (repo *budgetRepository) QueryEntriesByOwner(_ context.Context, owner string) ([]budget.Entry, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	entries := make([]budget.Entry, 0)
	for _, e := range repo.db.rows {
		if e.User == owner {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}
