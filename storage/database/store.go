package database

import (
	"context"

	"github.com/pkg/errors"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/budget"
	"github.com/studyease/backend/core/planner"
	"github.com/studyease/backend/core/quiz"
	"github.com/studyease/backend/core/schedule"
	inmemdb "github.com/studyease/backend/storage/database/inmem"
	"github.com/studyease/backend/storage/database/mongodb"
)

// Store groups the repositories of the configured driver.
type Store struct {
	Classes schedule.Repository
	Budgets budget.Repository
	Plans   planner.Repository
	Quizzes quiz.Bank

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Open sets up the repositories of conf.Store.Driver.
func Open(conf *core.Config) (*Store, error) {
	switch conf.Store.Driver {
	case core.StoreDriverMemory:
		return OpenInMemory(), nil

	case core.StoreDriverMongo:
		db, err := mongodb.Open(conf)
		if err != nil {
			return nil, err
		}
		return &Store{
			Classes: mongodb.NewClassRepository(db),
			Budgets: mongodb.NewBudgetRepository(db),
			Plans:   mongodb.NewPlanRepository(db),
			Quizzes: mongodb.NewQuizRepository(db),
			ping:    db.Ping,
			close:   db.Close,
		}, nil

	default:
		return nil, errors.Errorf("unknown store driver %q", conf.Store.Driver)
	}
}

// OpenInMemory returns an empty in-memory Store.
func OpenInMemory() *Store {
	db, _ := inmemdb.Open()
	nop := func(context.Context) error { return nil }
	return &Store{
		Classes: inmemdb.NewClassRepository(db),
		Budgets: inmemdb.NewBudgetRepository(db),
		Plans:   inmemdb.NewPlanRepository(db),
		Quizzes: inmemdb.NewQuizRepository(db),
		ping:    nop,
		close:   nop,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return errors.Wrap(s.ping(ctx), "pinging store")
}

func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}
