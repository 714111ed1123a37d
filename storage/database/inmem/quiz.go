package inmemdb

import (
	"context"

	"github.com/studyease/backend/core/quiz"
)

type quizRepository struct {
	db *quizTable
}

var _ quiz.Bank = (*quizRepository)(nil) // interface compliance check

func NewQuizRepository(db *DB) *quizRepository {
	return &quizRepository{db: db.quiz}
}

// CreateQuiz adds a question to the quiz bank.
func (repo *quizRepository) CreateQuiz(_ context.Context, q quiz.StoredQuiz) (quiz.StoredQuiz, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	q.ID = newID()
	repo.db.rows = append(repo.db.rows, &q)
	return q, nil
}

func (repo *quizRepository) QueryQuizzes(_ context.Context, filter quiz.QueryFilter) ([]quiz.StoredQuiz, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	quizzes := make([]quiz.StoredQuiz, 0)
	for _, q := range repo.db.rows {
		if filter.Subject != "" && q.Subject != filter.Subject {
			continue
		}
		if filter.Difficulty != "" && q.Difficulty != filter.Difficulty {
			continue
		}
		quizzes = append(quizzes, *q)
	}
	return quizzes, nil
}
