package inmemdb

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studyease/backend/core/budget"
	"github.com/studyease/backend/core/planner"
	"github.com/studyease/backend/core/quiz"
	"github.com/studyease/backend/core/schedule"
)

// Tables keep documents in insertion order, which is their natural retrieval order.
type (
	DB struct {
		class  *classTable
		budget *budgetTable
		plan   *planTable
		quiz   *quizTable
	}

	classTable struct {
		sync.RWMutex
		rows []*schedule.Class
	}

	budgetTable struct {
		sync.RWMutex
		rows []*budget.Entry
	}

	planTable struct {
		sync.RWMutex
		rows []*planner.Task
	}

	quizTable struct {
		sync.RWMutex
		rows []*quiz.StoredQuiz
	}
)

func Open() (*DB, error) {
	db := &DB{
		class:  &classTable{},
		budget: &budgetTable{},
		plan:   &planTable{},
		quiz:   &quizTable{},
	}
	return db, nil
}

// newID returns identifiers in the same format as the mongodb store.
func newID() string {
	return primitive.NewObjectID().Hex()
}

func validID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
