package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studyease/backend/core/budget"
)

// budgetDoc keeps the amount in whatever representation it was written with (double, string, decimal...).
type budgetDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	User        string             `bson:"user"`
	Amount      interface{}        `bson:"amount"`
	IncomeType  string             `bson:"incomeType"`
	Category    string             `bson:"category,omitempty"`
	Description string             `bson:"description,omitempty"`
	Date        string             `bson:"date,omitempty"`
}

type budgetRepository struct {
	coll *mongo.Collection
}

var _ budget.Repository = (*budgetRepository)(nil) // interface compliance check

func NewBudgetRepository(db *DB) *budgetRepository {
	return &budgetRepository{coll: db.collection(budgetsCollection)}
}

func (repo budgetRepository) fromDoc(d budgetDoc) budget.Entry {
	return budget.Entry{
		ID:          d.ID.Hex(),
		User:        d.User,
		Amount:      d.Amount,
		IncomeType:  d.IncomeType,
		Category:    d.Category,
		Description: d.Description,
		Date:        d.Date,
	}
}

func (repo budgetRepository) CreateEntry(ctx context.Context, entry budget.Entry) (budget.Entry, error) {
	doc := budgetDoc{
		ID:          primitive.NewObjectID(),
		User:        entry.User,
		Amount:      entry.Amount,
		IncomeType:  entry.IncomeType,
		Category:    entry.Category,
		Description: entry.Description,
		Date:        entry.Date,
	}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return budget.Entry{}, errors.Wrap(err, "inserting budget entry")
	}
	return repo.fromDoc(doc), nil
}

func (repo budgetRepository) QueryEntriesByOwner(ctx context.Context, owner string) ([]budget.Entry, error) {
	cur, err := repo.coll.Find(ctx, bson.M{"user": owner})
	if err != nil {
		return nil, errors.Wrap(err, "finding budget entries")
	}
	var docs []budgetDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding budget entries")
	}

	entries := make([]budget.Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, repo.fromDoc(d))
	}
	return entries, nil
}
