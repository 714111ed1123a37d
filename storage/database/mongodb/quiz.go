package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studyease/backend/core/quiz"
)

type quizDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Subject       string             `bson:"subject"`
	Difficulty    string             `bson:"difficulty"`
	Question      string             `bson:"question"`
	Options       []string           `bson:"options,omitempty"`
	CorrectAnswer string             `bson:"correctAnswer,omitempty"`
}

type quizRepository struct {
	coll *mongo.Collection
}

var _ quiz.Bank = (*quizRepository)(nil) // interface compliance check

func NewQuizRepository(db *DB) *quizRepository {
	return &quizRepository{coll: db.collection(quizesCollection)}
}

// CreateQuiz adds a question to the quiz bank.
func (repo quizRepository) CreateQuiz(ctx context.Context, q quiz.StoredQuiz) (quiz.StoredQuiz, error) {
	doc := quizDoc{
		ID:            primitive.NewObjectID(),
		Subject:       q.Subject,
		Difficulty:    q.Difficulty,
		Question:      q.Question,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
	}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return quiz.StoredQuiz{}, errors.Wrap(err, "inserting quiz")
	}
	q.ID = doc.ID.Hex()
	return q, nil
}

// quizFilter only constrains the fields that are set.
func quizFilter(filter quiz.QueryFilter) bson.M {
	f := bson.M{}
	if filter.Subject != "" {
		f["subject"] = filter.Subject
	}
	if filter.Difficulty != "" {
		f["difficulty"] = filter.Difficulty
	}
	return f
}

func (repo quizRepository) QueryQuizzes(ctx context.Context, filter quiz.QueryFilter) ([]quiz.StoredQuiz, error) {
	cur, err := repo.coll.Find(ctx, quizFilter(filter))
	if err != nil {
		return nil, errors.Wrap(err, "finding quizzes")
	}
	var docs []quizDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding quizzes")
	}

	quizzes := make([]quiz.StoredQuiz, 0, len(docs))
	for _, d := range docs {
		quizzes = append(quizzes, quiz.StoredQuiz{
			ID:            d.ID.Hex(),
			Subject:       d.Subject,
			Difficulty:    d.Difficulty,
			Question:      d.Question,
			Options:       d.Options,
			CorrectAnswer: d.CorrectAnswer,
		})
	}
	return quizzes, nil
}
