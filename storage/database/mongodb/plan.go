package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/planner"
)

type planDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	User        string             `bson:"user"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Subject     string             `bson:"subject,omitempty"`
	Priority    string             `bson:"priority,omitempty"`
	Deadline    string             `bson:"deadline,omitempty"`
	Status      string             `bson:"status"`
}

type planRepository struct {
	coll *mongo.Collection
}

var _ planner.Repository = (*planRepository)(nil) // interface compliance check

func NewPlanRepository(db *DB) *planRepository {
	return &planRepository{coll: db.collection(plansCollection)}
}

func (repo planRepository) fromDoc(d planDoc) planner.Task {
	return planner.Task{
		ID:          d.ID.Hex(),
		User:        d.User,
		Title:       d.Title,
		Description: d.Description,
		Subject:     d.Subject,
		Priority:    d.Priority,
		Deadline:    d.Deadline,
		Status:      d.Status,
	}
}

func (repo planRepository) CreateTask(ctx context.Context, task planner.Task) (planner.Task, error) {
	doc := planDoc{
		ID:          primitive.NewObjectID(),
		User:        task.User,
		Title:       task.Title,
		Description: task.Description,
		Subject:     task.Subject,
		Priority:    task.Priority,
		Deadline:    task.Deadline,
		Status:      task.Status,
	}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return planner.Task{}, errors.Wrap(err, "inserting task")
	}
	return repo.fromDoc(doc), nil
}

func (repo planRepository) QueryTasksByOwner(ctx context.Context, owner string) ([]planner.Task, error) {
	cur, err := repo.coll.Find(ctx, bson.M{"user": owner})
	if err != nil {
		return nil, errors.Wrap(err, "finding tasks")
	}
	var docs []planDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding tasks")
	}

	tasks := make([]planner.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, repo.fromDoc(d))
	}
	return tasks, nil
}

func (repo planRepository) UpdateTaskStatus(ctx context.Context, id, status string, opts core.UpdateOptions) (core.UpdateResult, error) {
	oid, err := objectID(id, planner.ErrInvalidID)
	if err != nil {
		return core.UpdateResult{}, err
	}

	res, err := repo.coll.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
		options.Update().SetUpsert(opts.Upsert),
	)
	if err != nil {
		return core.UpdateResult{}, errors.Wrap(err, "updating task status")
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return core.UpdateResult{}, planner.ErrNotFound
	}
	out := updateResult(res)
	if out.Upserted > 0 && out.UpsertedID == "" {
		out.UpsertedID = id
	}
	return out, nil
}

func (repo planRepository) DeleteTask(ctx context.Context, id string) error {
	oid, err := objectID(id, planner.ErrInvalidID)
	if err != nil {
		return err
	}
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "deleting task")
	}
	if res.DeletedCount == 0 {
		return planner.ErrNotFound
	}
	return nil
}
