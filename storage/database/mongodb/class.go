package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/schedule"
)

type classDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	User       string             `bson:"user"`
	Day        string             `bson:"day"`
	StartTime  string             `bson:"startTime"`
	EndTime    string             `bson:"endTime,omitempty"`
	Subject    string             `bson:"subject,omitempty"`
	Instructor string             `bson:"instructor,omitempty"`
	Room       string             `bson:"room,omitempty"`
	Color      string             `bson:"color,omitempty"`
}

type classRepository struct {
	coll *mongo.Collection
}

var _ schedule.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *DB) *classRepository {
	return &classRepository{coll: db.collection(classesCollection)}
}

func (repo classRepository) toDoc(c schedule.Class) classDoc {
	return classDoc{
		User:       c.User,
		Day:        c.Day,
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
		Subject:    c.Subject,
		Instructor: c.Instructor,
		Room:       c.Room,
		Color:      c.Color,
	}
}

func (repo classRepository) fromDoc(d classDoc) schedule.Class {
	return schedule.Class{
		ID:         d.ID.Hex(),
		User:       d.User,
		Day:        d.Day,
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
		Subject:    d.Subject,
		Instructor: d.Instructor,
		Room:       d.Room,
		Color:      d.Color,
	}
}

func (repo classRepository) CreateClass(ctx context.Context, class schedule.Class) (schedule.Class, error) {
	doc := repo.toDoc(class)
	doc.ID = primitive.NewObjectID()
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return schedule.Class{}, errors.Wrap(err, "inserting class")
	}
	return repo.fromDoc(doc), nil
}

// schedulePipeline matches the owner's classes and sorts them by weekday ordinal, then start time.
// _id breaks ties so that equal entries come back in insertion order.
func schedulePipeline(owner string) mongo.Pipeline {
	branches := make(bson.A, 0, len(schedule.Weekdays))
	for _, day := range schedule.Weekdays {
		branches = append(branches, bson.M{
			"case": bson.M{"$eq": bson.A{"$day", day}},
			"then": schedule.DayOrdinal(day),
		})
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": owner}}},
		{{Key: "$addFields", Value: bson.M{
			"dayIndex": bson.M{"$switch": bson.M{"branches": branches, "default": schedule.UnknownDayOrdinal}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "dayIndex", Value: 1},
			{Key: "startTime", Value: 1},
			{Key: "_id", Value: 1},
		}}},
	}
}

func (repo classRepository) QueryClassesByOwner(ctx context.Context, owner string) ([]schedule.Class, error) {
	cur, err := repo.coll.Aggregate(ctx, schedulePipeline(owner))
	if err != nil {
		return nil, errors.Wrap(err, "aggregating classes")
	}
	var docs []classDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decoding classes")
	}

	classes := make([]schedule.Class, 0, len(docs))
	for _, d := range docs {
		classes = append(classes, repo.fromDoc(d))
	}
	return classes, nil
}

func (repo classRepository) UpdateClassTimes(
	ctx context.Context,
	id string,
	upd schedule.UpdateClass,
	opts core.UpdateOptions,
) (core.UpdateResult, error) {
	oid, err := objectID(id, schedule.ErrInvalidID)
	if err != nil {
		return core.UpdateResult{}, err
	}

	set := bson.M{}
	if upd.Day != "" {
		set["day"] = upd.Day
	}
	if upd.StartTime != "" {
		set["startTime"] = upd.StartTime
	}
	if upd.EndTime != "" {
		set["endTime"] = upd.EndTime
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, options.Update().SetUpsert(opts.Upsert))
	if err != nil {
		return core.UpdateResult{}, errors.Wrap(err, "updating class")
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return core.UpdateResult{}, schedule.ErrNotFound
	}
	out := updateResult(res)
	if out.Upserted > 0 && out.UpsertedID == "" {
		out.UpsertedID = id
	}
	return out, nil
}

func (repo classRepository) DeleteClass(ctx context.Context, id string) error {
	oid, err := objectID(id, schedule.ErrInvalidID)
	if err != nil {
		return err
	}
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "deleting class")
	}
	if res.DeletedCount == 0 {
		return schedule.ErrNotFound
	}
	return nil
}
