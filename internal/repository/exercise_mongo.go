package repository

import (
	"context"
	"fmt"
	"time"

	"exercise_tracker/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type exerciseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

func (d exerciseDoc) toModel() models.Exercise {
	e := models.Exercise{
		Description: d.Description,
		Duration:    d.Duration,
		Date:        models.TruncateToDate(d.Date.UTC()),
	}
	if !d.ID.IsZero() {
		e.ID = d.ID.Hex()
	}
	if !d.UserID.IsZero() {
		e.UserID = d.UserID.Hex()
	}
	return e
}

// ExerciseMongo stores exercises in the "exercises" collection with a BSON date.
type ExerciseMongo struct {
	col *mongo.Collection
}

func NewExerciseMongo(db *mongo.Database) *ExerciseMongo {
	return &ExerciseMongo{col: db.Collection(exercisesCollection)}
}

var _ ExerciseRepo = (*ExerciseMongo)(nil)

func (r *ExerciseMongo) Append(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	uid, err := primitive.ObjectIDFromHex(e.UserID)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("invalid user id %q: %w", e.UserID, err)
	}
	doc := exerciseDoc{
		UserID:      uid,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        models.TruncateToDate(e.Date),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("mongo insert exercise for user %q: %w", e.UserID, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toModel(), nil
}

// logFilter builds the shared query document for List and Count.
func logFilter(userID string, f models.LogFilter) (bson.M, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}
	query := bson.M{"userId": uid}

	dateRange := bson.M{}
	if !f.From.IsZero() {
		dateRange["$gte"] = f.From
	}
	if !f.To.IsZero() {
		dateRange["$lte"] = f.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return query, nil
}

// List returns matching exercises projected to description, duration and date.
func (r *ExerciseMongo) List(ctx context.Context, userID string, f models.LogFilter) ([]models.Exercise, error) {
	query, err := logFilter(userID, f)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetProjection(bson.D{
			{Key: "_id", Value: 0},
			{Key: "description", Value: 1},
			{Key: "duration", Value: 1},
			{Key: "date", Value: 1},
		}).
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find exercises for user %q: %w", userID, err)
	}
	defer cur.Close(ctx)

	var docs []exerciseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode exercises: %w", err)
	}
	out := make([]models.Exercise, 0, len(docs))
	for _, d := range docs {
		e := d.toModel()
		e.UserID = userID
		out = append(out, e)
	}
	return out, nil
}

func (r *ExerciseMongo) Count(ctx context.Context, userID string, f models.LogFilter) (int64, error) {
	query, err := logFilter(userID, f)
	if err != nil {
		return 0, err
	}
	n, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("mongo count exercises for user %q: %w", userID, err)
	}
	return n, nil
}
