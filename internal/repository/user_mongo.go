package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"exercise_tracker/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
}

func (d userDoc) toModel() models.User {
	return models.User{ID: d.ID.Hex(), Username: d.Username}
}

// UserMongo stores users in the "users" collection.
type UserMongo struct {
	col *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{col: db.Collection(usersCollection)}
}

var _ UserRepo = (*UserMongo)(nil)

func (r *UserMongo) Create(ctx context.Context, username string) (models.User, error) {
	doc := userDoc{Username: username, CreatedAt: time.Now().UTC()}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return models.User{}, fmt.Errorf("mongo insert user %q: %w", username, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.User{}, fmt.Errorf("mongo insert user %q: unexpected id type %T", username, res.InsertedID)
	}
	doc.ID = oid
	return doc.toModel(), nil
}

// GetByID returns (nil, nil) for unknown or malformed ids.
func (r *UserMongo) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("mongo find user %q: %w", id, err)
	}
	u := doc.toModel()
	return &u, nil
}

// List returns every user projected to id and username, in natural order.
func (r *UserMongo) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "username", Value: 1}})
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode users: %w", err)
	}
	out := make([]models.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}
