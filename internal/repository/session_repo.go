package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phanindra-max/FrameworkLens/internal/model"
)

// SessionRepo handles MongoDB operations for survey sessions.
// Session IDs are UUIDs generated by the service layer, stored as _id.
type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	SetEnded(ctx context.Context, id string, endedAt time.Time) error
	List(ctx context.Context) ([]*model.Session, error)
	ListEnded(ctx context.Context) ([]*model.Session, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) SetEnded(ctx context.Context, id string, endedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"status":  model.SessionEnded,
		"endedAt": endedAt,
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *sessionRepo) List(ctx context.Context) ([]*model.Session, error) {
	return r.find(ctx, bson.M{})
}

func (r *sessionRepo) ListEnded(ctx context.Context) ([]*model.Session, error) {
	return r.find(ctx, bson.M{"status": model.SessionEnded})
}

func (r *sessionRepo) find(ctx context.Context, filter bson.M) ([]*model.Session, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
