package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phanindra-max/FrameworkLens/internal/model"
)

// AnswerRepo handles MongoDB operations for answers. Upsert keeps the
// one-answer-per-question invariant in storage so a rehydrated session
// matches the in-memory collector.
type AnswerRepo interface {
	Upsert(ctx context.Context, answer *model.Answer) error
	GetBySessionID(ctx context.Context, sessionID string) ([]*model.Answer, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("answers"),
	}
}

func (r *answerRepo) Upsert(ctx context.Context, answer *model.Answer) error {
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now()
	}

	filter := bson.M{
		"sessionId":  answer.SessionID,
		"questionId": answer.QuestionID,
	}
	update := bson.M{"$set": bson.M{
		"sessionId":     answer.SessionID,
		"questionId":    answer.QuestionID,
		"value":         answer.Value,
		"notApplicable": answer.NotApplicable,
		"answeredAt":    answer.AnsweredAt,
	}}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *answerRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.Answer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []*model.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"sessionId": sessionID})
	return err
}
