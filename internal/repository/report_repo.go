package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phanindra-max/FrameworkLens/internal/model"
)

const summaryID = "latest"

// ReportRepo handles MongoDB operations for cross-session summaries
type ReportRepo interface {
	SaveSummary(ctx context.Context, summary *model.ReadinessSummary) error
	GetSummary(ctx context.Context) (*model.ReadinessSummary, error)
}

type reportRepo struct {
	summaries *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		summaries: db.Collection("summaries"),
	}
}

func (r *reportRepo) SaveSummary(ctx context.Context, summary *model.ReadinessSummary) error {
	summary.ID = summaryID
	opts := options.Replace().SetUpsert(true)
	_, err := r.summaries.ReplaceOne(ctx, bson.M{"_id": summaryID}, summary, opts)
	return err
}

func (r *reportRepo) GetSummary(ctx context.Context) (*model.ReadinessSummary, error) {
	var summary model.ReadinessSummary
	err := r.summaries.FindOne(ctx, bson.M{"_id": summaryID}).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
