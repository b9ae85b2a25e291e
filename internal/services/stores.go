package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ideapulse/idea-feedback-backend/internal/models"
)

// IdeaStore and FeedbackStore are the persistence contracts the services
// run against, implemented by the repository package.

type IdeaStore interface {
	Create(ctx context.Context, idea models.Idea) (models.Idea, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Idea, error)
	PaginatedPublic(ctx context.Context, page, limit int) (models.IdeaPage, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (bool, error)
	SetAggregates(ctx context.Context, id primitive.ObjectID, avgRating float64, responseCount int64) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type FeedbackStore interface {
	Create(ctx context.Context, fb models.Feedback) (models.Feedback, error)
	FindByIdeaID(ctx context.Context, ideaID primitive.ObjectID) ([]models.Feedback, error)
	DeleteByIdeaID(ctx context.Context, ideaID primitive.ObjectID) (int64, error)
	Stats(ctx context.Context, ideaID primitive.ObjectID) (models.FeedbackStats, error)
	TimeSeries(ctx context.Context, ideaID primitive.ObjectID) ([]models.DayBucket, error)
}

// parseIdeaID converts a path parameter into an ObjectID.
func parseIdeaID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &ValidationError{Reason: "invalid idea ID"}
	}
	return oid, nil
}
