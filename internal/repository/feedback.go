package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ideapulse/idea-feedback-backend/internal/database"
	"github.com/ideapulse/idea-feedback-backend/internal/models"
	"github.com/ideapulse/idea-feedback-backend/internal/sentiment"
)

type FeedbackRepository struct {
	col *mongo.Collection
}

func NewFeedbackRepository(db *database.DB) *FeedbackRepository {
	return &FeedbackRepository{col: db.Collection("feedback")}
}

func (r *FeedbackRepository) Create(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	res, err := r.col.InsertOne(ctx, fb)
	if err != nil {
		return models.Feedback{}, err
	}
	fb.ID = res.InsertedID.(primitive.ObjectID)
	return fb, nil
}

func (r *FeedbackRepository) FindByIdeaID(ctx context.Context, ideaID primitive.ObjectID) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"ideaId": ideaID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.Feedback
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByIdeaID removes every feedback row for the idea and returns how many
// were deleted. Used only by the idea cascade delete.
func (r *FeedbackRepository) DeleteByIdeaID(ctx context.Context, ideaID primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"ideaId": ideaID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// statsResult matches the $facet output, where every facet is an array.
type statsResult struct {
	AvgRating []struct {
		Avg float64 `bson:"avg"`
	} `bson:"avgRating"`
	RatingDistribution []models.RatingBucket    `bson:"ratingDistribution"`
	SentimentBreakdown []models.SentimentBucket `bson:"sentimentBreakdown"`
	TotalCount         []struct {
		Count int64 `bson:"count"`
	} `bson:"totalCount"`
	Suggestions []models.Suggestion `bson:"suggestions"`
}

// Stats computes all per-idea aggregates in one pipeline pass: running
// average, rating histogram (ascending, zero-count values omitted), sentiment
// histogram (zero-filled to all three labels), total count, and the 10 newest
// non-empty comments.
func (r *FeedbackRepository) Stats(ctx context.Context, ideaID primitive.ObjectID) (models.FeedbackStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ideaId": ideaID}}},
		{{Key: "$facet", Value: bson.M{
			"avgRating": bson.A{
				bson.M{"$group": bson.M{"_id": nil, "avg": bson.M{"$avg": "$rating"}}},
			},
			"ratingDistribution": bson.A{
				bson.M{"$group": bson.M{"_id": "$rating", "count": bson.M{"$sum": 1}}},
				bson.M{"$sort": bson.M{"_id": 1}},
			},
			"sentimentBreakdown": bson.A{
				bson.M{"$group": bson.M{"_id": "$sentiment", "count": bson.M{"$sum": 1}}},
			},
			"totalCount": bson.A{
				bson.M{"$count": "count"},
			},
			"suggestions": bson.A{
				bson.M{"$match": bson.M{"feedback": bson.M{"$exists": true, "$nin": bson.A{nil, ""}}}},
				bson.M{"$sort": bson.M{"createdAt": -1}},
				bson.M{"$limit": 10},
				bson.M{"$project": bson.M{"feedback": 1, "rating": 1, "createdAt": 1}},
			},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return models.FeedbackStats{}, err
	}
	defer cursor.Close(ctx)

	var results []statsResult
	if err := cursor.All(ctx, &results); err != nil {
		return models.FeedbackStats{}, err
	}

	stats := models.FeedbackStats{
		RatingDistribution: []models.RatingBucket{},
		Suggestions:        []models.Suggestion{},
	}
	if len(results) > 0 {
		res := results[0]
		if len(res.AvgRating) > 0 {
			stats.AvgRating = res.AvgRating[0].Avg
		}
		if len(res.TotalCount) > 0 {
			stats.TotalFeedback = res.TotalCount[0].Count
		}
		if res.RatingDistribution != nil {
			stats.RatingDistribution = res.RatingDistribution
		}
		if res.Suggestions != nil {
			stats.Suggestions = res.Suggestions
		}
		stats.SentimentBreakdown = fillSentiments(res.SentimentBreakdown)
	} else {
		stats.SentimentBreakdown = fillSentiments(nil)
	}
	return stats, nil
}

// fillSentiments normalizes a grouped sentiment count to always carry all
// three labels in positive/neutral/negative order, unlike the rating
// histogram which omits empty buckets.
func fillSentiments(buckets []models.SentimentBucket) []models.SentimentBucket {
	counts := make(map[sentiment.Label]int64, len(buckets))
	for _, b := range buckets {
		counts[b.Sentiment] = b.Count
	}
	return []models.SentimentBucket{
		{Sentiment: sentiment.Positive, Count: counts[sentiment.Positive]},
		{Sentiment: sentiment.Neutral, Count: counts[sentiment.Neutral]},
		{Sentiment: sentiment.Negative, Count: counts[sentiment.Negative]},
	}
}

// TimeSeries counts feedback per UTC calendar day, oldest day first.
func (r *FeedbackRepository) TimeSeries(ctx context.Context, ideaID primitive.ObjectID) ([]models.DayBucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ideaId": ideaID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	buckets := []models.DayBucket{}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *FeedbackRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "ideaId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}
