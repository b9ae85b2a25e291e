package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ideapulse/idea-feedback-backend/internal/models"
	"github.com/ideapulse/idea-feedback-backend/internal/sentiment"
)

// memStore is an in-memory stand-in for both repositories. Its aggregation
// methods compute the same results the Mongo pipelines produce.
type memStore struct {
	ideas    map[primitive.ObjectID]*models.Idea
	feedback []models.Feedback

	failSetAggregates bool
	emptyStats        bool
}

func newMemStore() *memStore {
	return &memStore{ideas: make(map[primitive.ObjectID]*models.Idea)}
}

func (m *memStore) Create(ctx context.Context, idea models.Idea) (models.Idea, error) {
	idea.ID = primitive.NewObjectID()
	stored := idea
	m.ideas[idea.ID] = &stored
	return idea, nil
}

func (m *memStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Idea, error) {
	idea, ok := m.ideas[id]
	if !ok {
		return nil, nil
	}
	copied := *idea
	return &copied, nil
}

func (m *memStore) PaginatedPublic(ctx context.Context, page, limit int) (models.IdeaPage, error) {
	var match []models.Idea
	for _, idea := range m.ideas {
		if !idea.IsPrivate && idea.Status == models.StatusActive {
			match = append(match, *idea)
		}
	}
	sort.SliceStable(match, func(i, j int) bool {
		if !match[i].CreatedAt.Equal(match[j].CreatedAt) {
			return match[i].CreatedAt.After(match[j].CreatedAt)
		}
		return match[i].ResponseCount > match[j].ResponseCount
	})

	total := int64(len(match))
	skip := (page - 1) * limit
	views := []models.PublicIdea{}
	for i := skip; i < len(match) && i < skip+limit; i++ {
		views = append(views, match[i].PublicView())
	}

	return models.IdeaPage{
		Ideas:   views,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: int64(skip+limit) < total,
	}, nil
}

func (m *memStore) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (bool, error) {
	idea, ok := m.ideas[id]
	if !ok {
		return false, nil
	}
	for field, value := range updates {
		switch field {
		case "title":
			idea.Title = value.(string)
		case "description":
			idea.Description = value.(string)
		case "status":
			idea.Status = value.(string)
		case "createdBy":
			idea.CreatedBy = value.(string)
		}
	}
	return true, nil
}

func (m *memStore) SetAggregates(ctx context.Context, id primitive.ObjectID, avgRating float64, responseCount int64) error {
	if m.failSetAggregates {
		return errStoreDown
	}
	idea, ok := m.ideas[id]
	if !ok {
		return nil
	}
	idea.AvgRating = avgRating
	idea.ResponseCount = responseCount
	return nil
}

func (m *memStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := m.ideas[id]; !ok {
		return false, nil
	}
	delete(m.ideas, id)
	return true, nil
}

func (m *memStore) CreateFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	fb.ID = primitive.NewObjectID()
	m.feedback = append(m.feedback, fb)
	return fb, nil
}

func (m *memStore) FindByIdeaID(ctx context.Context, ideaID primitive.ObjectID) ([]models.Feedback, error) {
	var rows []models.Feedback
	for _, fb := range m.feedback {
		if fb.IdeaID == ideaID {
			rows = append(rows, fb)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

func (m *memStore) DeleteByIdeaID(ctx context.Context, ideaID primitive.ObjectID) (int64, error) {
	var kept []models.Feedback
	var removed int64
	for _, fb := range m.feedback {
		if fb.IdeaID == ideaID {
			removed++
			continue
		}
		kept = append(kept, fb)
	}
	m.feedback = kept
	return removed, nil
}

func (m *memStore) Stats(ctx context.Context, ideaID primitive.ObjectID) (models.FeedbackStats, error) {
	rows, _ := m.FindByIdeaID(ctx, ideaID)
	if m.emptyStats {
		rows = nil
	}

	stats := models.FeedbackStats{
		RatingDistribution: []models.RatingBucket{},
		Suggestions:        []models.Suggestion{},
	}

	var sum int64
	ratingCounts := map[int]int64{}
	sentimentCounts := map[sentiment.Label]int64{}
	for _, fb := range rows {
		sum += int64(fb.Rating)
		ratingCounts[fb.Rating]++
		sentimentCounts[fb.Sentiment]++
		if fb.Feedback != "" && len(stats.Suggestions) < 10 {
			stats.Suggestions = append(stats.Suggestions, models.Suggestion{
				Text:      fb.Feedback,
				Rating:    fb.Rating,
				CreatedAt: fb.CreatedAt,
			})
		}
	}

	stats.TotalFeedback = int64(len(rows))
	if stats.TotalFeedback > 0 {
		stats.AvgRating = float64(sum) / float64(stats.TotalFeedback)
	}

	var ratings []int
	for rating := range ratingCounts {
		ratings = append(ratings, rating)
	}
	sort.Ints(ratings)
	for _, rating := range ratings {
		stats.RatingDistribution = append(stats.RatingDistribution, models.RatingBucket{
			Rating: rating,
			Count:  ratingCounts[rating],
		})
	}

	stats.SentimentBreakdown = []models.SentimentBucket{
		{Sentiment: sentiment.Positive, Count: sentimentCounts[sentiment.Positive]},
		{Sentiment: sentiment.Neutral, Count: sentimentCounts[sentiment.Neutral]},
		{Sentiment: sentiment.Negative, Count: sentimentCounts[sentiment.Negative]},
	}

	return stats, nil
}

func (m *memStore) TimeSeries(ctx context.Context, ideaID primitive.ObjectID) ([]models.DayBucket, error) {
	counts := map[string]int64{}
	for _, fb := range m.feedback {
		if fb.IdeaID == ideaID {
			counts[fb.CreatedAt.UTC().Format("2006-01-02")]++
		}
	}
	var days []string
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)

	buckets := []models.DayBucket{}
	for _, day := range days {
		buckets = append(buckets, models.DayBucket{Date: day, Count: counts[day]})
	}
	return buckets, nil
}

// feedbackStoreAdapter exposes memStore.CreateFeedback under the
// FeedbackStore interface, whose Create collides with the idea Create.
type feedbackStoreAdapter struct {
	*memStore
}

func (a feedbackStoreAdapter) Create(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	return a.memStore.CreateFeedback(ctx, fb)
}
