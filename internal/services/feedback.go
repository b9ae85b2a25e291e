package services

import (
	"context"
	"time"

	"github.com/ideapulse/idea-feedback-backend/internal/access"
	"github.com/ideapulse/idea-feedback-backend/internal/models"
	"github.com/ideapulse/idea-feedback-backend/internal/sentiment"
)

type FeedbackService struct {
	ideas    IdeaStore
	feedback FeedbackStore
}

func NewFeedbackService(ideas IdeaStore, feedback FeedbackStore) *FeedbackService {
	return &FeedbackService{ideas: ideas, feedback: feedback}
}

// Submit runs the full submission workflow: validate, gate, classify,
// persist, then recompute the idea's aggregates from the complete feedback
// set. If the aggregate write fails after the insert succeeded, the idea's
// avgRating/responseCount stay stale until the next successful submission
// recomputes them; individual rows are never wrong.
func (s *FeedbackService) Submit(ctx context.Context, ideaID string, req models.SubmitFeedbackRequest) (*models.FeedbackView, error) {
	oid, err := parseIdeaID(ideaID)
	if err != nil {
		return nil, err
	}
	if req.Rating < 1 || req.Rating > 10 {
		return nil, &ValidationError{Reason: "rating must be between 1 and 10"}
	}

	idea, err := s.ideas.FindByID(ctx, oid)
	if err != nil {
		return nil, storeErr("find idea", err)
	}
	if idea == nil {
		return nil, ErrNotFound
	}
	if err := checkRead(idea, req.Password); err != nil {
		return nil, err
	}

	label := sentiment.Neutral
	if req.Feedback != "" {
		label = sentiment.Classify(req.Feedback)
	}

	created, err := s.feedback.Create(ctx, models.Feedback{
		IdeaID:    oid,
		Rating:    req.Rating,
		Feedback:  req.Feedback,
		Sentiment: label,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, storeErr("create feedback", err)
	}

	stats, err := s.feedback.Stats(ctx, oid)
	if err != nil {
		return nil, storeErr("compute feedback stats", err)
	}
	responseCount := stats.TotalFeedback
	avgRating := stats.AvgRating
	if responseCount == 0 {
		// The row above exists, so the pipeline can never legitimately see an
		// empty set; count at least this submission. Both derived fields move
		// together so they stay consistent.
		responseCount = 1
		avgRating = float64(req.Rating)
	}
	if err := s.ideas.SetAggregates(ctx, oid, avgRating, responseCount); err != nil {
		return nil, storeErr("update idea aggregates", err)
	}

	view := created.View()
	return &view, nil
}

// ListByIdea returns every feedback row for an idea, newest first. Listing is
// open even for private ideas; the owner-only analytics live on the
// dashboard.
func (s *FeedbackService) ListByIdea(ctx context.Context, ideaID string) ([]models.FeedbackView, error) {
	oid, err := parseIdeaID(ideaID)
	if err != nil {
		return nil, err
	}
	rows, err := s.feedback.FindByIdeaID(ctx, oid)
	if err != nil {
		return nil, storeErr("list feedback", err)
	}
	views := make([]models.FeedbackView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].View())
	}
	return views, nil
}

// Dashboard assembles the owner-only analytics view: idea, aggregates, time
// series and the full feedback list. Read-only; aggregates are computed fresh
// on every call.
func (s *FeedbackService) Dashboard(ctx context.Context, ideaID, token string) (*models.DashboardResponse, error) {
	oid, err := parseIdeaID(ideaID)
	if err != nil {
		return nil, err
	}
	idea, err := s.ideas.FindByID(ctx, oid)
	if err != nil {
		return nil, storeErr("find idea", err)
	}
	if idea == nil {
		return nil, ErrNotFound
	}
	if !access.AuthorizeOwner(idea, token) {
		return nil, ErrUnauthorized
	}

	stats, err := s.feedback.Stats(ctx, oid)
	if err != nil {
		return nil, storeErr("compute feedback stats", err)
	}
	series, err := s.feedback.TimeSeries(ctx, oid)
	if err != nil {
		return nil, storeErr("compute feedback time series", err)
	}
	rows, err := s.feedback.FindByIdeaID(ctx, oid)
	if err != nil {
		return nil, storeErr("list feedback", err)
	}

	feedback := make([]models.FeedbackView, 0, len(rows))
	for i := range rows {
		feedback = append(feedback, rows[i].View())
	}

	return &models.DashboardResponse{
		Idea: idea.PublicView(),
		Analytics: models.Analytics{
			TotalFeedback:      stats.TotalFeedback,
			AvgRating:          stats.AvgRating,
			RatingDistribution: stats.RatingDistribution,
			SentimentBreakdown: stats.SentimentBreakdown,
			Suggestions:        stats.Suggestions,
			FeedbackTimeSeries: series,
		},
		Feedback: feedback,
	}, nil
}
