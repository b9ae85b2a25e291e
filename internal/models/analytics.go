package models

import (
	"time"

	"github.com/ideapulse/idea-feedback-backend/internal/sentiment"
)

// Aggregation buckets. Each grouped count gets its own shape because the
// group key differs per aggregation: rating value, sentiment label, or UTC
// calendar day.

// RatingBucket counts feedback per rating value. Values nobody chose are
// omitted, not zero-filled.
type RatingBucket struct {
	Rating int   `json:"rating" bson:"_id"`
	Count  int64 `json:"count" bson:"count"`
}

// SentimentBucket counts feedback per sentiment label. All three labels are
// always present, zero counts included.
type SentimentBucket struct {
	Sentiment sentiment.Label `json:"sentiment" bson:"_id"`
	Count     int64           `json:"count" bson:"count"`
}

// DayBucket counts feedback per UTC calendar day, keyed YYYY-MM-DD.
type DayBucket struct {
	Date  string `json:"date" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// Suggestion is one of the most recent feedback comments.
type Suggestion struct {
	Text      string    `json:"text" bson:"feedback"`
	Rating    int       `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// FeedbackStats is the result of the per-idea stats pipeline.
type FeedbackStats struct {
	AvgRating          float64
	TotalFeedback      int64
	RatingDistribution []RatingBucket
	SentimentBreakdown []SentimentBucket
	Suggestions        []Suggestion
}

// Analytics is the dashboard payload computed fresh on every request.
type Analytics struct {
	TotalFeedback      int64             `json:"totalFeedback"`
	AvgRating          float64           `json:"avgRating"`
	RatingDistribution []RatingBucket    `json:"ratingDistribution"`
	SentimentBreakdown []SentimentBucket `json:"sentimentBreakdown"`
	Suggestions        []Suggestion      `json:"suggestions"`
	FeedbackTimeSeries []DayBucket       `json:"feedbackTimeSeries"`
}

// DashboardResponse is the owner-only analytics view for one idea.
type DashboardResponse struct {
	Idea      PublicIdea     `json:"idea"`
	Analytics Analytics      `json:"analytics"`
	Feedback  []FeedbackView `json:"feedback"`
}
