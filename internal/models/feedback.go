package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ideapulse/idea-feedback-backend/internal/sentiment"
)

// Feedback is one rating (plus optional comment) against an idea. Sentiment
// is computed once at creation and stored; it is never recomputed. Rows are
// immutable and only removed when the parent idea is deleted.
type Feedback struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	IdeaID    primitive.ObjectID `json:"ideaId" bson:"ideaId"`
	Rating    int                `json:"rating" bson:"rating"`
	Feedback  string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Sentiment sentiment.Label    `json:"sentiment" bson:"sentiment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type SubmitFeedbackRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=10"`
	Feedback string `json:"feedback,omitempty"`
	Password string `json:"password,omitempty"`
}

// FeedbackView is a feedback row as returned to callers.
type FeedbackView struct {
	ID        string          `json:"id"`
	IdeaID    string          `json:"ideaId"`
	Rating    int             `json:"rating"`
	Feedback  string          `json:"feedback,omitempty"`
	Sentiment sentiment.Label `json:"sentiment"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (f *Feedback) View() FeedbackView {
	return FeedbackView{
		ID:        f.ID.Hex(),
		IdeaID:    f.IdeaID.Hex(),
		Rating:    f.Rating,
		Feedback:  f.Feedback,
		Sentiment: f.Sentiment,
		CreatedAt: f.CreatedAt,
	}
}
