// Package handlers exposes the idea and feedback services over Fiber.
package handlers

import (
	"context"

	"github.com/ideapulse/idea-feedback-backend/internal/models"
)

// IdeaAPI and FeedbackAPI are the service contracts the handlers call,
// implemented by the services package.

type IdeaAPI interface {
	Create(ctx context.Context, req models.CreateIdeaRequest) (*models.CreatedIdea, error)
	Get(ctx context.Context, id, password string) (*models.PublicIdea, error)
	ListPublic(ctx context.Context, page int) (*models.IdeaPage, error)
	Update(ctx context.Context, id, token, password string, req models.UpdateIdeaRequest) (*models.PublicIdea, error)
	Delete(ctx context.Context, id, token string) error
}

type FeedbackAPI interface {
	Submit(ctx context.Context, ideaID string, req models.SubmitFeedbackRequest) (*models.FeedbackView, error)
	ListByIdea(ctx context.Context, ideaID string) ([]models.FeedbackView, error)
	Dashboard(ctx context.Context, ideaID, token string) (*models.DashboardResponse, error)
}

type Handler struct {
	ideas    IdeaAPI
	feedback FeedbackAPI
}

func New(ideas IdeaAPI, feedback FeedbackAPI) *Handler {
	return &Handler{ideas: ideas, feedback: feedback}
}
