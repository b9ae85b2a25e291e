// Package services orchestrates the idea and feedback workflows on top of
// the stores: credential issuance, access gating, sentiment classification
// and aggregate maintenance.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ideapulse/idea-feedback-backend/internal/access"
	"github.com/ideapulse/idea-feedback-backend/internal/auth"
	"github.com/ideapulse/idea-feedback-backend/internal/models"
)

// PublicPageLimit is the page size of the public idea listing.
const PublicPageLimit = 10

type IdeaService struct {
	ideas    IdeaStore
	feedback FeedbackStore
}

func NewIdeaService(ideas IdeaStore, feedback FeedbackStore) *IdeaService {
	return &IdeaService{ideas: ideas, feedback: feedback}
}

// Create stores a new idea. Private ideas get their password bcrypt-hashed;
// every idea gets a creator token, returned to the caller exactly once here.
func (s *IdeaService) Create(ctx context.Context, req models.CreateIdeaRequest) (*models.CreatedIdea, error) {
	if req.IsPrivate && req.Password == "" {
		return nil, &ValidationError{Reason: "password is required for a private idea"}
	}

	token, err := auth.GenerateCreatorToken()
	if err != nil {
		return nil, storeErr("generate creator token", err)
	}

	var passwordHash string
	if req.IsPrivate {
		passwordHash, err = auth.HashPassword(req.Password)
		if err != nil {
			return nil, storeErr("hash password", err)
		}
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "Anonymous"
	}

	idea := models.Idea{
		Title:        req.Title,
		Description:  req.Description,
		CreatedAt:    time.Now().UTC(),
		IsPrivate:    req.IsPrivate,
		Password:     passwordHash,
		CreatorToken: token,
		Status:       models.StatusActive,
		CreatedBy:    createdBy,
	}

	stored, err := s.ideas.Create(ctx, idea)
	if err != nil {
		return nil, storeErr("create idea", err)
	}

	return &models.CreatedIdea{PublicIdea: stored.PublicView(), CreatorToken: token}, nil
}

// Get returns the public view of one idea, gated by the read check.
func (s *IdeaService) Get(ctx context.Context, id, password string) (*models.PublicIdea, error) {
	idea, err := s.loadIdea(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkRead(idea, password); err != nil {
		return nil, err
	}
	view := idea.PublicView()
	return &view, nil
}

// ListPublic pages through active public ideas.
func (s *IdeaService) ListPublic(ctx context.Context, page int) (*models.IdeaPage, error) {
	if page < 1 {
		page = 1
	}
	result, err := s.ideas.PaginatedPublic(ctx, page, PublicPageLimit)
	if err != nil {
		return nil, storeErr("list public ideas", err)
	}
	return &result, nil
}

// Update applies the provided fields to an idea. The caller must pass the
// read gate (private ideas need their password) and the owner gate.
func (s *IdeaService) Update(ctx context.Context, id, token, password string, req models.UpdateIdeaRequest) (*models.PublicIdea, error) {
	idea, err := s.loadIdea(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkRead(idea, password); err != nil {
		return nil, err
	}
	if !access.AuthorizeOwner(idea, token) {
		return nil, ErrUnauthorized
	}

	updates := bson.M{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, &ValidationError{Reason: "title cannot be empty"}
		}
		updates["title"] = *req.Title
		idea.Title = *req.Title
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, &ValidationError{Reason: "description cannot be empty"}
		}
		updates["description"] = *req.Description
		idea.Description = *req.Description
	}
	if req.Status != nil {
		if *req.Status != models.StatusActive && *req.Status != models.StatusArchived {
			return nil, &ValidationError{Reason: "status must be active or archived"}
		}
		updates["status"] = *req.Status
		idea.Status = *req.Status
	}
	if req.CreatedBy != nil {
		updates["createdBy"] = *req.CreatedBy
		idea.CreatedBy = *req.CreatedBy
	}

	if len(updates) > 0 {
		if _, err := s.ideas.Update(ctx, idea.ID, updates); err != nil {
			return nil, storeErr("update idea", err)
		}
	}

	view := idea.PublicView()
	return &view, nil
}

// Delete removes an idea and cascades to all of its feedback. Owner only.
func (s *IdeaService) Delete(ctx context.Context, id, token string) error {
	idea, err := s.loadIdea(ctx, id)
	if err != nil {
		return err
	}
	if !access.AuthorizeOwner(idea, token) {
		return ErrUnauthorized
	}

	// Feedback first so a failure cannot orphan rows behind a deleted idea.
	if _, err := s.feedback.DeleteByIdeaID(ctx, idea.ID); err != nil {
		return storeErr("delete feedback for idea", err)
	}
	if _, err := s.ideas.Delete(ctx, idea.ID); err != nil {
		return storeErr("delete idea", err)
	}
	return nil
}

func (s *IdeaService) loadIdea(ctx context.Context, id string) (*models.Idea, error) {
	oid, err := parseIdeaID(id)
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
	return idea, nil
}

// checkRead translates a gate decision into the error taxonomy.
func checkRead(idea *models.Idea, password string) error {
	switch access.AuthorizeRead(idea, password) {
	case access.ReadPasswordRequired:
		return ErrPasswordRequired
	case access.ReadPasswordInvalid:
		return ErrPasswordInvalid
	default:
		return nil
	}
}
