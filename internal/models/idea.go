package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Idea is the stored document. Password holds the bcrypt hash of the access
// password and only exists for private ideas; CreatorToken is the opaque
// ownership secret issued at creation. Neither is ever serialized to JSON.
type Idea struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	IsPrivate     bool               `json:"isPrivate" bson:"isPrivate"`
	Password      string             `json:"-" bson:"password,omitempty"`
	CreatorToken  string             `json:"-" bson:"creatorToken"`
	ResponseCount int64              `json:"responseCount" bson:"responseCount"`
	AvgRating     float64            `json:"avgRating" bson:"avgRating"`
	Status        string             `json:"status" bson:"status"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
}

type CreateIdeaRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	IsPrivate   bool   `json:"isPrivate"`
	Password    string `json:"password,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty"`
}

// UpdateIdeaRequest carries the owner-editable fields; nil means "leave
// unchanged" so partial updates only touch what the caller sent.
type UpdateIdeaRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
	CreatedBy   *string `json:"createdBy,omitempty"`
}

// PublicIdea is the idea as shown to readers: no password hash, no creator
// token.
type PublicIdea struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	AvgRating     float64   `json:"avgRating"`
	ResponseCount int64     `json:"responseCount"`
	CreatedAt     time.Time `json:"createdAt"`
	IsPrivate     bool      `json:"isPrivate"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"createdBy"`
}

// CreatedIdea is the creation response; the only place the creator token is
// ever returned.
type CreatedIdea struct {
	PublicIdea
	CreatorToken string `json:"creatorToken"`
}

// IdeaPage is one page of the public listing.
type IdeaPage struct {
	Ideas   []PublicIdea `json:"ideas"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
	HasMore bool         `json:"hasMore"`
}

// PublicView shapes an idea for readers.
func (i *Idea) PublicView() PublicIdea {
	return PublicIdea{
		ID:            i.ID.Hex(),
		Title:         i.Title,
		Description:   i.Description,
		AvgRating:     i.AvgRating,
		ResponseCount: i.ResponseCount,
		CreatedAt:     i.CreatedAt,
		IsPrivate:     i.IsPrivate,
		Status:        i.Status,
		CreatedBy:     i.CreatedBy,
	}
}
