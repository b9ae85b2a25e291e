// Package repository implements the idea and feedback collections on
// MongoDB.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ideapulse/idea-feedback-backend/internal/database"
	"github.com/ideapulse/idea-feedback-backend/internal/models"
)

type IdeaRepository struct {
	col *mongo.Collection
}

func NewIdeaRepository(db *database.DB) *IdeaRepository {
	return &IdeaRepository{col: db.Collection("ideas")}
}

func (r *IdeaRepository) Create(ctx context.Context, idea models.Idea) (models.Idea, error) {
	res, err := r.col.InsertOne(ctx, idea)
	if err != nil {
		return models.Idea{}, err
	}
	idea.ID = res.InsertedID.(primitive.ObjectID)
	return idea, nil
}

// FindByID returns (nil, nil) when the idea does not exist.
func (r *IdeaRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Idea, error) {
	var idea models.Idea
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&idea)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *IdeaRepository) FindByCreatorToken(ctx context.Context, token string) (*models.Idea, error) {
	var idea models.Idea
	err := r.col.FindOne(ctx, bson.M{"creatorToken": token}).Decode(&idea)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// PaginatedPublic lists active public ideas, newest first; responseCount
// breaks ties among ideas created at the same instant.
func (r *IdeaRepository) PaginatedPublic(ctx context.Context, page, limit int) (models.IdeaPage, error) {
	filter := bson.M{"isPrivate": false, "status": models.StatusActive}
	skip := (page - 1) * limit

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "responseCount", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return models.IdeaPage{}, err
	}
	defer cursor.Close(ctx)

	var ideas []models.Idea
	if err := cursor.All(ctx, &ideas); err != nil {
		return models.IdeaPage{}, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return models.IdeaPage{}, err
	}

	views := make([]models.PublicIdea, 0, len(ideas))
	for i := range ideas {
		views = append(views, ideas[i].PublicView())
	}

	return models.IdeaPage{
		Ideas:   views,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: int64(skip+limit) < total,
	}, nil
}

// Update applies the given fields and reports whether anything changed.
func (r *IdeaRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// SetAggregates persists the recomputed derived fields onto the idea.
func (r *IdeaRepository) SetAggregates(ctx context.Context, id primitive.ObjectID, avgRating float64, responseCount int64) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"avgRating":     avgRating,
		"responseCount": responseCount,
	}})
	return err
}

func (r *IdeaRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *IdeaRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "isPrivate", Value: 1}}},
		{Keys: bson.D{{Key: "responseCount", Value: -1}}},
		{Keys: bson.D{{Key: "creatorToken", Value: 1}}},
	})
	return err
}
