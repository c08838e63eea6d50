package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"promptdeck/models"
)

type PromptRepository struct {
	col *mongo.Collection
}

func NewPromptRepository(db *mongo.Database) *PromptRepository {
	return &PromptRepository{col: db.Collection("prompts")}
}

// Insert stores a new prompt and returns it with the generated ObjectID.
func (r *PromptRepository) Insert(ctx context.Context, p *models.Prompt) (*models.Prompt, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// GetByID returns a prompt by ObjectID.
func (r *PromptRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Prompt, error) {
	var p models.Prompt
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListUncategorized returns up to limit prompts without categories,
// oldest first so stragglers are picked up before fresh submissions.
func (r *PromptRepository) ListUncategorized(ctx context.Context, limit int) ([]models.Prompt, error) {
	filter := bson.M{"$or": []bson.M{
		{"categories": bson.M{"$exists": false}},
		{"categories": nil},
		{"categories": bson.M{"$size": 0}},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var prompts []models.Prompt
	if err := cur.All(ctx, &prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

// UpdateCategories replaces the whole category list and records the
// categorization snapshot. Returns mongo.ErrNoDocuments when the prompt
// does not exist.
func (r *PromptRepository) UpdateCategories(ctx context.Context, id primitive.ObjectID, categories []string, info models.CategorizationInfo) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"categories":     categories,
			"categorization": info,
			"updated_at":     time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListInput holds pagination and filter options for List.
type ListInput struct {
	Page     int
	PageSize int
	Category string
	AuthorID string
}

// List returns a page of prompts, newest first, with an overall count.
func (r *PromptRepository) List(ctx context.Context, in ListInput) ([]models.Prompt, int64, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PageSize < 1 || in.PageSize > 100 {
		in.PageSize = 20
	}

	filter := bson.M{}
	if in.Category != "" {
		filter["categories"] = in.Category
	}
	if in.AuthorID != "" {
		filter["author_id"] = in.AuthorID
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((in.Page - 1) * in.PageSize)).
		SetLimit(int64(in.PageSize))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var prompts []models.Prompt
	if err := cur.All(ctx, &prompts); err != nil {
		return nil, 0, err
	}
	return prompts, total, nil
}
