package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prompt represents a user-submitted prompt document.
// Collection: prompts
//
// Categories is the mutable tag list; empty or missing means the prompt has
// not been categorized yet, which is the selection predicate for batch mode.
// The categorizer always replaces the whole list, it never appends.
type Prompt struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
	AuthorID       string             `bson:"author_id" json:"author_id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Content        string             `bson:"content" json:"content"`
	ImageURLs      []string           `bson:"image_urls" json:"image_urls"`
	Categories     []string           `bson:"categories" json:"categories"`
	Categorization CategorizationInfo `bson:"categorization" json:"categorization"`
}

// CategorizationInfo nested info in Prompt (denormalized snapshot of the
// last categorizer run).
type CategorizationInfo struct {
	ModelName   string    `bson:"model_name" json:"model_name"`
	Fallback    bool      `bson:"fallback" json:"fallback"`
	GeneratedAt time.Time `bson:"generated_at" json:"generated_at"`
}

// IsCategorized reports whether the prompt already carries tags.
func (p *Prompt) IsCategorized() bool {
	return len(p.Categories) > 0
}
