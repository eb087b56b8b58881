package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a post whose body lives in the Blog field.
// Update requires the same fields as create.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Category  []string           `bson:"category" json:"category" validate:"required,min=1"`
	Blog      string             `bson:"blog" json:"blog" validate:"required"`
	Tags      []string           `bson:"tags" json:"tags" validate:"required,min=1"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (b *Blog) Stamp(now time.Time) {
	b.AddedAt = now
}

func (b *Blog) Changes(now time.Time) bson.M {
	return bson.M{
		"title":     b.Title,
		"category":  b.Category,
		"blog":      b.Blog,
		"tags":      b.Tags,
		"updatedAt": now,
	}
}
