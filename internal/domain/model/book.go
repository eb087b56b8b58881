package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book references an external reading link. Categories and tags are lists.
type Book struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Category  []string           `bson:"category" json:"category" validate:"required,min=1"`
	Link      string             `bson:"link" json:"link" validate:"required"`
	Tags      []string           `bson:"tags" json:"tags" validate:"required,min=1"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (b *Book) Stamp(now time.Time) {
	b.AddedAt = now
}

func (b *Book) Changes(now time.Time) bson.M {
	return bson.M{
		"title":     b.Title,
		"category":  b.Category,
		"link":      b.Link,
		"tags":      b.Tags,
		"updatedAt": now,
	}
}
