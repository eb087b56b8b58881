package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section values a category may belong to.
const (
	SectionMusic = "music"
	SectionBook  = "book"
	SectionBlog  = "blog"
)

// Category is a label attached to one content section.
type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Section  string             `bson:"section" json:"section" validate:"required"`
	Category string             `bson:"category" json:"category" validate:"required"`
	AddedAt  time.Time          `bson:"addedAt" json:"addedAt"`
}
