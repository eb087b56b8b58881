package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Music is one entry of the music library. Tags are comma separated.
type Music struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Category  string             `bson:"category" json:"category" validate:"required"`
	AudioURL  string             `bson:"audioUrl" json:"audioUrl" validate:"required"`
	Tags      string             `bson:"tags" json:"tags" validate:"required"`
	Lyrics    string             `bson:"lyrics" json:"lyrics" validate:"required"`
	Meanings  string             `bson:"meanings" json:"meanings" validate:"required"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (m *Music) Stamp(now time.Time) {
	m.AddedAt = now
}

func (m *Music) Changes(now time.Time) bson.M {
	return bson.M{
		"title":     m.Title,
		"category":  m.Category,
		"audioUrl":  m.AudioURL,
		"tags":      m.Tags,
		"lyrics":    m.Lyrics,
		"meanings":  m.Meanings,
		"updatedAt": now,
	}
}
