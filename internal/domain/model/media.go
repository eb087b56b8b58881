package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media records one uploaded object held in object storage.
type Media struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UploadedBy string             `bson:"uploadedBy" json:"uploadedBy"`
	URL        string             `bson:"url" json:"url"`
	Type       string             `bson:"type" json:"type"`
	Size       int64              `bson:"size" json:"size"`
	AddedAt    time.Time          `bson:"addedAt" json:"addedAt"`
}
