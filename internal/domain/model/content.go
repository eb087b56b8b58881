package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Content is implemented by every document kind that goes through the
// shared CRUD pipeline. Stamp marks creation time; Changes returns the
// field set written by a partial update, leaving other stored fields
// untouched.
type Content interface {
	Stamp(now time.Time)
	Changes(now time.Time) bson.M
}
