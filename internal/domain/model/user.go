package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role constants for user authorization.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User is an account document. Email is unique (enforced by a store
// index). Password holds the bcrypt hash and is never serialized.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Photo    string             `bson:"photo" json:"photo"`
	Role     string             `bson:"role" json:"role"`
	AddedAt  time.Time          `bson:"addedAt" json:"addedAt"`
}

// IsAdmin reports whether the stored role grants elevated access.
// An absent role is treated as non-admin.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
