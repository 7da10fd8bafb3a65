package entity

import (
	"time"
)

type UserRole string

const (
	UserRoleClient    UserRole = "client"
	UserRoleTherapist UserRole = "therapist"
	UserRoleAdmin     UserRole = "admin"
)

// User lives in the "users" collection. Role is immutable after creation and
// users are never deleted.
type User struct {
	Id           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Role         UserRole  `bson:"role" json:"role"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
