package specification

import (
	"go.mongodb.org/mongo-driver/bson"

	"thrapy-be/internal/entity"
)

// ById filters by the generated document id (the "id" field, not Mongo's _id).
type ById struct {
	Id string
}

func (s ById) Apply(filter bson.M) {
	filter["id"] = s.Id
}

// ByEmail filters users by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(filter bson.M) {
	filter["email"] = s.Email
}

// ByUserId filters child documents by their owning user.
type ByUserId struct {
	UserId string
}

func (s ByUserId) Apply(filter bson.M) {
	filter["user_id"] = s.UserId
}

// ByTherapistId filters by therapist profile id.
type ByTherapistId struct {
	TherapistId string
}

func (s ByTherapistId) Apply(filter bson.M) {
	filter["therapist_id"] = s.TherapistId
}

// BySessionId filters chat history by session.
type BySessionId struct {
	SessionId string
}

func (s BySessionId) Apply(filter bson.M) {
	filter["session_id"] = s.SessionId
}

// BySessionType filters sessions by type.
type BySessionType struct {
	SessionType entity.SessionType
}

func (s BySessionType) Apply(filter bson.M) {
	filter["session_type"] = s.SessionType
}

// OnlyAvailable filters therapist profiles that accept bookings.
type OnlyAvailable struct{}

func (s OnlyAvailable) Apply(filter bson.M) {
	filter["is_available"] = true
}
