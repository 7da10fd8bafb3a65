package entity

import (
	"time"
)

type PaymentType string

const (
	PaymentTypeAISession        PaymentType = "ai_session"
	PaymentTypeTherapistSession PaymentType = "therapist_session"
)

// PaymentRecord lives in the "payments" collection, one per session, written
// right after the session insert. Status is always "completed" at creation;
// there is no refund or failure path.
type PaymentRecord struct {
	Id                string      `bson:"id" json:"id"`
	UserId            string      `bson:"user_id" json:"user_id"`
	SessionId         string      `bson:"session_id" json:"session_id"`
	Amount            float64     `bson:"amount" json:"amount"`
	PaymentType       PaymentType `bson:"payment_type" json:"payment_type"`
	Status            string      `bson:"status" json:"status"`
	PlatformFee       *float64    `bson:"platform_fee,omitempty" json:"platform_fee,omitempty"`
	TherapistEarnings *float64    `bson:"therapist_earnings,omitempty" json:"therapist_earnings,omitempty"`
	CreatedAt         time.Time   `bson:"created_at" json:"created_at"`
}
