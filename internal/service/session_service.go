package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"thrapy-be/internal/dto"
	"thrapy-be/internal/entity"
	"thrapy-be/internal/pkg/apperror"
	"thrapy-be/internal/repository/contract"
	"thrapy-be/internal/repository/specification"
)

const (
	// Flat rate for AI sessions, dollars per hour.
	aiRatePerHour = 5.0
	// Split of a therapist session's cost between platform and therapist.
	platformFeeRate       = 0.30
	therapistEarningsRate = 0.70

	sessionListLimit = 100
)

type ISessionService interface {
	CreateSession(ctx context.Context, caller *entity.User, req *dto.CreateSessionRequest) (*entity.Session, error)
	GetUserSessions(ctx context.Context, caller *entity.User) ([]*entity.Session, error)
}

type sessionService struct {
	sessionRepo   contract.SessionRepository
	therapistRepo contract.TherapistRepository
	paymentRepo   contract.PaymentRepository
}

func NewSessionService(
	sessionRepo contract.SessionRepository,
	therapistRepo contract.TherapistRepository,
	paymentRepo contract.PaymentRepository,
) ISessionService {
	return &sessionService{
		sessionRepo:   sessionRepo,
		therapistRepo: therapistRepo,
		paymentRepo:   paymentRepo,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, caller *entity.User, req *dto.CreateSessionRequest) (*entity.Session, error) {
	durationMinutes := req.DurationMinutes
	if durationMinutes == 0 {
		durationMinutes = 60
	}

	cost, err := s.computeCost(ctx, req, durationMinutes)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		Id:              uuid.NewString(),
		UserId:          caller.Id,
		TherapistId:     req.TherapistId,
		SessionType:     entity.SessionType(req.SessionType),
		ScheduledDate:   req.ScheduledDate,
		DurationMinutes: durationMinutes,
		Cost:            cost,
		Status:          entity.SessionStatusScheduled,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	// Second, independent insert: no cross-collection transaction, so a crash
	// here leaves a session without its payment record.
	if err := s.paymentRepo.Create(ctx, buildPaymentRecord(session)); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sessionService) computeCost(ctx context.Context, req *dto.CreateSessionRequest, durationMinutes int) (float64, error) {
	hours := float64(durationMinutes) / 60

	switch entity.SessionType(req.SessionType) {
	case entity.SessionTypeAI:
		return aiRatePerHour * hours, nil
	case entity.SessionTypeTherapist:
		if req.TherapistId == nil || *req.TherapistId == "" {
			return 0, apperror.Validation("Therapist ID required for therapist sessions")
		}
		therapist, err := s.therapistRepo.FindOne(ctx, specification.ById{Id: *req.TherapistId})
		if err != nil {
			return 0, err
		}
		if therapist == nil {
			return 0, apperror.NotFound("Therapist not found")
		}
		return therapist.HourlyRate * hours, nil
	default:
		return 0, apperror.Validation("Invalid session type")
	}
}

func buildPaymentRecord(session *entity.Session) *entity.PaymentRecord {
	payment := &entity.PaymentRecord{
		Id:          uuid.NewString(),
		UserId:      session.UserId,
		SessionId:   session.Id,
		Amount:      session.Cost,
		PaymentType: entity.PaymentTypeAISession,
		Status:      "completed",
		CreatedAt:   time.Now().UTC(),
	}

	if session.SessionType == entity.SessionTypeTherapist {
		payment.PaymentType = entity.PaymentTypeTherapistSession
		platformFee := session.Cost * platformFeeRate
		therapistEarnings := session.Cost * therapistEarningsRate
		payment.PlatformFee = &platformFee
		payment.TherapistEarnings = &therapistEarnings
	}

	return payment
}

func (s *sessionService) GetUserSessions(ctx context.Context, caller *entity.User) ([]*entity.Session, error) {
	return s.sessionRepo.FindAll(ctx, sessionListLimit, specification.ByUserId{UserId: caller.Id})
}
