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

const therapistListLimit = 100

type ITherapistService interface {
	RegisterTherapist(ctx context.Context, caller *entity.User, req *dto.TherapistRegistrationRequest) (*entity.TherapistProfile, error)
	GetTherapists(ctx context.Context) ([]*entity.TherapistProfile, error)
	SetAvailability(ctx context.Context, caller *entity.User, req *dto.UpdateAvailabilityRequest) error
}

type therapistService struct {
	therapistRepo    contract.TherapistRepository
	availabilityRepo contract.AvailabilityRepository
}

func NewTherapistService(therapistRepo contract.TherapistRepository, availabilityRepo contract.AvailabilityRepository) ITherapistService {
	return &therapistService{
		therapistRepo:    therapistRepo,
		availabilityRepo: availabilityRepo,
	}
}

func (s *therapistService) RegisterTherapist(ctx context.Context, caller *entity.User, req *dto.TherapistRegistrationRequest) (*entity.TherapistProfile, error) {
	if caller.Role != entity.UserRoleTherapist {
		return nil, apperror.Forbidden("Only therapists can register as therapists")
	}

	existing, err := s.therapistRepo.FindOne(ctx, specification.ByUserId{UserId: caller.Id})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Therapist profile already exists")
	}

	profile := &entity.TherapistProfile{
		Id:              uuid.NewString(),
		UserId:          caller.Id,
		LicenseNumber:   req.LicenseNumber,
		Specialization:  req.Specialization,
		HourlyRate:      req.HourlyRate,
		Bio:             req.Bio,
		YearsExperience: req.YearsExperience,
		IsAvailable:     true,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.therapistRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *therapistService) GetTherapists(ctx context.Context) ([]*entity.TherapistProfile, error) {
	return s.therapistRepo.FindAll(ctx, therapistListLimit, specification.OnlyAvailable{})
}

func (s *therapistService) SetAvailability(ctx context.Context, caller *entity.User, req *dto.UpdateAvailabilityRequest) error {
	profile, err := s.therapistRepo.FindOne(ctx, specification.ByUserId{UserId: caller.Id})
	if err != nil {
		return err
	}
	if profile == nil {
		return apperror.NotFound("Therapist profile not found")
	}

	slots := make([]entity.AvailabilitySlot, 0, len(req.Availability))
	for _, slot := range req.Availability {
		slots = append(slots, slot.ToEntity())
	}

	return s.availabilityRepo.Upsert(ctx, &entity.TherapistAvailability{
		TherapistId:  profile.Id,
		Availability: slots,
		UpdatedAt:    time.Now().UTC(),
	})
}
