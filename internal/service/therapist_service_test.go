package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thrapy-be/internal/dto"
	"thrapy-be/internal/entity"
	"thrapy-be/internal/pkg/apperror"
)

func therapistUser() *entity.User {
	return &entity.User{Id: "user-t", Email: "t@example.com", Role: entity.UserRoleTherapist}
}

func registrationRequest() *dto.TherapistRegistrationRequest {
	return &dto.TherapistRegistrationRequest{
		LicenseNumber:   "LIC-42",
		Specialization:  "CBT",
		HourlyRate:      80,
		Bio:             "Licensed therapist",
		YearsExperience: 7,
	}
}

func TestRegisterTherapistRoleGuard(t *testing.T) {
	svc := NewTherapistService(&fakeTherapistRepo{}, &fakeAvailabilityRepo{})

	_, err := svc.RegisterTherapist(context.Background(), clientUser(), registrationRequest())
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Status)
	assert.Equal(t, "Only therapists can register as therapists", appErr.Message)
}

func TestRegisterTherapistDuplicateProfile(t *testing.T) {
	therapistRepo := &fakeTherapistRepo{}
	svc := NewTherapistService(therapistRepo, &fakeAvailabilityRepo{})

	profile, err := svc.RegisterTherapist(context.Background(), therapistUser(), registrationRequest())
	require.NoError(t, err)
	assert.True(t, profile.IsAvailable, "new profiles default to available")
	assert.Equal(t, "user-t", profile.UserId)

	_, err = svc.RegisterTherapist(context.Background(), therapistUser(), registrationRequest())
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Therapist profile already exists", appErr.Message)
	assert.Len(t, therapistRepo.profiles, 1)
}

func TestGetTherapistsFiltersUnavailable(t *testing.T) {
	therapistRepo := &fakeTherapistRepo{profiles: []*entity.TherapistProfile{
		{Id: "t-1", UserId: "u-1", IsAvailable: true},
		{Id: "t-2", UserId: "u-2", IsAvailable: false},
		{Id: "t-3", UserId: "u-3", IsAvailable: true},
	}}
	svc := NewTherapistService(therapistRepo, &fakeAvailabilityRepo{})

	therapists, err := svc.GetTherapists(context.Background())
	require.NoError(t, err)
	require.Len(t, therapists, 2)
	for _, th := range therapists {
		assert.True(t, th.IsAvailable)
	}
}

func TestSetAvailabilityWithoutProfile(t *testing.T) {
	svc := NewTherapistService(&fakeTherapistRepo{}, &fakeAvailabilityRepo{})

	err := svc.SetAvailability(context.Background(), therapistUser(), &dto.UpdateAvailabilityRequest{
		Availability: []dto.AvailabilitySlotDTO{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}},
	})
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Therapist profile not found", appErr.Message)
}

func TestSetAvailabilityReplacesWholesale(t *testing.T) {
	therapistRepo := &fakeTherapistRepo{}
	availabilityRepo := &fakeAvailabilityRepo{}
	svc := NewTherapistService(therapistRepo, availabilityRepo)

	profile, err := svc.RegisterTherapist(context.Background(), therapistUser(), registrationRequest())
	require.NoError(t, err)

	err = svc.SetAvailability(context.Background(), therapistUser(), &dto.UpdateAvailabilityRequest{
		Availability: []dto.AvailabilitySlotDTO{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			{DayOfWeek: 3, StartTime: "10:00", EndTime: "14:00"},
		},
	})
	require.NoError(t, err)

	err = svc.SetAvailability(context.Background(), therapistUser(), &dto.UpdateAvailabilityRequest{
		Availability: []dto.AvailabilitySlotDTO{
			{DayOfWeek: 5, StartTime: "08:00", EndTime: "12:00"},
		},
	})
	require.NoError(t, err)

	// One document per therapist, latest slots only.
	require.Len(t, availabilityRepo.upserted, 1)
	doc := availabilityRepo.upserted[0]
	assert.Equal(t, profile.Id, doc.TherapistId)
	require.Len(t, doc.Availability, 1)
	assert.Equal(t, 5, doc.Availability[0].DayOfWeek)
}

func TestSetAvailabilitySlotsNotValidated(t *testing.T) {
	therapistRepo := &fakeTherapistRepo{}
	availabilityRepo := &fakeAvailabilityRepo{}
	svc := NewTherapistService(therapistRepo, availabilityRepo)

	_, err := svc.RegisterTherapist(context.Background(), therapistUser(), registrationRequest())
	require.NoError(t, err)

	// Overlapping and reversed slots are stored as-is.
	err = svc.SetAvailability(context.Background(), therapistUser(), &dto.UpdateAvailabilityRequest{
		Availability: []dto.AvailabilitySlotDTO{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			{DayOfWeek: 1, StartTime: "16:00", EndTime: "10:00"},
		},
	})
	require.NoError(t, err)
	require.Len(t, availabilityRepo.upserted, 1)
	assert.Len(t, availabilityRepo.upserted[0].Availability, 2)
}
