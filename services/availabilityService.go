package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
)

// Availability listings cover the next seven days.
const availabilityWindowDays = 7

type DeclareWindowInput struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityService interface {
	DeclareWindow(ctx context.Context, principal models.Principal, input DeclareWindowInput) (*models.DoctorAvailability, error)
	ListOwnUpcoming(ctx context.Context, principal models.Principal) ([]models.DoctorAvailability, error)
	ListForDoctor(ctx context.Context, doctorID uint) ([]models.DoctorAvailability, error)
}

type availabilityService struct {
	availabilityRepo repositories.AvailabilityRepository
	doctorRepo       repositories.DoctorRepository
}

func NewAvailabilityService(
	availabilityRepo repositories.AvailabilityRepository,
	doctorRepo repositories.DoctorRepository,
) AvailabilityService {
	return &availabilityService{
		availabilityRepo: availabilityRepo,
		doctorRepo:       doctorRepo,
	}
}

// DeclareWindow records an open window for the principal's own doctor
// profile. Declaring a second window with the same (doctor, date, start)
// fails with DuplicateSlot and writes nothing.
func (s *availabilityService) DeclareWindow(ctx context.Context, principal models.Principal, input DeclareWindowInput) (*models.DoctorAvailability, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}

	if err := utils.ValidateAvailabilityWindow(input.Date, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	availability := &models.DoctorAvailability{
		DoctorID:    doctor.ID,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		IsAvailable: true,
	}
	if err := s.availabilityRepo.Create(ctx, availability); err != nil {
		return nil, err
	}
	return availability, nil
}

// ListOwnUpcoming returns the declaring doctor's own windows for the next
// seven days, unavailable ones included.
func (s *availabilityService) ListOwnUpcoming(ctx context.Context, principal models.Principal) ([]models.DoctorAvailability, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	return s.availabilityRepo.ListUpcoming(ctx, doctor.ID, utils.Today(), utils.DaysAhead(availabilityWindowDays), false)
}

// ListForDoctor is the patient-facing view: available windows only, ordered
// by (date, start time). A window stays listed even after a matching slot is
// booked; only the appointment constraint prevents double booking.
func (s *availabilityService) ListForDoctor(ctx context.Context, doctorID uint) ([]models.DoctorAvailability, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindNotFound, "doctor not found")
	}
	return s.availabilityRepo.ListUpcoming(ctx, doctorID, utils.Today(), utils.DaysAhead(availabilityWindowDays), true)
}
