package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
)

type BookingInput struct {
	DoctorID uint   `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
}

type TreatmentInput struct {
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

type DashboardStats struct {
	TotalDoctors         int64 `json:"total_doctors"`
	TotalPatients        int64 `json:"total_patients"`
	TotalAppointments    int64 `json:"total_appointments"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
}

type AppointmentService interface {
	Book(ctx context.Context, principal models.Principal, input BookingInput) (*models.Appointment, error)
	Cancel(ctx context.Context, principal models.Principal, appointmentID uint) error
	Complete(ctx context.Context, principal models.Principal, appointmentID uint, input TreatmentInput) (*models.Appointment, error)
	ListOwn(ctx context.Context, principal models.Principal) ([]models.Appointment, error)
	UpcomingOwn(ctx context.Context, principal models.Principal) ([]models.Appointment, error)
	HistoryOwn(ctx context.Context, principal models.Principal) ([]models.Appointment, error)
	ListForDoctor(ctx context.Context, principal models.Principal) ([]models.Appointment, error)
	WeekAheadForDoctor(ctx context.Context, principal models.Principal) ([]models.Appointment, error)
	PatientHistoryForDoctor(ctx context.Context, principal models.Principal, patientID uint) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	Stats(ctx context.Context) (*DashboardStats, error)
}

type appointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	doctorRepo      repositories.DoctorRepository
	patientRepo     repositories.PatientRepository
}

func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	doctorRepo repositories.DoctorRepository,
	patientRepo repositories.PatientRepository,
) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
	}
}

// Book creates an appointment for the principal's own patient profile. The
// slot-uniqueness race is resolved by the database constraint inside the
// repository, which reports SlotTaken for any occupied slot, cancelled
// bookings included.
func (s *appointmentService) Book(ctx context.Context, principal models.Principal, input BookingInput) (*models.Appointment, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}

	if err := utils.ValidateSlot(input.Date, input.Time); err != nil {
		return nil, err
	}

	doctor, err := s.doctorRepo.GetByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindNotFound, "doctor not found")
	}

	appointment := &models.Appointment{
		PatientID: patient.ID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		Time:      input.Time,
		Status:    models.StatusBooked,
		Reason:    input.Reason,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Cancel moves a Booked appointment to Cancelled. Both roles get the same
// guard: only Booked appointments can be cancelled. Only the owning patient
// or the providing doctor may cancel.
func (s *appointmentService) Cancel(ctx context.Context, principal models.Principal, appointmentID uint) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return utils.NewDomainError(utils.KindNotFound, "appointment not found")
	}

	if err := s.authorize(ctx, principal, appointment); err != nil {
		return err
	}

	if appointment.Status != models.StatusBooked {
		return utils.NewDomainError(utils.KindInvalidTransition, "only booked appointments can be cancelled")
	}
	return s.appointmentRepo.UpdateStatus(ctx, appointmentID, models.StatusCancelled)
}

// Complete marks the appointment Completed and attaches the treatment
// record, updating it in place on repeat completion. Cancelled appointments
// cannot be completed.
func (s *appointmentService) Complete(ctx context.Context, principal models.Principal, appointmentID uint, input TreatmentInput) (*models.Appointment, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, utils.NewDomainError(utils.KindNotFound, "appointment not found")
	}
	if appointment.DoctorID != doctor.ID {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	if appointment.Status == models.StatusCancelled {
		return nil, utils.NewDomainError(utils.KindInvalidTransition, "cancelled appointments cannot be completed")
	}

	if err := utils.ValidateTreatment(input.Diagnosis); err != nil {
		return nil, err
	}

	treatment := &models.Treatment{
		Diagnosis:    input.Diagnosis,
		Prescription: input.Prescription,
		Notes:        input.Notes,
	}
	if err := s.appointmentRepo.Complete(ctx, appointmentID, treatment); err != nil {
		return nil, err
	}
	return s.appointmentRepo.GetByID(ctx, appointmentID)
}

// authorize checks that the principal owns the appointment from its side of
// the booking. Failures carry a generic message so record existence is not
// leaked beyond the denial.
func (s *appointmentService) authorize(ctx context.Context, principal models.Principal, appointment *models.Appointment) error {
	switch principal.Role {
	case models.RolePatient:
		patient, err := s.patientRepo.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return err
		}
		if patient == nil || appointment.PatientID != patient.ID {
			return utils.NewDomainError(utils.KindForbidden, "access denied")
		}
	case models.RoleDoctor:
		doctor, err := s.doctorRepo.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return err
		}
		if doctor == nil || appointment.DoctorID != doctor.ID {
			return utils.NewDomainError(utils.KindForbidden, "access denied")
		}
	default:
		return utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	return nil
}

func (s *appointmentService) ListOwn(ctx context.Context, principal models.Principal) ([]models.Appointment, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	return s.appointmentRepo.ListByPatient(ctx, patient.ID)
}

func (s *appointmentService) UpcomingOwn(ctx context.Context, principal models.Principal) ([]models.Appointment, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	return s.appointmentRepo.UpcomingByPatient(ctx, patient.ID, utils.Today())
}

func (s *appointmentService) HistoryOwn(ctx context.Context, principal models.Principal) ([]models.Appointment, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	return s.appointmentRepo.CompletedByPatient(ctx, patient.ID)
}

func (s *appointmentService) ListForDoctor(ctx context.Context, principal models.Principal) ([]models.Appointment, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	return s.appointmentRepo.ListByDoctor(ctx, doctor.ID)
}

func (s *appointmentService) WeekAheadForDoctor(ctx context.Context, principal models.Principal) ([]models.Appointment, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	return s.appointmentRepo.UpcomingByDoctor(ctx, doctor.ID, utils.Today(), utils.DaysAhead(availabilityWindowDays))
}

// PatientHistoryForDoctor shows a doctor the completed appointments they had
// with one patient, not the patient's full record.
func (s *appointmentService) PatientHistoryForDoctor(ctx context.Context, principal models.Principal, patientID uint) ([]models.Appointment, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NewDomainError(utils.KindNotFound, "patient not found")
	}
	return s.appointmentRepo.CompletedByPatientAndDoctor(ctx, patientID, doctor.ID)
}

func (s *appointmentService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return s.appointmentRepo.GetAll(ctx)
}

func (s *appointmentService) Stats(ctx context.Context) (*DashboardStats, error) {
	totalDoctors, err := s.doctorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPatients, err := s.patientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	total, upcoming, err := s.appointmentRepo.Counts(ctx, utils.Today())
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalDoctors:         totalDoctors,
		TotalPatients:        totalPatients,
		TotalAppointments:    total,
		UpcomingAppointments: upcoming,
	}, nil
}
