package services

import (
	"MediDesk/models"
	"MediDesk/utils"
	"context"
	"testing"
)

func schedulerFixture() (*fakeAppointmentRepo, *fakeDoctorRepo, *fakePatientRepo, AppointmentService) {
	doctorRepo := newFakeDoctorRepo(&models.Doctor{ID: 1, UserID: 10, FullName: "Dr. Asha Rao", DepartmentID: 1, Specialization: "Cardiology"})
	patientRepo := newFakePatientRepo(
		&models.Patient{ID: 1, UserID: 20, FullName: "Ravi Kumar"},
		&models.Patient{ID: 2, UserID: 21, FullName: "Meena Iyer"},
	)
	appointmentRepo := newFakeAppointmentRepo()
	service := NewAppointmentService(appointmentRepo, doctorRepo, patientRepo)
	return appointmentRepo, doctorRepo, patientRepo, service
}

var (
	patientPrincipal      = models.Principal{UserID: 20, Role: models.RolePatient}
	otherPatientPrincipal = models.Principal{UserID: 21, Role: models.RolePatient}
	doctorPrincipal       = models.Principal{UserID: 10, Role: models.RoleDoctor}
)

func TestBookAppointment(t *testing.T) {
	_, _, _, service := schedulerFixture()
	ctx := context.Background()

	appointment, err := service.Book(ctx, patientPrincipal, BookingInput{
		DoctorID: 1, Date: "2026-09-10", Time: "10:00", Reason: "chest pain",
	})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if appointment.Status != models.StatusBooked {
		t.Errorf("status = %q, want %q", appointment.Status, models.StatusBooked)
	}
	if appointment.PatientID != 1 {
		t.Errorf("patient ID = %d, want 1", appointment.PatientID)
	}
}

func TestBookOccupiedSlot(t *testing.T) {
	_, _, _, service := schedulerFixture()
	ctx := context.Background()

	input := BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"}
	if _, err := service.Book(ctx, patientPrincipal, input); err != nil {
		t.Fatalf("first Book() error = %v", err)
	}

	_, err := service.Book(ctx, otherPatientPrincipal, input)
	if !utils.IsKind(err, utils.KindSlotTaken) {
		t.Fatalf("second Book() error = %v, want SlotTaken", err)
	}
}

// A cancelled appointment keeps the slot occupied; rebooking the same slot
// must still fail.
func TestBookSlotOfCancelledAppointment(t *testing.T) {
	_, _, _, service := schedulerFixture()
	ctx := context.Background()

	input := BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"}
	appointment, err := service.Book(ctx, patientPrincipal, input)
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if err := service.Cancel(ctx, patientPrincipal, appointment.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	if _, err := service.Book(ctx, otherPatientPrincipal, input); !utils.IsKind(err, utils.KindSlotTaken) {
		t.Fatalf("Book() on cancelled slot error = %v, want SlotTaken", err)
	}
}

func TestBookUnknownDoctor(t *testing.T) {
	_, _, _, service := schedulerFixture()

	_, err := service.Book(context.Background(), patientPrincipal, BookingInput{
		DoctorID: 99, Date: "2026-09-10", Time: "10:00",
	})
	if !utils.IsKind(err, utils.KindNotFound) {
		t.Fatalf("Book() error = %v, want NotFound", err)
	}
}

func TestBookInvalidSlot(t *testing.T) {
	_, _, _, service := schedulerFixture()

	_, err := service.Book(context.Background(), patientPrincipal, BookingInput{
		DoctorID: 1, Date: "10/09/2026", Time: "10:00",
	})
	if !utils.IsKind(err, utils.KindValidation) {
		t.Fatalf("Book() error = %v, want Validation", err)
	}
}

func TestBookWithoutPatientProfile(t *testing.T) {
	_, _, _, service := schedulerFixture()

	_, err := service.Book(context.Background(), models.Principal{UserID: 999, Role: models.RolePatient}, BookingInput{
		DoctorID: 1, Date: "2026-09-10", Time: "10:00",
	})
	if !utils.IsKind(err, utils.KindForbidden) {
		t.Fatalf("Book() error = %v, want Forbidden", err)
	}
}

func TestCancelByOwnerAndProvider(t *testing.T) {
	for name, principal := range map[string]models.Principal{
		"patient": patientPrincipal,
		"doctor":  doctorPrincipal,
	} {
		t.Run(name, func(t *testing.T) {
			repo, _, _, service := schedulerFixture()
			ctx := context.Background()
			appointment, err := service.Book(ctx, patientPrincipal, BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"})
			if err != nil {
				t.Fatalf("Book() error = %v", err)
			}

			if err := service.Cancel(ctx, principal, appointment.ID); err != nil {
				t.Fatalf("Cancel() error = %v", err)
			}
			stored, _ := repo.GetByID(ctx, appointment.ID)
			if stored.Status != models.StatusCancelled {
				t.Errorf("status = %q, want %q", stored.Status, models.StatusCancelled)
			}
		})
	}
}

func TestCancelByStranger(t *testing.T) {
	_, _, _, service := schedulerFixture()
	ctx := context.Background()

	appointment, err := service.Book(ctx, patientPrincipal, BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	if err := service.Cancel(ctx, otherPatientPrincipal, appointment.ID); !utils.IsKind(err, utils.KindForbidden) {
		t.Fatalf("Cancel() by other patient error = %v, want Forbidden", err)
	}
}

func TestCancelNonBooked(t *testing.T) {
	repo, _, _, service := schedulerFixture()
	ctx := context.Background()

	appointment, err := service.Book(ctx, patientPrincipal, BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if err := repo.UpdateStatus(ctx, appointment.ID, models.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	if err := service.Cancel(ctx, patientPrincipal, appointment.ID); !utils.IsKind(err, utils.KindInvalidTransition) {
		t.Fatalf("Cancel() of completed appointment error = %v, want InvalidTransition", err)
	}
}

func TestCancelMissingAppointment(t *testing.T) {
	_, _, _, service := schedulerFixture()

	if err := service.Cancel(context.Background(), patientPrincipal, 404); !utils.IsKind(err, utils.KindNotFound) {
		t.Fatalf("Cancel() error = %v, want NotFound", err)
	}
}

func TestCompleteAppointment(t *testing.T) {
	_, _, _, service := schedulerFixture()
	ctx := context.Background()

	appointment, err := service.Book(ctx, patientPrincipal, BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	completed, err := service.Complete(ctx, doctorPrincipal, appointment.ID, TreatmentInput{
		Diagnosis: "angina", Prescription: "nitroglycerin", Notes: "follow up in two weeks",
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if completed.Status != models.StatusCompleted {
		t.Errorf("status = %q, want %q", completed.Status, models.StatusCompleted)
	}
	if completed.Treatment == nil || completed.Treatment.Diagnosis != "angina" {
		t.Errorf("treatment not attached: %+v", completed.Treatment)
	}
}

// Completing an already completed appointment replaces the treatment record
// instead of creating a second one.
func TestCompleteTwiceUpdatesTreatment(t *testing.T) {
	_, _, _, service := schedulerFixture()
	ctx := context.Background()

	appointment, err := service.Book(ctx, patientPrincipal, BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if _, err := service.Complete(ctx, doctorPrincipal, appointment.ID, TreatmentInput{Diagnosis: "angina"}); err != nil {
		t.Fatalf("first Complete() error = %v", err)
	}

	completed, err := service.Complete(ctx, doctorPrincipal, appointment.ID, TreatmentInput{Diagnosis: "stable angina"})
	if err != nil {
		t.Fatalf("second Complete() error = %v", err)
	}
	if completed.Treatment.Diagnosis != "stable angina" {
		t.Errorf("diagnosis = %q, want updated value", completed.Treatment.Diagnosis)
	}
}

func TestCompleteCancelledAppointment(t *testing.T) {
	_, _, _, service := schedulerFixture()
	ctx := context.Background()

	appointment, err := service.Book(ctx, patientPrincipal, BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if err := service.Cancel(ctx, patientPrincipal, appointment.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	_, err = service.Complete(ctx, doctorPrincipal, appointment.ID, TreatmentInput{Diagnosis: "angina"})
	if !utils.IsKind(err, utils.KindInvalidTransition) {
		t.Fatalf("Complete() of cancelled appointment error = %v, want InvalidTransition", err)
	}
}

func TestCompleteByWrongDoctor(t *testing.T) {
	_, doctorRepo, _, service := schedulerFixture()
	ctx := context.Background()
	doctorRepo.doctors[2] = &models.Doctor{ID: 2, UserID: 11, FullName: "Dr. Vikram Shah", DepartmentID: 1, Specialization: "Neurology"}

	appointment, err := service.Book(ctx, patientPrincipal, BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	_, err = service.Complete(ctx, models.Principal{UserID: 11, Role: models.RoleDoctor}, appointment.ID, TreatmentInput{Diagnosis: "angina"})
	if !utils.IsKind(err, utils.KindForbidden) {
		t.Fatalf("Complete() by other doctor error = %v, want Forbidden", err)
	}
}

func TestCompleteRequiresDiagnosis(t *testing.T) {
	_, _, _, service := schedulerFixture()
	ctx := context.Background()

	appointment, err := service.Book(ctx, patientPrincipal, BookingInput{DoctorID: 1, Date: "2026-09-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	_, err = service.Complete(ctx, doctorPrincipal, appointment.ID, TreatmentInput{Prescription: "rest"})
	if !utils.IsKind(err, utils.KindValidation) {
		t.Fatalf("Complete() without diagnosis error = %v, want Validation", err)
	}
}

func TestStats(t *testing.T) {
	_, _, _, service := schedulerFixture()
	ctx := context.Background()

	if _, err := service.Book(ctx, patientPrincipal, BookingInput{DoctorID: 1, Date: utils.DaysAhead(1), Time: "10:00"}); err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	stats, err := service.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalDoctors != 1 || stats.TotalPatients != 2 {
		t.Errorf("directory counts = %d/%d, want 1/2", stats.TotalDoctors, stats.TotalPatients)
	}
	if stats.TotalAppointments != 1 || stats.UpcomingAppointments != 1 {
		t.Errorf("appointment counts = %d/%d, want 1/1", stats.TotalAppointments, stats.UpcomingAppointments)
	}
}
