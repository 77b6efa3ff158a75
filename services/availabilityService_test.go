package services

import (
	"MediDesk/models"
	"MediDesk/utils"
	"context"
	"testing"
)

func availabilityFixture() (*fakeAvailabilityRepo, AvailabilityService) {
	doctorRepo := newFakeDoctorRepo(&models.Doctor{ID: 1, UserID: 10, FullName: "Dr. Asha Rao", DepartmentID: 1, Specialization: "Cardiology"})
	repo := &fakeAvailabilityRepo{}
	return repo, NewAvailabilityService(repo, doctorRepo)
}

func TestDeclareWindow(t *testing.T) {
	_, service := availabilityFixture()

	window, err := service.DeclareWindow(context.Background(), doctorPrincipal, DeclareWindowInput{
		Date: "2026-09-10", StartTime: "09:00", EndTime: "12:00",
	})
	if err != nil {
		t.Fatalf("DeclareWindow() error = %v", err)
	}
	if !window.IsAvailable {
		t.Error("declared window should start out available")
	}
	if window.DoctorID != 1 {
		t.Errorf("doctor ID = %d, want 1", window.DoctorID)
	}
}

func TestDeclareDuplicateWindow(t *testing.T) {
	_, service := availabilityFixture()
	ctx := context.Background()

	input := DeclareWindowInput{Date: "2026-09-10", StartTime: "09:00", EndTime: "12:00"}
	if _, err := service.DeclareWindow(ctx, doctorPrincipal, input); err != nil {
		t.Fatalf("first DeclareWindow() error = %v", err)
	}

	// Same start, different end: still a duplicate.
	input.EndTime = "13:00"
	_, err := service.DeclareWindow(ctx, doctorPrincipal, input)
	if !utils.IsKind(err, utils.KindDuplicateSlot) {
		t.Fatalf("second DeclareWindow() error = %v, want DuplicateSlot", err)
	}
}

func TestDeclareWindowValidation(t *testing.T) {
	_, service := availabilityFixture()
	ctx := context.Background()

	cases := map[string]DeclareWindowInput{
		"start after end":  {Date: "2026-09-10", StartTime: "14:00", EndTime: "12:00"},
		"start equals end": {Date: "2026-09-10", StartTime: "12:00", EndTime: "12:00"},
		"bad date":         {Date: "10-09-2026", StartTime: "09:00", EndTime: "12:00"},
		"bad time":         {Date: "2026-09-10", StartTime: "9am", EndTime: "12:00"},
		"missing date":     {StartTime: "09:00", EndTime: "12:00"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := service.DeclareWindow(ctx, doctorPrincipal, input); !utils.IsKind(err, utils.KindValidation) {
				t.Fatalf("DeclareWindow() error = %v, want Validation", err)
			}
		})
	}
}

func TestDeclareWindowWithoutDoctorProfile(t *testing.T) {
	_, service := availabilityFixture()

	_, err := service.DeclareWindow(context.Background(), models.Principal{UserID: 999, Role: models.RoleDoctor}, DeclareWindowInput{
		Date: "2026-09-10", StartTime: "09:00", EndTime: "12:00",
	})
	if !utils.IsKind(err, utils.KindForbidden) {
		t.Fatalf("DeclareWindow() error = %v, want Forbidden", err)
	}
}

func TestListForDoctorFiltersUnavailable(t *testing.T) {
	repo, service := availabilityFixture()
	ctx := context.Background()

	repo.windows = append(repo.windows,
		&models.DoctorAvailability{ID: 1, DoctorID: 1, Date: utils.DaysAhead(1), StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
		&models.DoctorAvailability{ID: 2, DoctorID: 1, Date: utils.DaysAhead(2), StartTime: "09:00", EndTime: "12:00", IsAvailable: false},
	)

	windows, err := service.ListForDoctor(ctx, 1)
	if err != nil {
		t.Fatalf("ListForDoctor() error = %v", err)
	}
	if len(windows) != 1 || windows[0].ID != 1 {
		t.Errorf("ListForDoctor() = %+v, want only the available window", windows)
	}

	own, err := service.ListOwnUpcoming(ctx, doctorPrincipal)
	if err != nil {
		t.Fatalf("ListOwnUpcoming() error = %v", err)
	}
	if len(own) != 2 {
		t.Errorf("ListOwnUpcoming() returned %d windows, want 2", len(own))
	}
}

func TestListForUnknownDoctor(t *testing.T) {
	_, service := availabilityFixture()

	if _, err := service.ListForDoctor(context.Background(), 99); !utils.IsKind(err, utils.KindNotFound) {
		t.Fatalf("ListForDoctor() error = %v, want NotFound", err)
	}
}
