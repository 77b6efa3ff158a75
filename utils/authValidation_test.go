package utils

import "testing"

func TestValidateCredentials(t *testing.T) {
	if err := ValidateCredentials("asha", "asha@hospital.com", "Secur3P@ss"); err != nil {
		t.Fatalf("ValidateCredentials() error = %v", err)
	}

	cases := map[string]struct{ username, email, password string }{
		"short username": {"ab", "asha@hospital.com", "Secur3P@ss"},
		"bad email":      {"asha", "not-an-email", "Secur3P@ss"},
		"short password": {"asha", "asha@hospital.com", "S3cu@r"},
		"no uppercase":   {"asha", "asha@hospital.com", "secur3p@ss"},
		"no digit":       {"asha", "asha@hospital.com", "SecurePa@ss"},
		"no special":     {"asha", "asha@hospital.com", "Secur3Pass"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateCredentials(tc.username, tc.email, tc.password)
			if !IsKind(err, KindValidation) {
				t.Fatalf("ValidateCredentials() error = %v, want Validation", err)
			}
		})
	}
}

func TestValidateAvailabilityWindow(t *testing.T) {
	if err := ValidateAvailabilityWindow("2026-09-10", "09:00", "12:00"); err != nil {
		t.Fatalf("ValidateAvailabilityWindow() error = %v", err)
	}

	cases := map[string]struct{ date, start, end string }{
		"start after end":  {"2026-09-10", "14:00", "12:00"},
		"start equals end": {"2026-09-10", "12:00", "12:00"},
		"bad date layout":  {"10/09/2026", "09:00", "12:00"},
		"bad clock layout": {"2026-09-10", "9:00am", "12:00"},
		"empty date":       {"", "09:00", "12:00"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateAvailabilityWindow(tc.date, tc.start, tc.end)
			if !IsKind(err, KindValidation) {
				t.Fatalf("ValidateAvailabilityWindow() error = %v, want Validation", err)
			}
		})
	}
}

func TestValidateSlot(t *testing.T) {
	if err := ValidateSlot("2026-09-10", "10:30"); err != nil {
		t.Fatalf("ValidateSlot() error = %v", err)
	}
	if err := ValidateSlot("2026-9-1", "10:30"); !IsKind(err, KindValidation) {
		t.Fatalf("ValidateSlot() error = %v, want Validation", err)
	}
	if err := ValidateSlot("2026-09-10", "25:00"); !IsKind(err, KindValidation) {
		t.Fatalf("ValidateSlot() error = %v, want Validation", err)
	}
}

func TestValidateDateOfBirth(t *testing.T) {
	if err := ValidateDateOfBirth(""); err != nil {
		t.Fatalf("ValidateDateOfBirth(empty) error = %v, want nil", err)
	}
	if err := ValidateDateOfBirth("1990-04-12"); err != nil {
		t.Fatalf("ValidateDateOfBirth() error = %v", err)
	}
	if err := ValidateDateOfBirth("12-04-1990"); !IsKind(err, KindValidation) {
		t.Fatalf("ValidateDateOfBirth() error = %v, want Validation", err)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secur3P@ss")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword(hash, "Secur3P@ss") {
		t.Error("CheckPassword() = false for correct password")
	}
	if CheckPassword(hash, "WrongP@ss1") {
		t.Error("CheckPassword() = true for wrong password")
	}
}
