package services

import (
	"MediDesk/models"
	"MediDesk/utils"
	"context"
	"testing"
)

func authFixture(t *testing.T) (*fakeUserRepo, AuthService) {
	t.Helper()
	hash, err := utils.HashPassword("Secur3P@ss")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	repo := newFakeUserRepo()
	repo.users[1] = &models.User{ID: 1, Username: "asha", Email: "asha@hospital.com", PasswordHash: hash, Role: models.RoleDoctor, IsActive: true}
	repo.users[2] = &models.User{ID: 2, Username: "ravi", Email: "ravi@example.com", PasswordHash: hash, Role: models.RolePatient, IsActive: false}
	return repo, NewAuthService(repo)
}

func TestAuthenticate(t *testing.T) {
	_, service := authFixture(t)

	user, err := service.Authenticate(context.Background(), "asha", "Secur3P@ss")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if user.Role != models.RoleDoctor {
		t.Errorf("role = %q, want %q", user.Role, models.RoleDoctor)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	_, service := authFixture(t)
	ctx := context.Background()

	cases := map[string]struct{ username, password string }{
		"wrong password":   {"asha", "WrongP@ss1"},
		"unknown username": {"nobody", "Secur3P@ss"},
		"inactive account": {"ravi", "Secur3P@ss"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := service.Authenticate(ctx, tc.username, tc.password)
			if !utils.IsKind(err, utils.KindUnauthenticated) {
				t.Fatalf("Authenticate() error = %v, want Unauthenticated", err)
			}
			// All failures share one message so callers cannot probe accounts.
			de := utils.AsDomainError(err)
			if de.Message != "invalid username or password, or account is inactive" {
				t.Errorf("message = %q leaks failure cause", de.Message)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	_, service := authFixture(t)

	user, err := service.GetProfile(context.Background(), models.Principal{UserID: 1, Role: models.RoleDoctor})
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if user.Username != "asha" {
		t.Errorf("username = %q, want asha", user.Username)
	}

	if _, err := service.GetProfile(context.Background(), models.Principal{UserID: 404}); !utils.IsKind(err, utils.KindNotFound) {
		t.Fatalf("GetProfile() for missing user error = %v, want NotFound", err)
	}
}

func TestResetPasswordRejectsBadCode(t *testing.T) {
	_, service := authFixture(t)

	err := service.ResetPassword(context.Background(), "unknown@example.com", "123456", "N3wSecur3P@ss")
	if !utils.IsKind(err, utils.KindValidation) {
		t.Fatalf("ResetPassword() error = %v, want Validation", err)
	}
}
