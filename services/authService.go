package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
	"fmt"
	"log"
)

// invalidCredentialsMessage is deliberately generic: it must not reveal
// whether the username exists or the account was deactivated.
const invalidCredentialsMessage = "invalid username or password, or account is inactive"

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetProfile(ctx context.Context, principal models.Principal) (*models.User, error)
	SendResetCode(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, resetCode, newPassword string) error
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Authenticate verifies credentials. Deactivated accounts fail even with the
// correct password.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) || !user.IsActive {
		return nil, utils.NewDomainError(utils.KindUnauthenticated, invalidCredentialsMessage)
	}
	return user, nil
}

func (s *authService) GetProfile(ctx context.Context, principal models.Principal) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewDomainError(utils.KindNotFound, "account not found")
	}
	return user, nil
}

// SendResetCode issues a short-lived reset code and emails it to the account
// holder. The response does not reveal whether the email is registered.
func (s *authService) SendResetCode(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		log.Printf("Reset code requested for unknown or inactive email")
		return nil
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, email, code); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	return utils.SendResetCodeEmail(email, code)
}

func (s *authService) ResetPassword(ctx context.Context, email, resetCode, newPassword string) error {
	if err := utils.ValidatePasswordReset(resetCode, newPassword); err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.NewDomainError(utils.KindValidation, "invalid reset code")
	}

	stored, err := utils.GetResetCode(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to load reset code: %w", err)
	}
	if stored == nil || *stored != resetCode {
		return utils.NewDomainError(utils.KindValidation, "invalid reset code")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		return err
	}
	return utils.DeleteResetCode(ctx, email)
}
