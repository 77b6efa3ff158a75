package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
	"fmt"
)

type RegisterPatientInput struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	FullName         string `json:"full_name"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	ContactNumber    string `json:"contact_number"`
	Address          string `json:"address"`
	BloodGroup       string `json:"blood_group"`
	EmergencyContact string `json:"emergency_contact"`
}

type UpdatePatientInput struct {
	FullName         string `json:"full_name"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	ContactNumber    string `json:"contact_number"`
	Address          string `json:"address"`
	BloodGroup       string `json:"blood_group"`
	EmergencyContact string `json:"emergency_contact"`
}

type PatientService interface {
	Register(ctx context.Context, input RegisterPatientInput) (*models.Patient, error)
	GetByID(ctx context.Context, id uint) (*models.Patient, error)
	GetByPrincipal(ctx context.Context, principal models.Principal) (*models.Patient, error)
	Search(ctx context.Context, query string) ([]models.Patient, error)
	UpdateOwnProfile(ctx context.Context, principal models.Principal, input UpdatePatientInput) (*models.Patient, error)
	Update(ctx context.Context, id uint, input UpdatePatientInput) (*models.Patient, error)
	Deactivate(ctx context.Context, id uint) error
}

type patientService struct {
	patientRepo repositories.PatientRepository
	userRepo    repositories.UserRepository
}

func NewPatientService(patientRepo repositories.PatientRepository, userRepo repositories.UserRepository) PatientService {
	return &patientService{patientRepo: patientRepo, userRepo: userRepo}
}

// Register is the public self-registration path: creates a patient account
// and profile in one transaction.
func (s *patientService) Register(ctx context.Context, input RegisterPatientInput) (*models.Patient, error) {
	if err := utils.ValidateCredentials(input.Username, input.Email, input.Password); err != nil {
		return nil, err
	}
	if input.FullName == "" {
		return nil, utils.NewDomainError(utils.KindValidation, "full name is required")
	}
	if err := utils.ValidateDateOfBirth(input.DateOfBirth); err != nil {
		return nil, err
	}

	if exists, err := s.userRepo.UsernameExists(ctx, input.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, utils.NewDomainError(utils.KindValidation, "username already exists")
	}
	if exists, err := s.userRepo.EmailExists(ctx, input.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, utils.NewDomainError(utils.KindValidation, "email already registered")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         models.RolePatient,
		IsActive:     true,
	}
	patient := &models.Patient{
		FullName:         input.FullName,
		DateOfBirth:      input.DateOfBirth,
		Gender:           input.Gender,
		ContactNumber:    input.ContactNumber,
		Address:          input.Address,
		BloodGroup:       input.BloodGroup,
		EmergencyContact: input.EmergencyContact,
	}
	if err := s.patientRepo.CreateWithUser(ctx, user, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *patientService) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NewDomainError(utils.KindNotFound, "patient not found")
	}
	return patient, nil
}

// GetByPrincipal resolves the patient profile owned by the authenticated
// user. A patient principal without a profile is treated as forbidden.
func (s *patientService) GetByPrincipal(ctx context.Context, principal models.Principal) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	return patient, nil
}

func (s *patientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	return s.patientRepo.Search(ctx, query)
}

func (s *patientService) UpdateOwnProfile(ctx context.Context, principal models.Principal, input UpdatePatientInput) (*models.Patient, error) {
	patient, err := s.GetByPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, patient, input)
}

func (s *patientService) Update(ctx context.Context, id uint, input UpdatePatientInput) (*models.Patient, error) {
	patient, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, patient, input)
}

func (s *patientService) applyUpdate(ctx context.Context, patient *models.Patient, input UpdatePatientInput) (*models.Patient, error) {
	if err := utils.ValidateDateOfBirth(input.DateOfBirth); err != nil {
		return nil, err
	}
	if input.FullName != "" {
		patient.FullName = input.FullName
	}
	if input.DateOfBirth != "" {
		patient.DateOfBirth = input.DateOfBirth
	}
	patient.Gender = input.Gender
	patient.ContactNumber = input.ContactNumber
	patient.Address = input.Address
	patient.BloodGroup = input.BloodGroup
	patient.EmergencyContact = input.EmergencyContact

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Deactivate soft-disables the patient's login; historical appointments and
// treatments stay untouched.
func (s *patientService) Deactivate(ctx context.Context, id uint) error {
	return s.patientRepo.Deactivate(ctx, id)
}
