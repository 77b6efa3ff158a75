package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
	"fmt"
)

type CreateDoctorInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	FullName        string `json:"full_name"`
	DepartmentID    uint   `json:"department_id"`
	Specialization  string `json:"specialization"`
	Qualification   string `json:"qualification"`
	ExperienceYears int    `json:"experience_years"`
	ContactNumber   string `json:"contact_number"`
}

type UpdateDoctorInput struct {
	FullName        string `json:"full_name"`
	DepartmentID    uint   `json:"department_id"`
	Specialization  string `json:"specialization"`
	Qualification   string `json:"qualification"`
	ExperienceYears int    `json:"experience_years"`
	ContactNumber   string `json:"contact_number"`
}

type DoctorService interface {
	Create(ctx context.Context, input CreateDoctorInput) (*models.Doctor, error)
	GetByID(ctx context.Context, id uint) (*models.Doctor, error)
	GetByPrincipal(ctx context.Context, principal models.Principal) (*models.Doctor, error)
	Search(ctx context.Context, query string, departmentID uint) ([]models.Doctor, error)
	Update(ctx context.Context, id uint, input UpdateDoctorInput) (*models.Doctor, error)
	Delete(ctx context.Context, id uint) error
}

type doctorService struct {
	doctorRepo     repositories.DoctorRepository
	departmentRepo repositories.DepartmentRepository
	userRepo       repositories.UserRepository
}

func NewDoctorService(
	doctorRepo repositories.DoctorRepository,
	departmentRepo repositories.DepartmentRepository,
	userRepo repositories.UserRepository,
) DoctorService {
	return &doctorService{
		doctorRepo:     doctorRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
	}
}

// Create provisions a doctor account and profile. Admin only (enforced at
// the route level).
func (s *doctorService) Create(ctx context.Context, input CreateDoctorInput) (*models.Doctor, error) {
	if err := utils.ValidateCredentials(input.Username, input.Email, input.Password); err != nil {
		return nil, err
	}
	if input.FullName == "" || input.Specialization == "" {
		return nil, utils.NewDomainError(utils.KindValidation, "full name and specialization are required")
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

	department, err := s.departmentRepo.GetByID(ctx, input.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, utils.NewDomainError(utils.KindValidation, "department not found")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         models.RoleDoctor,
		IsActive:     true,
	}
	doctor := &models.Doctor{
		FullName:        input.FullName,
		DepartmentID:    input.DepartmentID,
		Specialization:  input.Specialization,
		Qualification:   input.Qualification,
		ExperienceYears: input.ExperienceYears,
		ContactNumber:   input.ContactNumber,
	}
	if err := s.doctorRepo.CreateWithUser(ctx, user, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *doctorService) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindNotFound, "doctor not found")
	}
	return doctor, nil
}

// GetByPrincipal resolves the doctor profile owned by the authenticated
// user. A doctor principal without a profile is treated as forbidden.
func (s *doctorService) GetByPrincipal(ctx context.Context, principal models.Principal) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, utils.NewDomainError(utils.KindForbidden, "access denied")
	}
	return doctor, nil
}

func (s *doctorService) Search(ctx context.Context, query string, departmentID uint) ([]models.Doctor, error) {
	return s.doctorRepo.Search(ctx, query, departmentID)
}

func (s *doctorService) Update(ctx context.Context, id uint, input UpdateDoctorInput) (*models.Doctor, error) {
	doctor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.DepartmentID != 0 && input.DepartmentID != doctor.DepartmentID {
		department, err := s.departmentRepo.GetByID(ctx, input.DepartmentID)
		if err != nil {
			return nil, err
		}
		if department == nil {
			return nil, utils.NewDomainError(utils.KindValidation, "department not found")
		}
		doctor.DepartmentID = input.DepartmentID
	}
	if input.FullName != "" {
		doctor.FullName = input.FullName
	}
	if input.Specialization != "" {
		doctor.Specialization = input.Specialization
	}
	doctor.Qualification = input.Qualification
	doctor.ExperienceYears = input.ExperienceYears
	doctor.ContactNumber = input.ContactNumber
	doctor.Department = nil

	if err := s.doctorRepo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *doctorService) Delete(ctx context.Context, id uint) error {
	return s.doctorRepo.Delete(ctx, id)
}
