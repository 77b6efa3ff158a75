package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
	"strings"
)

type DepartmentInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DepartmentService interface {
	Create(ctx context.Context, input DepartmentInput) (*models.Department, error)
	GetByID(ctx context.Context, id uint) (*models.Department, error)
	GetAll(ctx context.Context) ([]models.Department, error)
	Update(ctx context.Context, id uint, input DepartmentInput) (*models.Department, error)
	Delete(ctx context.Context, id uint) error
}

type departmentService struct {
	repository repositories.DepartmentRepository
}

func NewDepartmentService(repository repositories.DepartmentRepository) DepartmentService {
	return &departmentService{repository: repository}
}

func (s *departmentService) Create(ctx context.Context, input DepartmentInput) (*models.Department, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, utils.NewDomainError(utils.KindValidation, "department name is required")
	}
	department := &models.Department{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.repository.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *departmentService) GetByID(ctx context.Context, id uint) (*models.Department, error) {
	department, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, utils.NewDomainError(utils.KindNotFound, "department not found")
	}
	return department, nil
}

func (s *departmentService) GetAll(ctx context.Context) ([]models.Department, error) {
	return s.repository.GetAll(ctx)
}

func (s *departmentService) Update(ctx context.Context, id uint, input DepartmentInput) (*models.Department, error) {
	department, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, utils.NewDomainError(utils.KindValidation, "department name is required")
	}
	department.Name = name
	department.Description = strings.TrimSpace(input.Description)
	if err := s.repository.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *departmentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repository.Delete(ctx, id)
}
