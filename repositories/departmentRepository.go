package repositories

import (
	"MediDesk/cache"
	"MediDesk/models"
	"MediDesk/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	DepartmentCacheExpiry = 24 * time.Hour
	departmentsCacheKey   = "departments_cache"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id uint) (*models.Department, error)
	GetAll(ctx context.Context) ([]models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id uint) error
}

type departmentRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDepartmentRepository(db *gorm.DB, cache *cache.Cache) DepartmentRepository {
	return &departmentRepository{db: db, cache: cache}
}

func (r *departmentRepository) Create(ctx context.Context, department *models.Department) error {
	if err := r.db.WithContext(ctx).Create(department).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.NewDomainError(utils.KindValidation, "department already exists")
		}
		return fmt.Errorf("failed to create department: %w", err)
	}
	return r.cache.Delete(ctx, departmentsCacheKey)
}

func (r *departmentRepository) GetByID(ctx context.Context, id uint) (*models.Department, error) {
	var department models.Department
	err := r.db.WithContext(ctx).First(&department, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &department, nil
}

func (r *departmentRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedDepartments, err := r.cache.Get(ctx, departmentsCacheKey)
	if err == nil && cachedDepartments != "" {
		var departments []models.Department
		if err := json.Unmarshal([]byte(cachedDepartments), &departments); err == nil {
			return departments, nil
		}
	} else if err != nil {
		log.Printf("Failed to get departments from cache: %v", err)
	}

	var departments []models.Department
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all departments: %w", err)
	}

	departmentsJSON, err := json.Marshal(departments)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, departmentsCacheKey, departmentsJSON, DepartmentCacheExpiry); err != nil {
		log.Printf("Failed to set departments in cache: %v", err)
	}

	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	if err := r.db.WithContext(ctx).Save(department).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.NewDomainError(utils.KindValidation, "department name already exists")
		}
		return fmt.Errorf("failed to update department: %w", err)
	}
	return r.cache.Delete(ctx, departmentsCacheKey)
}

// Delete removes a department unless a doctor still references it. The
// guard and the delete run in one transaction so a doctor assigned
// concurrently cannot be orphaned.
func (r *departmentRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doctorCount int64
		if err := tx.Model(&models.Doctor{}).Where("department_id = ?", id).Count(&doctorCount).Error; err != nil {
			return fmt.Errorf("failed to count assigned doctors: %w", err)
		}
		if doctorCount > 0 {
			return utils.NewDomainError(utils.KindInUse,
				fmt.Sprintf("cannot delete department: %d doctor(s) are currently assigned to it", doctorCount))
		}
		if err := tx.Delete(&models.Department{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete department: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, departmentsCacheKey)
}
