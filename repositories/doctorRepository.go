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
	DoctorCacheExpiry = 24 * time.Hour
	doctorsCacheKey   = "doctors_cache"
)

type DoctorRepository interface {
	CreateWithUser(ctx context.Context, user *models.User, doctor *models.Doctor) error
	GetByID(ctx context.Context, id uint) (*models.Doctor, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Doctor, error)
	Search(ctx context.Context, query string, departmentID uint) ([]models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type doctorRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDoctorRepository(db *gorm.DB, cache *cache.Cache) DoctorRepository {
	return &doctorRepository{db: db, cache: cache}
}

// CreateWithUser creates the login account and the doctor profile in one
// transaction so a failed profile insert never leaves a dangling account.
func (r *doctorRepository) CreateWithUser(ctx context.Context, user *models.User, doctor *models.Doctor) error {
	release, err := acquireLock(ctx, fmt.Sprintf("user_lock:%s", user.Username))
	if err != nil {
		return err
	}
	defer release()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if isDuplicateKey(err) {
				return utils.NewDomainError(utils.KindValidation, "username or email already registered")
			}
			return fmt.Errorf("failed to create doctor account: %w", err)
		}
		doctor.UserID = user.ID
		if err := tx.Create(doctor).Error; err != nil {
			return fmt.Errorf("failed to create doctor profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.cache.DeleteAll(ctx, doctorsCacheKey+"*")
}

func (r *doctorRepository) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) GetByUserID(ctx context.Context, userID int64) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&doctor, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor by user id: %w", err)
	}
	return &doctor, nil
}

// Search filters doctors by free-text match on name or specialization and
// optionally by department. An empty query with departmentID 0 lists all.
func (r *doctorRepository) Search(ctx context.Context, query string, departmentID uint) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("%s:%s_%d", doctorsCacheKey, query, departmentID)
	cachedDoctors, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedDoctors != "" {
		var doctors []models.Doctor
		if err := json.Unmarshal([]byte(cachedDoctors), &doctors); err == nil {
			return doctors, nil
		}
	} else if err != nil {
		log.Printf("Failed to get doctors from cache: %v", err)
	}

	db := r.db.WithContext(ctx).Preload("Department")
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where("full_name ILIKE ? OR specialization ILIKE ?", pattern, pattern)
	}
	if departmentID != 0 {
		db = db.Where("department_id = ?", departmentID)
	}

	var doctors []models.Doctor
	if err := db.Order("full_name ASC").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}

	doctorsJSON, err := json.Marshal(doctors)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, cacheKey, doctorsJSON, DoctorCacheExpiry); err != nil {
		log.Printf("Failed to set doctors in cache: %v", err)
	}

	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Save(doctor).Error; err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return r.cache.DeleteAll(ctx, doctorsCacheKey+"*")
}

// Delete refuses while appointments reference the doctor, then removes the
// availability rows, the profile and the login account in that order inside
// one transaction. The ordering is deliberate: children first, then parent.
func (r *doctorRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewDomainError(utils.KindNotFound, "doctor not found")
			}
			return fmt.Errorf("failed to load doctor: %w", err)
		}

		var appointmentCount int64
		if err := tx.Model(&models.Appointment{}).Where("doctor_id = ?", id).Count(&appointmentCount).Error; err != nil {
			return fmt.Errorf("failed to count appointments: %w", err)
		}
		if appointmentCount > 0 {
			return utils.NewDomainError(utils.KindInUse,
				"doctor has existing appointments and cannot be deleted; remove or reassign them first")
		}

		if err := tx.Delete(&models.DoctorAvailability{}, "doctor_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete doctor availability: %w", err)
		}
		if err := tx.Delete(&models.Doctor{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete doctor: %w", err)
		}
		if err := tx.Delete(&models.User{}, "id = ?", doctor.UserID).Error; err != nil {
			return fmt.Errorf("failed to delete doctor account: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.cache.DeleteAll(ctx, doctorsCacheKey+"*")
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Doctor{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}
