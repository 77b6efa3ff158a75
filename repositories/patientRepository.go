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
	PatientCacheExpiry = 24 * time.Hour
	patientsCacheKey   = "patients_cache"
)

type PatientRepository interface {
	CreateWithUser(ctx context.Context, user *models.User, patient *models.Patient) error
	GetByID(ctx context.Context, id uint) (*models.Patient, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Patient, error)
	Search(ctx context.Context, query string) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Deactivate(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type patientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) PatientRepository {
	return &patientRepository{db: db, cache: cache}
}

/// CreateWithUser registers a patient: login account and profile in one
// transaction.
func (r *patientRepository) CreateWithUser(ctx context.Context, user *models.User, patient *models.Patient) error {
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
			return fmt.Errorf("failed to create patient account: %w", err)
		}
		patient.UserID = user.ID
		if err := tx.Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.cache.DeleteAll(ctx, patientsCacheKey+"*")
}

func (r *patientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) GetByUserID(ctx context.Context, userID int64) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).First(&patient, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient by user id: %w", err)
	}
	return &patient, nil
}

// Search filters patients by free-text match on name or contact number.
func (r *patientRepository) Search(ctx context.Context, query string) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("%s:%s", patientsCacheKey, query)
	cachedPatients, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatients != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cachedPatients), &patients); err == nil {
			return patients, nil
		}
	} else if err != nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	db := r.db.WithContext(ctx)
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where("full_name ILIKE ? OR contact_number ILIKE ?", pattern, pattern)
	}

	var patients []models.Patient
	if err := db.Order("full_name ASC").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Save(patient).Error; err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return r.cache.DeleteAll(ctx, patientsCacheKey+"*")
}

// Deactivate disables the owning account instead of removing rows, so the
// patient's appointment and treatment history stays intact.
func (r *patientRepository) Deactivate(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewDomainError(utils.KindNotFound, "patient not found")
			}
			return fmt.Errorf("failed to load patient: %w", err)
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", patient.UserID).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate patient account: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.cache.DeleteAll(ctx, patientsCacheKey+"*")
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Patient{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}
