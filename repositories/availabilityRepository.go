package repositories

import (
	"MediDesk/cache"
	"MediDesk/models"
	"MediDesk/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	AvailabilityCacheExpiry = time.Hour
	availabilityCachePrefix = "availability_cache"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, availability *models.DoctorAvailability) error
	ListUpcoming(ctx context.Context, doctorID uint, from, to string, onlyAvailable bool) ([]models.DoctorAvailability, error)
}

type availabilityRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAvailabilityRepository(db *gorm.DB, cache *cache.Cache) AvailabilityRepository {
	return &availabilityRepository{db: db, cache: cache}
}

// Create inserts a declared window. The composite unique index on
// (doctor_id, date, start_time) is the authority on duplicates; the redis
// lock only narrows the window in which two requests race to the constraint.
func (r *availabilityRepository) Create(ctx context.Context, availability *models.DoctorAvailability) error {
	lockKey := fmt.Sprintf("availability_lock:%d_%s_%s", availability.DoctorID, availability.Date, availability.StartTime)
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	if err := r.db.WithContext(ctx).Create(availability).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.NewDomainError(utils.KindDuplicateSlot, "availability already exists for this time slot")
		}
		return fmt.Errorf("failed to create availability: %w", err)
	}
	return r.cache.DeleteAll(ctx, fmt.Sprintf("%s:%d*", availabilityCachePrefix, availability.DoctorID))
}

// ListUpcoming returns the doctor's windows within [from, to] ordered by
// (date, start_time). Dates are ISO strings, so lexical ordering is
// chronological.
func (r *availabilityRepository) ListUpcoming(ctx context.Context, doctorID uint, from, to string, onlyAvailable bool) ([]models.DoctorAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("%s:%d_%s_%s_%t", availabilityCachePrefix, doctorID, from, to, onlyAvailable)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var availabilities []models.DoctorAvailability
		if err := json.Unmarshal([]byte(cached), &availabilities); err == nil {
			return availabilities, nil
		}
	} else if err != nil {
		log.Printf("Failed to get availability from cache: %v", err)
	}

	db := r.db.WithContext(ctx).
		Where("doctor_id = ? AND date >= ? AND date <= ?", doctorID, from, to)
	if onlyAvailable {
		db = db.Where("is_available = ?", true)
	}

	var availabilities []models.DoctorAvailability
	if err := db.Order("date ASC, start_time ASC").Find(&availabilities).Error; err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}

	availabilitiesJSON, err := json.Marshal(availabilities)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, cacheKey, availabilitiesJSON, AvailabilityCacheExpiry); err != nil {
		log.Printf("Failed to set availability in cache: %v", err)
	}

	return availabilities, nil
}
