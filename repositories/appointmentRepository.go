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
	"gorm.io/gorm/clause"
)

const (
	AppointmentCacheExpiry = time.Hour
	appointmentsCacheKey   = "appointments_cache"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Complete(ctx context.Context, id uint, treatment *models.Treatment) error
	ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
	UpcomingByPatient(ctx context.Context, patientID uint, from string) ([]models.Appointment, error)
	CompletedByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error)
	UpcomingByDoctor(ctx context.Context, doctorID uint, from, to string) ([]models.Appointment, error)
	CompletedByPatientAndDoctor(ctx context.Context, patientID, doctorID uint) ([]models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	Counts(ctx context.Context, from string) (total int64, upcoming int64, err error)
}

type appointmentRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAppointmentRepository(db *gorm.DB, cache *cache.Cache) AppointmentRepository {
	return &appointmentRepository{db: db, cache: cache}
}

// Create books a slot. The composite unique index on (doctor_id, date, time)
// is the arbiter when two requests race for the same slot: the second insert
// fails with a constraint violation, surfaced here as SlotTaken. No
// check-then-act is performed. The index holds regardless of status, so a
// cancelled appointment keeps the slot occupied.
func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	lockKey := fmt.Sprintf("appointment_lock:%d_%s_%s", appointment.DoctorID, appointment.Date, appointment.Time)
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.NewDomainError(utils.KindSlotTaken, "this time slot is already booked; please choose another time")
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return r.invalidate(ctx)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Treatment").
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, full_name, contact_number")
		}).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, full_name, specialization")
		}).
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update appointment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.invalidate(ctx)
}

// Complete marks the appointment Completed and upserts its Treatment record
// in the same transaction: either both rows commit or neither does. A repeat
// completion updates the existing treatment instead of inserting a second
// one, keyed by the unique appointment_id index.
func (r *appointmentRepository) Complete(ctx context.Context, id uint, treatment *models.Treatment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", id).
			Update("status", models.StatusCompleted).Error; err != nil {
			return fmt.Errorf("failed to mark appointment completed: %w", err)
		}
		treatment.AppointmentID = id
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "appointment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"diagnosis", "prescription", "notes", "updated_at"}),
		}).Create(treatment).Error; err != nil {
			return fmt.Errorf("failed to upsert treatment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.invalidate(ctx)
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, specialization")
		}).
		Where("patient_id = ?", patientID).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) UpcomingByPatient(ctx context.Context, patientID uint, from string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, specialization")
		}).
		Where("patient_id = ? AND date >= ? AND status = ?", patientID, from, models.StatusBooked).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) CompletedByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Treatment").
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, specialization")
		}).
		Where("patient_id = ? AND status = ?", patientID, models.StatusCompleted).
		Order("date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list completed appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, contact_number")
		}).
		Where("doctor_id = ?", doctorID).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) UpcomingByDoctor(ctx context.Context, doctorID uint, from, to string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, contact_number")
		}).
		Where("doctor_id = ? AND date >= ? AND date <= ? AND status = ?", doctorID, from, to, models.StatusBooked).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming doctor appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) CompletedByPatientAndDoctor(ctx context.Context, patientID, doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Treatment").
		Where("patient_id = ? AND doctor_id = ? AND status = ?", patientID, doctorID, models.StatusCompleted).
		Order("date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patient history: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, appointmentsCacheKey)
	if err == nil && cached != "" {
		var appointments []models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointments); err == nil {
			return appointments, nil
		}
	} else if err != nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	var appointments []models.Appointment
	err = r.db.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name")
		}).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name")
		}).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}

	appointmentsJSON, err := json.Marshal(appointments)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, appointmentsCacheKey, appointmentsJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return appointments, nil
}

func (r *appointmentRepository) Counts(ctx context.Context, from string) (int64, int64, error) {
	var total, upcoming int64
	if err := r.db.WithContext(ctx).Model(&models.Appointment{}).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("date >= ? AND status = ?", from, models.StatusBooked).
		Count(&upcoming).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count upcoming appointments: %w", err)
	}
	return total, upcoming, nil
}

func (r *appointmentRepository) invalidate(ctx context.Context) error {
	return r.cache.Delete(ctx, appointmentsCacheKey)
}
