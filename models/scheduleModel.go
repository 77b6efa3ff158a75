package models

import (
	"time"
)

// Appointment lifecycle statuses. Booked is the only non-terminal state.
const (
	StatusBooked    = "Booked"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Dates are stored as "2006-01-02" and clock times as "15:04" strings, so
// lexical ordering matches chronological ordering and no timezone applies.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// DoctorAvailability is a declared open window in a doctor's schedule.
// A doctor cannot declare two windows starting at the same instant on the
// same date; the composite unique index enforces that at the database level.
type DoctorAvailability struct {
	ID          uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID    uint    `gorm:"not null;index;uniqueIndex:idx_doctor_date_start;column:doctor_id" json:"doctor_id"`
	Date        string  `gorm:"size:10;not null;uniqueIndex:idx_doctor_date_start;column:date" json:"date"`
	StartTime   string  `gorm:"size:5;not null;uniqueIndex:idx_doctor_date_start;column:start_time" json:"start_time"`
	EndTime     string  `gorm:"size:5;not null;column:end_time" json:"end_time"`
	IsAvailable bool    `gorm:"not null;default:true;column:is_available" json:"is_available"`
	Doctor      *Doctor `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (DoctorAvailability) TableName() string {
	return "doctor_availability"
}

// Appointment model. The (doctor_id, date, time) unique index holds
// regardless of status, so a cancelled appointment keeps its slot occupied.
type Appointment struct {
	ID        uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID uint       `gorm:"not null;index;column:patient_id" json:"patient_id"`
	DoctorID  uint       `gorm:"not null;index;uniqueIndex:idx_doctor_slot;column:doctor_id" json:"doctor_id"`
	Date      string     `gorm:"size:10;not null;uniqueIndex:idx_doctor_slot;column:date" json:"date"`
	Time      string     `gorm:"size:5;not null;uniqueIndex:idx_doctor_slot;column:time" json:"time"`
	Status    string     `gorm:"size:20;check:status IN ('Booked', 'Completed', 'Cancelled');not null;default:'Booked';column:status" json:"status"`
	Reason    string     `gorm:"type:text;column:reason" json:"reason"`
	CreatedAt time.Time  `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
	Patient   *Patient   `gorm:"foreignKey:PatientID;references:ID" json:"patient,omitempty"`
	Doctor    *Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
	Treatment *Treatment `gorm:"foreignKey:AppointmentID;references:ID" json:"treatment,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Treatment is the clinical outcome attached 1:1 to a completed appointment.
type Treatment struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AppointmentID uint      `gorm:"not null;uniqueIndex;column:appointment_id" json:"appointment_id"`
	Diagnosis     string    `gorm:"type:text;not null;column:diagnosis" json:"diagnosis"`
	Prescription  string    `gorm:"type:text;column:prescription" json:"prescription"`
	Notes         string    `gorm:"type:text;column:notes" json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Treatment) TableName() string {
	return "treatments"
}
