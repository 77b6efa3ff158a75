package models

import (
	"time"
)

// Department model
type Department struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"size:100;unique;not null;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	Doctors     []Doctor  `gorm:"foreignKey:DepartmentID;references:ID" json:"-"`
}

func (Department) TableName() string {
	return "departments"
}

// Doctor model
type Doctor struct {
	ID              uint                 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID          int64                `gorm:"not null;uniqueIndex;column:user_id" json:"user_id"`
	FullName        string               `gorm:"size:120;not null;index;column:full_name" json:"full_name"`
	DepartmentID    uint                 `gorm:"not null;index;column:department_id" json:"department_id"`
	Specialization  string               `gorm:"size:100;not null;column:specialization" json:"specialization"`
	Qualification   string               `gorm:"size:200;column:qualification" json:"qualification"`
	ExperienceYears int                  `gorm:"column:experience_years" json:"experience_years"`
	ContactNumber   string               `gorm:"size:20;column:contact_number" json:"contact_number"`
	CreatedAt       time.Time            `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	User            *User                `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Department      *Department          `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`
	Availability    []DoctorAvailability `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	Appointments    []Appointment        `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Patient model
type Patient struct {
	ID               uint          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID           int64         `gorm:"not null;uniqueIndex;column:user_id" json:"user_id"`
	FullName         string        `gorm:"size:120;not null;index;column:full_name" json:"full_name"`
	DateOfBirth      string        `gorm:"size:10;column:date_of_birth" json:"date_of_birth"`
	Gender           string        `gorm:"size:10;column:gender" json:"gender"`
	ContactNumber    string        `gorm:"size:20;column:contact_number" json:"contact_number"`
	Address          string        `gorm:"type:text;column:address" json:"address"`
	BloodGroup       string        `gorm:"size:5;column:blood_group" json:"blood_group"`
	EmergencyContact string        `gorm:"size:20;column:emergency_contact" json:"emergency_contact"`
	CreatedAt        time.Time     `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	User             *User         `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Appointments     []Appointment `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}
