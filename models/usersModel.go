package models

import (
	"time"
)

// Roles a user account can carry.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// User represents a login account in the system
type User struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"size:80;not null;unique;index;column:username" json:"username"`
	Email        string    `gorm:"size:120;not null;unique;index;column:email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash" json:"-"`
	Role         string    `gorm:"size:20;check:role IN ('admin', 'doctor', 'patient');not null;column:role" json:"role"`
	IsActive     bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	Doctor       *Doctor   `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Patient      *Patient  `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Principal identifies the authenticated actor behind a request. It is
// passed explicitly to every service operation, never read from globals.
type Principal struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}
