package utils

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ValidateCredentials validates a new account's username, email and password.
func ValidateCredentials(username, email, password string) error {
	if err := (validation.Errors{
		"username": validation.Validate(username, validation.Required, validation.Length(3, 80)),
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	}).Filter(); err != nil {
		return NewDomainError(KindValidation, err.Error())
	}
	return nil
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	if err := (validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}).Filter(); err != nil {
		return NewDomainError(KindValidation, err.Error())
	}
	return nil
}

// ValidateAvailabilityWindow validates a declared availability window.
// The start must come strictly before the end.
func ValidateAvailabilityWindow(date, startTime, endTime string) error {
	if err := (validation.Errors{
		"date":       validation.Validate(date, validation.Required, validation.Date(dateLayout)),
		"start_time": validation.Validate(startTime, validation.Required, validation.Date(clockLayout)),
		"end_time":   validation.Validate(endTime, validation.Required, validation.Date(clockLayout)),
	}).Filter(); err != nil {
		return NewDomainError(KindValidation, err.Error())
	}
	if startTime >= endTime {
		return NewDomainError(KindValidation, "start time must be before end time")
	}
	return nil
}

// ValidateSlot validates a requested appointment slot.
func ValidateSlot(date, clock string) error {
	if err := (validation.Errors{
		"date": validation.Validate(date, validation.Required, validation.Date(dateLayout)),
		"time": validation.Validate(clock, validation.Required, validation.Date(clockLayout)),
	}).Filter(); err != nil {
		return NewDomainError(KindValidation, err.Error())
	}
	return nil
}

// ValidateTreatment validates the clinical outcome attached on completion.
func ValidateTreatment(diagnosis string) error {
	if err := validation.Validate(diagnosis, validation.Required.Error("diagnosis cannot be blank")); err != nil {
		return NewDomainError(KindValidation, "diagnosis: "+err.Error())
	}
	return nil
}

// ValidateDateOfBirth validates an optional date-of-birth field.
func ValidateDateOfBirth(dob string) error {
	if dob == "" {
		return nil
	}
	if err := validation.Validate(dob, validation.Date(dateLayout)); err != nil {
		return NewDomainError(KindValidation, "date_of_birth: "+err.Error())
	}
	return nil
}

// Today returns the current date in the storage layout.
func Today() string {
	return time.Now().Format(dateLayout)
}

// DaysAhead returns the date n days from now in the storage layout.
func DaysAhead(n int) string {
	return time.Now().AddDate(0, 0, n).Format(dateLayout)
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
