package utils

import "errors"

var (
	ErrDatabaseError         = errors.New("database error")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrPlanNotFound          = errors.New("plan not found")
	ErrAppNotFound           = errors.New("app not found")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrPlanAlreadySubscribed = errors.New("plan already has a subscription")
	ErrUserOwnsApps          = errors.New("user still owns apps")
	ErrProtectedReference    = errors.New("resource is still referenced")
	ErrInvalidResetToken     = errors.New("invalid or expired reset token")
)

// ValidationError carries field level messages the way the API reports
// them: one list of messages per offending field.
type ValidationError struct {
	Fields map[string][]string
}

func (v *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

func (v *ValidationError) Add(field, message string) *ValidationError {
	if v.Fields == nil {
		v.Fields = map[string][]string{}
	}
	v.Fields[field] = append(v.Fields[field], message)
	return v
}

func (v *ValidationError) Empty() bool {
	return len(v.Fields) == 0
}
