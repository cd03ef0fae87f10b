package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrCorpusUnavailable is returned when the corpus cannot be queried at all.
	// An empty ranked list is a valid "no matches" outcome, so total corpus
	// failure must stay distinguishable from it.
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrRecordNotFound is returned when a record is not found by ID
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidSettings is returned when search settings validation fails
	ErrInvalidSettings = errors.New("invalid search settings")
)

// CorpusUnavailableError represents a corpus failure with context
type CorpusUnavailableError struct {
	Op  string // corpus operation that failed, e.g. "LookupExact"
	Err error
}

func (e *CorpusUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corpus unavailable during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("corpus unavailable during %s", e.Op)
}

func (e *CorpusUnavailableError) Is(target error) bool {
	return target == ErrCorpusUnavailable
}

func (e *CorpusUnavailableError) Unwrap() error {
	return e.Err
}

// NewCorpusUnavailableError creates a new CorpusUnavailableError
func NewCorpusUnavailableError(op string, err error) *CorpusUnavailableError {
	return &CorpusUnavailableError{Op: op, Err: err}
}

// RecordNotFoundError represents a record not found error with context
type RecordNotFoundError struct {
	ID int64
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("record with ID %d not found", e.ID)
}

func (e *RecordNotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

// NewRecordNotFoundError creates a new RecordNotFoundError
func NewRecordNotFoundError(id int64) *RecordNotFoundError {
	return &RecordNotFoundError{ID: id}
}

// SettingsError represents a settings validation error with context
type SettingsError struct {
	Field   string
	Message string
}

func (e *SettingsError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("settings error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("settings error: %s", e.Message)
}

func (e *SettingsError) Is(target error) bool {
	return target == ErrInvalidSettings
}

// NewSettingsError creates a new SettingsError
func NewSettingsError(field, message string) *SettingsError {
	return &SettingsError{Field: field, Message: message}
}
