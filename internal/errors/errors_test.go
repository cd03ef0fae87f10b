package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCorpusUnavailableError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewCorpusUnavailableError("ScanAll", cause)

	// Test error message
	expectedMsg := "corpus unavailable during ScanAll: connection refused"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrCorpusUnavailable) {
		t.Error("Expected error to match ErrCorpusUnavailable sentinel")
	}

	// Test that it doesn't match other sentinels
	if errors.Is(err, ErrRecordNotFound) {
		t.Error("Error should not match ErrRecordNotFound")
	}

	// Test Unwrap()
	if !errors.Is(err, cause) {
		t.Error("Expected error to unwrap to its cause")
	}

	// Test without a cause
	err2 := NewCorpusUnavailableError("LookupExact", nil)
	expectedMsg2 := "corpus unavailable during LookupExact"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}
}

func TestRecordNotFoundError(t *testing.T) {
	err := NewRecordNotFoundError(42)

	expectedMsg := "record with ID 42 not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrRecordNotFound) {
		t.Error("Expected error to match ErrRecordNotFound sentinel")
	}

	if errors.Is(err, ErrCorpusUnavailable) {
		t.Error("Error should not match ErrCorpusUnavailable")
	}
}

func TestSettingsError(t *testing.T) {
	// Test with field
	err := NewSettingsError("max_distance", "must be positive")

	expectedMsg := "settings error for field 'max_distance': must be positive"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test without field
	err2 := NewSettingsError("", "no strategies enabled")
	expectedMsg2 := "settings error: no strategies enabled"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	if !errors.Is(err, ErrInvalidSettings) {
		t.Error("Expected error to match ErrInvalidSettings sentinel")
	}
}
