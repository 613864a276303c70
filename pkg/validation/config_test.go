package validation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConfigValidator_Required(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("Addr", "")

	if !cv.HasErrors() {
		t.Error("Expected error for empty required field")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.Required("Addr", ":8080")

	if cv2.HasErrors() {
		t.Error("Expected no error for non-empty required field")
	}
}

func TestConfigValidator_RangeInt(t *testing.T) {
	tests := []struct {
		value     int
		expectErr bool
	}{
		{0, true},
		{1, false},
		{500, false},
		{1000, false},
		{1001, true},
	}

	for _, tt := range tests {
		cv := NewConfigValidator("TestConfig")
		cv.RangeInt("Iterations", tt.value, 1, 1000)

		if cv.HasErrors() != tt.expectErr {
			t.Errorf("RangeInt(%d): expected error=%v, got %v", tt.value, tt.expectErr, cv.HasErrors())
		}
	}
}

func TestConfigValidator_MinDuration(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.MinDuration("ShutdownTimeout", 100*time.Millisecond, time.Second)

	if !cv.HasErrors() {
		t.Error("Expected error for duration below minimum")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.MinDuration("ShutdownTimeout", 5*time.Second, time.Second)

	if cv2.HasErrors() {
		t.Error("Expected no error for duration above minimum")
	}
}

func TestConfigValidator_Positive(t *testing.T) {
	tests := []struct {
		value     int
		expectErr bool
	}{
		{-1, true},
		{0, true},
		{1, false},
	}

	for _, tt := range tests {
		cv := NewConfigValidator("TestConfig")
		cv.Positive("Workers", tt.value)

		if cv.HasErrors() != tt.expectErr {
			t.Errorf("Positive(%d): expected error=%v, got %v", tt.value, tt.expectErr, cv.HasErrors())
		}
	}
}

func TestConfigValidator_PositiveFloat(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.PositiveFloat("Scale", 0)

	if !cv.HasErrors() {
		t.Error("Expected error for zero float")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.PositiveFloat("Scale", 0.5)

	if cv2.HasErrors() {
		t.Error("Expected no error for positive float")
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	allowed := []string{"spring", "circular"}

	cv := NewConfigValidator("TestConfig")
	cv.OneOf("Algorithm", "spring", allowed)
	if cv.HasErrors() {
		t.Error("Expected no error for allowed value")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.OneOf("Algorithm", "random", allowed)
	if !cv2.HasErrors() {
		t.Error("Expected error for disallowed value")
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	customErr := errors.New("custom failure")

	cv := NewConfigValidator("TestConfig")
	cv.Custom("Field", func() error { return customErr })

	if !errors.Is(cv.Validate(), customErr) {
		t.Errorf("Expected wrapped custom error, got %v", cv.Validate())
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.When(false, func(v *ConfigValidator) {
		v.Positive("Workers", 0)
	})
	if cv.HasErrors() {
		t.Error("Expected validations to be skipped when condition is false")
	}

	cv.When(true, func(v *ConfigValidator) {
		v.Positive("Workers", 0)
	})
	if !cv.HasErrors() {
		t.Error("Expected validations to run when condition is true")
	}
}

func TestConfigValidator_MultipleErrors(t *testing.T) {
	cv := NewConfigValidator("Config").
		Required("Addr", "").
		Positive("Workers", 0).
		OneOf("Format", "xml", []string{"json", "console"})

	if len(cv.Errors()) != 3 {
		t.Fatalf("Expected 3 errors, got %d", len(cv.Errors()))
	}

	err := cv.Validate()
	for _, want := range []string{"Config.Addr", "Config.Workers", "Config.Format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected combined error to mention %s, got: %v", want, err)
		}
	}
}

func TestConfigValidator_ValidateNoErrors(t *testing.T) {
	cv := NewConfigValidator("Config").Required("Addr", ":8080").Positive("Workers", 3)
	if err := cv.Validate(); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}
