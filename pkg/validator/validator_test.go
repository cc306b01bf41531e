package validator

import "testing"

type clockedRequest struct {
	StartTime string `validate:"required,clock"`
}

func TestClockTag(t *testing.T) {
	v := NewValidator()

	valid := []string{"00:00", "08:30", "12:05", "23:59"}
	for _, s := range valid {
		if err := v.Validate(clockedRequest{StartTime: s}); err != nil {
			t.Errorf("expected %q to be valid, got %v", s, err)
		}
	}

	invalid := []string{"24:00", "8:30", "12:60", "12:5", "noon", "12-30", "12:30:00"}
	for _, s := range invalid {
		if err := v.Validate(clockedRequest{StartTime: s}); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(clockedRequest{StartTime: "25:00"})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	fields := v.FormatValidationErrors(err)
	if fields["StartTime"] != "StartTime must be a time in HH:MM format" {
		t.Errorf("unexpected message: %q", fields["StartTime"])
	}
}
