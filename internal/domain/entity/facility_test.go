package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFacility_HoursFor(t *testing.T) {
	f := Facility{
		Hours: WeeklyHours{
			time.Sunday:   {Closed: true},
			time.Monday:   {Open: "08:00", Close: "17:00"},
			time.Saturday: {Open: "09:00", Close: "12:00"},
		},
	}

	monday := f.HoursFor(time.Monday)
	if monday.Open != "08:00" || monday.Close != "17:00" || monday.Closed {
		t.Errorf("unexpected monday hours: %+v", monday)
	}

	if !f.HoursFor(time.Sunday).Closed {
		t.Error("expected sunday to be closed")
	}

	// Unset weekdays come back as zero values, which callers treat as closed.
	tuesday := f.HoursFor(time.Tuesday)
	if tuesday.Open != "" || tuesday.Close != "" {
		t.Errorf("unexpected tuesday hours: %+v", tuesday)
	}
}

func TestFacility_IsOwnedBy(t *testing.T) {
	adminID := uuid.New()
	f := Facility{AdminID: adminID}

	if !f.IsOwnedBy(adminID) {
		t.Error("expected facility to be owned by its admin")
	}
	if f.IsOwnedBy(uuid.New()) {
		t.Error("expected facility not to be owned by another admin")
	}
}

func TestWeeklyHours_Scan(t *testing.T) {
	raw := `[{"closed":true},{"open":"08:00","close":"17:00","closed":false},{},{},{},{},{}]`

	var h WeeklyHours
	if err := h.Scan([]byte(raw)); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if !h[0].Closed {
		t.Error("expected sunday closed")
	}
	if h[1].Open != "08:00" {
		t.Errorf("expected monday open 08:00, got %q", h[1].Open)
	}

	var empty WeeklyHours
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("scan of nil failed: %v", err)
	}
}
