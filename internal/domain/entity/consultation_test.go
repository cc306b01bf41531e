package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFindSlotConflict(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	consultations := []Consultation{
		{ID: uuid.New(), Date: day, StartTime: "09:00", Status: ConsultationStatusConfirmed},
		{ID: uuid.New(), Date: day, StartTime: "10:00", Status: ConsultationStatusCancelled},
		{ID: uuid.New(), Date: day, StartTime: "11:00", Status: ConsultationStatusPending},
	}

	if got := FindSlotConflict(consultations, "09:00"); got == nil {
		t.Error("confirmed consultation at 09:00 should conflict")
	}
	if got := FindSlotConflict(consultations, "10:00"); got != nil {
		t.Error("cancelled consultation at 10:00 should not conflict")
	}
	if got := FindSlotConflict(consultations, "11:00"); got == nil {
		t.Error("pending consultation at 11:00 should still occupy its slot")
	}
	if got := FindSlotConflict(consultations, "12:00"); got != nil {
		t.Error("no consultation exists at 12:00")
	}
	if got := FindSlotConflict(nil, "09:00"); got != nil {
		t.Error("empty list should never conflict")
	}
}

func TestWeeklyHoursRoundTrip(t *testing.T) {
	f := Facility{
		Hours: WeeklyHours{
			time.Monday: {Open: "08:00", Close: "18:00"},
			time.Sunday: {Closed: true},
		},
	}

	monday := f.HoursFor(time.Monday)
	if monday.Open != "08:00" || monday.Close != "18:00" || monday.Closed {
		t.Errorf("unexpected monday hours: %+v", monday)
	}
	if !f.HoursFor(time.Sunday).Closed {
		t.Error("sunday should be closed")
	}

	raw, err := f.Hours.Value()
	if err != nil {
		t.Fatalf("marshal hours: %v", err)
	}
	var decoded WeeklyHours
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("scan hours: %v", err)
	}
	if decoded != f.Hours {
		t.Errorf("round trip mismatch: %+v vs %+v", decoded, f.Hours)
	}
}
