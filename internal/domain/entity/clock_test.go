package entity

import "testing"

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"09:00:00", "09:00"},
		{"23:45:00", "23:45"},
		{"08:30:00.000000", "08:30"},
		{"09:00", "09:00"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeClock(tc.in); got != tc.want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlotAssignment_AfterFindNormalizesTimes(t *testing.T) {
	a := SlotAssignment{StartTime: "09:00:00", EndTime: "09:30:00"}
	if err := a.AfterFind(nil); err != nil {
		t.Fatalf("AfterFind: %v", err)
	}
	if a.StartTime != "09:00" || a.EndTime != "09:30" {
		t.Errorf("times not normalized: start=%q end=%q", a.StartTime, a.EndTime)
	}
}

func TestConsultation_AfterFindNormalizesTimes(t *testing.T) {
	c := Consultation{StartTime: "14:00:00", EndTime: "14:30:00"}
	if err := c.AfterFind(nil); err != nil {
		t.Fatalf("AfterFind: %v", err)
	}
	if c.StartTime != "14:00" || c.EndTime != "14:30" {
		t.Errorf("times not normalized: start=%q end=%q", c.StartTime, c.EndTime)
	}

	// The conflict pre-check compares stored rows against HH:MM requests.
	if got := FindSlotConflict([]Consultation{c}, "14:00"); got == nil {
		t.Error("normalized consultation should conflict with its own start time")
	}
}
