package scheduling

import "testing"

func TestPatternID_Stable(t *testing.T) {
	a := Pattern{Kind: PatternPeriod, Name: "Matin", Start: "08:00", End: "12:00"}
	b := Pattern{Kind: PatternPeriod, Name: "matin", Start: "08:00", End: "12:00"}
	if a.ID() != b.ID() {
		t.Errorf("period IDs should be case-insensitive on the name: %q vs %q", a.ID(), b.ID())
	}
	if a.ID() != "period:matin:08:00-12:00" {
		t.Errorf("unexpected period ID %q", a.ID())
	}

	c := Pattern{Kind: PatternInterval, Interval: 30, Start: "08:00", End: "18:00"}
	if c.ID() != "interval:30:08:00-18:00" {
		t.Errorf("unexpected interval ID %q", c.ID())
	}
}

func TestPatternID_DistinguishesParameters(t *testing.T) {
	base := Pattern{Kind: PatternInterval, Interval: 30, Start: "08:00", End: "18:00"}
	variants := []Pattern{
		{Kind: PatternInterval, Interval: 45, Start: "08:00", End: "18:00"},
		{Kind: PatternInterval, Interval: 30, Start: "09:00", End: "18:00"},
		{Kind: PatternPeriod, Name: "journee", Start: "08:00", End: "18:00"},
	}
	for i, v := range variants {
		if v.ID() == base.ID() {
			t.Errorf("variant %d should have a distinct ID, both %q", i, v.ID())
		}
	}
}

func TestPatternValidate(t *testing.T) {
	cases := []struct {
		name    string
		p       Pattern
		wantErr bool
	}{
		{"valid period", Pattern{Kind: PatternPeriod, Name: "matin", Start: "08:00", End: "12:00"}, false},
		{"valid interval", Pattern{Kind: PatternInterval, Interval: 30, Start: "08:00", End: "18:00"}, false},
		{"unknown kind", Pattern{Kind: "weekly", Start: "08:00", End: "12:00"}, true},
		{"nameless period", Pattern{Kind: PatternPeriod, Start: "08:00", End: "12:00"}, true},
		{"bad clock", Pattern{Kind: PatternPeriod, Name: "matin", Start: "8h00", End: "12:00"}, true},
		{"negative interval", Pattern{Kind: PatternInterval, Interval: -5, Start: "08:00", End: "18:00"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddMinutes(t *testing.T) {
	if got := AddMinutes("09:00", 30); got != "09:30" {
		t.Errorf("expected 09:30, got %s", got)
	}
	if got := AddMinutes("09:45", 30); got != "10:15" {
		t.Errorf("expected 10:15, got %s", got)
	}
	if got := AddMinutes("23:50", 30); got != "23:59" {
		t.Errorf("expected cap at 23:59, got %s", got)
	}
	if got := AddMinutes("bogus", 30); got != "bogus" {
		t.Errorf("malformed input should pass through, got %s", got)
	}
}
