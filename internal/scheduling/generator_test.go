package scheduling

import (
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_PeriodPattern(t *testing.T) {
	p := Pattern{Kind: PatternPeriod, Name: "Matin", Start: "08:00", End: "12:00"}
	r := DateRange{From: date(2024, 6, 10), To: date(2024, 6, 12)}

	got := Generate(p, r, 30)
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates (one per date), got %d", len(got))
	}
	for i, c := range got {
		if c.Start != "08:00" || c.End != "12:00" {
			t.Errorf("candidate %d: expected declared period bounds, got %s-%s", i, c.Start, c.End)
		}
	}
	if !got[0].Date.Equal(date(2024, 6, 10)) || !got[2].Date.Equal(date(2024, 6, 12)) {
		t.Errorf("dates not ascending: %v .. %v", got[0].Date, got[2].Date)
	}
}

func TestGenerate_IntervalTiling(t *testing.T) {
	p := Pattern{Kind: PatternInterval, Interval: 30, Start: "09:00", End: "10:45"}
	r := DateRange{From: date(2024, 6, 10), To: date(2024, 6, 10)}

	got := Generate(p, r, 0)
	want := []Candidate{
		{Date: date(2024, 6, 10), Start: "09:00", End: "09:30"},
		{Date: date(2024, 6, 10), Start: "09:30", End: "10:00"},
		{Date: date(2024, 6, 10), Start: "10:00", End: "10:30"},
	}
	// The 10:30-11:00 slot would run past 10:45 and must be dropped.
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerate_IntervalFallsBackToDuration(t *testing.T) {
	p := Pattern{Kind: PatternInterval, Start: "08:00", End: "09:00"}

	got := Generate(p, DateRange{From: date(2024, 6, 10), To: date(2024, 6, 10)}, 20)
	if len(got) != 3 {
		t.Fatalf("expected 3 slots of 20 minutes, got %d", len(got))
	}
	if got[2].Start != "08:40" || got[2].End != "09:00" {
		t.Errorf("last slot: got %s-%s", got[2].Start, got[2].End)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := Pattern{Kind: PatternInterval, Interval: 45, Start: "08:15", End: "17:30"}
	r := DateRange{From: date(2024, 1, 1), To: date(2024, 1, 14)}

	first := Generate(p, r, 30)
	second := Generate(p, r, 30)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different sequences")
	}
	if len(first) == 0 {
		t.Fatal("expected a non-empty sequence")
	}
}

func TestGenerate_Ordering(t *testing.T) {
	p := Pattern{Kind: PatternInterval, Interval: 60, Start: "08:00", End: "12:00"}
	r := DateRange{From: date(2024, 3, 1), To: date(2024, 3, 3)}

	got := Generate(p, r, 0)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.Date.Before(prev.Date) {
			t.Fatalf("dates out of order at %d: %v after %v", i, cur.Date, prev.Date)
		}
		if cur.Date.Equal(prev.Date) && cur.Start <= prev.Start {
			t.Fatalf("starts out of order at %d: %s after %s", i, cur.Start, prev.Start)
		}
	}
}

func TestGenerate_TotalOnDegenerateInput(t *testing.T) {
	day := DateRange{From: date(2024, 6, 10), To: date(2024, 6, 10)}

	cases := []struct {
		name string
		p    Pattern
		r    DateRange
	}{
		{"window end equals start", Pattern{Kind: PatternInterval, Interval: 30, Start: "09:00", End: "09:00"}, day},
		{"window end before start", Pattern{Kind: PatternInterval, Interval: 30, Start: "14:00", End: "09:00"}, day},
		{"malformed start clock", Pattern{Kind: PatternInterval, Interval: 30, Start: "9am", End: "12:00"}, day},
		{"malformed end clock", Pattern{Kind: PatternPeriod, Name: "matin", Start: "08:00", End: "noon"}, day},
		{"inverted date range", Pattern{Kind: PatternPeriod, Name: "matin", Start: "08:00", End: "12:00"},
			DateRange{From: date(2024, 6, 12), To: date(2024, 6, 10)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Generate(tc.p, tc.r, 30); len(got) != 0 {
				t.Errorf("expected empty sequence, got %d candidates", len(got))
			}
		})
	}
}

func TestGenerateForDates_NonContiguous(t *testing.T) {
	p := Pattern{Kind: PatternPeriod, Name: "matin", Start: "08:00", End: "12:00"}
	dates := []time.Time{date(2024, 6, 10), date(2024, 6, 12), date(2024, 6, 17)}

	got := GenerateForDates(p, dates, 30)
	if len(got) != 3 {
		t.Fatalf("expected one candidate per selected date, got %d", len(got))
	}
	for i, c := range got {
		if !c.Date.Equal(dates[i]) {
			t.Errorf("candidate %d: expected date %v, got %v", i, dates[i], c.Date)
		}
	}
}
