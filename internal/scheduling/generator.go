package scheduling

import "time"

// Candidate is one generated (date, start, end) interval a provider could
// see a patient in. Candidates carry no state; persistence and conflict
// checking happen elsewhere.
type Candidate struct {
	Date  time.Time `json:"date"`
	Start string    `json:"start_time"`
	End   string    `json:"end_time"`
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Generate expands a recurrence pattern over a date range into an ordered
// sequence of candidate slots.
//
// Period patterns emit one candidate per date with the pattern's declared
// start and end. Interval patterns tile the [start, end) window with
// consecutive slots of the pattern's interval (falling back to
// durationMinutes when the interval is zero); a final slot that would run
// past the window end is dropped.
//
// Generate is total: malformed clocks, empty windows, and inverted date
// ranges all yield an empty sequence, never an error. Output is ordered by
// date ascending, then start ascending, and is fully determined by its
// inputs.
func Generate(p Pattern, r DateRange, durationMinutes int) []Candidate {
	winStart := minuteOfDay(p.Start)
	winEnd := minuteOfDay(p.End)
	if winStart < 0 || winEnd < 0 || winEnd <= winStart {
		return nil
	}

	var candidates []Candidate
	for date := dateOnly(r.From); !date.After(dateOnly(r.To)); date = date.AddDate(0, 0, 1) {
		switch p.Kind {
		case PatternInterval:
			step := p.Interval
			if step <= 0 {
				step = durationMinutes
			}
			if step <= 0 {
				return nil
			}
			for at := winStart; at+step <= winEnd; at += step {
				candidates = append(candidates, Candidate{
					Date:  date,
					Start: clockOf(at),
					End:   clockOf(at + step),
				})
			}
		default:
			candidates = append(candidates, Candidate{
				Date:  date,
				Start: p.Start,
				End:   p.End,
			})
		}
	}
	return candidates
}

// GenerateForDates expands a pattern over an explicit, possibly
// non-contiguous set of dates, as selected by an administrator in the bulk
// assignment flow. Dates are processed in the order given; candidates within
// each date are ordered by start ascending.
func GenerateForDates(p Pattern, dates []time.Time, durationMinutes int) []Candidate {
	var candidates []Candidate
	for _, date := range dates {
		day := DateRange{From: date, To: date}
		candidates = append(candidates, Generate(p, day, durationMinutes)...)
	}
	return candidates
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
