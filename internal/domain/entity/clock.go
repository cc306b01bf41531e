package entity

// NormalizeClock trims a TIME value read from Postgres to the HH:MM form
// used everywhere else. The driver returns TIME columns with seconds
// ("09:00:00"), which would never compare equal to the HH:MM strings the
// slot generator produces and request validation accepts.
func NormalizeClock(s string) string {
	if len(s) > 5 && s[2] == ':' {
		return s[:5]
	}
	return s
}
