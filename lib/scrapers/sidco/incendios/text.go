package incendios

import (
	"regexp"
	"sidco-backend/lib/timezone"
	"strconv"
	"strings"
	"time"
)

// ParseArea reads the portal's hectare figures, which use `.` as the
// thousands separator and `,` as the decimal comma ("1.234,5" is 1234.5).
// Empty or non-numeric text yields nil.
func ParseArea(raw string) *float64 {
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

var fechaRegex = regexp.MustCompile(`^(\d{1,2})-([a-záéíóú]+)-(\d{4}) (\d{1,2}):(\d{2})$`)

var meses = map[string]time.Month{
	"ene":  time.January,
	"feb":  time.February,
	"mar":  time.March,
	"abr":  time.April,
	"may":  time.May,
	"jun":  time.June,
	"jul":  time.July,
	"ago":  time.August,
	"sep":  time.September,
	"sept": time.September,
	"oct":  time.October,
	"nov":  time.November,
	"dic":  time.December,
}

// ParseFecha reads listing timestamps like "16-nov-2025 18:36". The month
// abbreviation is Spanish, so time.Parse layouts won't do. Anything that
// doesn't fit yields nil rather than an error.
func ParseFecha(raw string) *time.Time {
	m := fechaRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if m == nil {
		return nil
	}
	month, ok := meses[m[2]]
	if !ok {
		return nil
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	if day < 1 || hour > 23 || minute > 59 {
		return nil
	}

	t := time.Date(year, month, day, hour, minute, 0, 0, timezone.Location)
	// time.Date normalizes overflow (feb 31 becomes mar 3); a date that
	// doesn't round-trip never existed on the calendar
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return nil
	}
	return &t
}
