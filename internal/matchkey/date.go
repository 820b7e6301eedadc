package matchkey

import (
	"regexp"
	"strconv"
	"time"
)

// dateOrder describes which capture group holds which date component.
type dateOrder int

const (
	orderYMD dateOrder = iota
	orderDMY
)

type datePattern struct {
	re    *regexp.Regexp
	order dateOrder
}

const dateSep = `[.\-_ ]+`

// Patterns are tried in priority order; the first calendar-valid hit wins.
// Four-digit years are matched before two-digit ones so "2024-01-24" never
// parses as a short form.
var datePatterns = []datePattern{
	{regexp.MustCompile(`(?:^|\D)(\d{4})` + dateSep + `(\d{2})` + dateSep + `(\d{2})(?:\D|$)`), orderYMD},
	{regexp.MustCompile(`(?:^|\D)(\d{2})` + dateSep + `(\d{2})` + dateSep + `(\d{4})(?:\D|$)`), orderDMY},
	{regexp.MustCompile(`(?:^|\D)(\d{2})` + dateSep + `(\d{2})` + dateSep + `(\d{2})(?:\D|$)`), orderYMD},
	{regexp.MustCompile(`(?:^|\D)(\d{2})` + dateSep + `(\d{2})` + dateSep + `(\d{2})(?:\D|$)`), orderDMY},
	{regexp.MustCompile(`(?:^|\D)(\d{4})(\d{2})(\d{2})(?:\D|$)`), orderYMD},
	{regexp.MustCompile(`(?:^|\D)(\d{2})(\d{2})(\d{4})(?:\D|$)`), orderDMY},
	{regexp.MustCompile(`(?:^|\D)(\d{2})(\d{2})(\d{2})(?:\D|$)`), orderDMY},
}

// ExtractDate scans a stem (or a normalized key) for an embedded calendar
// date. Supported layouts: YYYY-MM-DD, DD-MM-YYYY, YY-MM-DD, DD-MM-YY with
// dot, dash, underscore, or space separators, plus the compact YYYYMMDD,
// DDMMYYYY, and DDMMYY runs. Two-digit years below 50 resolve to 20xx,
// the rest to 19xx. Returns false when no valid date is present.
func ExtractDate(stem string) (time.Time, bool) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		var year, month, day string
		switch p.order {
		case orderYMD:
			year, month, day = m[1], m[2], m[3]
		case orderDMY:
			day, month, year = m[1], m[2], m[3]
		}
		if date, ok := makeDate(year, month, day); ok {
			return date, true
		}
	}
	return time.Time{}, false
}

func makeDate(yearText, monthText, dayText string) (time.Time, bool) {
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(monthText)
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayText)
	if err != nil {
		return time.Time{}, false
	}
	if len(yearText) == 2 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30 -> Mar 1); reject those.
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}
