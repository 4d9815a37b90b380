package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver infers a due date from free text relative to a reference day.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string.
// e.g. "America/New_York"
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

var (
	weekdayRe  = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	tomorrowRe = regexp.MustCompile(`\btomorrow\b`)
	todayRe    = regexp.MustCompile(`\btoday\b`)

	numericDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	dashedDateRe  = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{2,4})\b`)
	monthDayRe    = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})\b`)
	dayMonthRe    = regexp.MustCompile(`\b(\d{1,2})\s+(january|february|march|april|may|june|july|august|september|october|november|december)\b`)
	endOfWeekRe   = regexp.MustCompile(`end of (the )?week`)
)

// Resolve scans lower-cased text for date cues and returns the resolved,
// workday-adjusted date. The guards run in fixed precedence order and
// the first match wins; ok is false when no cue is present. Parse
// failures on explicit dates also report ok == false.
func (r *Resolver) Resolve(text string, today time.Time) (time.Time, bool) {
	today = r.startOfDay(today)

	// "end of week" / "this week" mean the upcoming Friday.
	if endOfWeekRe.MatchString(text) || strings.Contains(text, "this week") {
		return r.adjustToWorkday(r.nextWeekday(today, time.Friday)), true
	}

	// A bare weekday name, with or without a leading "by".
	if m := weekdayRe.FindStringSubmatch(text); m != nil {
		return r.adjustToWorkday(r.nextWeekday(today, weekdays[m[1]])), true
	}

	if tomorrowRe.MatchString(text) {
		return r.adjustToWorkday(today.AddDate(0, 0, 1)), true
	}

	if todayRe.MatchString(text) {
		return r.adjustToWorkday(today), true
	}

	if strings.Contains(text, "next week") {
		return r.adjustToWorkday(today.AddDate(0, 0, 7)), true
	}

	return r.resolveExplicit(text, today)
}

// resolveExplicit tries the explicit date patterns in order. The first
// pattern that matches is parsed; later patterns are not consulted even
// when parsing fails.
func (r *Resolver) resolveExplicit(text string, today time.Time) (time.Time, bool) {
	if m := numericDateRe.FindStringSubmatch(text); m != nil {
		return r.parseNumeric(m[1], m[2], m[3])
	}
	if m := dashedDateRe.FindStringSubmatch(text); m != nil {
		return r.parseNumeric(m[1], m[2], m[3])
	}
	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[2])
		return r.makeDate(today.Year(), months[m[1]], day), true
	}
	if m := dayMonthRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		return r.makeDate(today.Year(), months[m[2]], day), true
	}
	return time.Time{}, false
}

// parseNumeric handles M/D/Y and M-D-Y dates. Two-digit years map to
// the 2000s. Out-of-range months or days degrade to no date.
func (r *Resolver) parseNumeric(monthStr, dayStr, yearStr string) (time.Time, bool) {
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	year, _ := strconv.Atoi(yearStr)

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}

	return r.makeDate(year, time.Month(month), day), true
}

func (r *Resolver) makeDate(year int, month time.Month, day int) time.Time {
	return r.adjustToWorkday(time.Date(year, month, day, 0, 0, 0, 0, r.location))
}

// nextWeekday returns the next occurrence of target strictly after today.
// When today is the target weekday the date rolls a full week forward.
func (r *Resolver) nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysToAdd := int(target - today.Weekday())
	if daysToAdd <= 0 {
		daysToAdd += 7
	}
	return today.AddDate(0, 0, daysToAdd)
}

// adjustToWorkday shifts weekend dates to the nearest adjacent weekday:
// Saturday back to Friday, Sunday forward to Monday.
func (r *Resolver) adjustToWorkday(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, -1)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	default:
		return t
	}
}

func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// FormatDate renders a resolved date as an ISO calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormatISO)
}
