// Package org is the boundary to org-mode documents: parsing user date
// input, rendering timestamps and project trees as org markup, and locating
// insertion points in outline files.
package org

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	offsetPattern   = regexp.MustCompile(`^([+-])(\d+)([dwmy]?)$`)
	monthDayPattern = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})$`)
)

var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

// ParseDate resolves user date input against a base date, accepting the
// common org-read-date forms:
//
//	2024-06-14, 2024/6/14      literal dates
//	6-14, 6/14                 month-day this year, next year if past
//	14                         day of month, rolling to the next month with it
//	+3, +3d, -1w, +2m, +1y     offsets from the base date
//	fri, friday                next occurrence strictly after the base date
//	., today, tomorrow
//
// Empty input means the base date itself. The result is always midnight in
// the base's location.
func ParseDate(input string, base time.Time) (time.Time, error) {
	today := midnight(base)
	s := strings.TrimSpace(input)
	lower := strings.ToLower(s)

	switch lower {
	case "", ".", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if wd, ok := weekdayNames[lower]; ok {
		return nextWeekday(today, wd), nil
	}
	if t, ok := parseOffset(lower, today); ok {
		return t, nil
	}
	for _, layout := range []string{"2006-1-2", "2006/1/2"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, base.Location()), nil
		}
	}
	if t, ok := parseMonthDay(s, today); ok {
		return t, nil
	}
	if t, ok := parseBareDay(s, today); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", input)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextWeekday returns the next occurrence of wd strictly after today.
func nextWeekday(today time.Time, wd time.Weekday) time.Time {
	delta := (int(wd) - int(today.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return today.AddDate(0, 0, delta)
}

func parseOffset(s string, today time.Time) (time.Time, bool) {
	m := offsetPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	if m[1] == "-" {
		n = -n
	}
	switch m[3] {
	case "", "d":
		return today.AddDate(0, 0, n), true
	case "w":
		return today.AddDate(0, 0, 7*n), true
	case "m":
		return today.AddDate(0, n, 0), true
	case "y":
		return today.AddDate(n, 0, 0), true
	}
	return time.Time{}, false
}

// parseMonthDay reads M-D or M/D in the current year, rolling to next year
// when the date has already passed.
func parseMonthDay(s string, today time.Time) (time.Time, bool) {
	m := monthDayPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return time.Time{}, false
	}

	t := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, today.Location())
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	if t.Before(today) {
		t = time.Date(today.Year()+1, time.Month(month), day, 0, 0, 0, 0, today.Location())
	}
	return t, true
}

// parseBareDay reads a plain day-of-month, resolving to the nearest month
// (starting with the current one) that both contains the day and is not in
// the past.
func parseBareDay(s string, today time.Time) (time.Time, bool) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	for i := 0; i < 13; i++ {
		t := time.Date(today.Year(), today.Month()+time.Month(i), day, 0, 0, 0, 0, today.Location())
		if t.Day() != day || t.Before(today) {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}
