// Package schedule computes concrete subtask dates from a due date and a
// signed day offset.
package schedule

import "time"

// Resolve returns the calendar date for an offset measured backward from
// anchor: candidate = anchor - offsetDays. The offset table stores "days
// preceding the deadline", so a positive offset lands before the anchor and
// a negative one after it.
//
// When allowWeekend is false, a candidate landing on Saturday or Sunday
// rolls forward to the following Monday. Both weekend days reach the same
// Monday, never Tuesday.
func Resolve(anchor time.Time, offsetDays int, allowWeekend bool) time.Time {
	candidate := anchor.AddDate(0, 0, -offsetDays)
	if allowWeekend {
		return candidate
	}
	switch candidate.Weekday() {
	case time.Saturday:
		return candidate.AddDate(0, 0, 2)
	case time.Sunday:
		return candidate.AddDate(0, 0, 1)
	}
	return candidate
}
