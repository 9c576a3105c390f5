package stats

import (
	"time"

	apperrors "github.com/alexzavalny/chessstats/internal/errors"
)

// Window selects which games count toward a summary: a single calendar
// date (today, yesterday) or an entire month (month, prevmonth).
type Window string

const (
	WindowToday     Window = "today"
	WindowYesterday Window = "yesterday"
	WindowMonth     Window = "month"
	WindowPrevMonth Window = "prevmonth"
)

// Windows returns the recognized window selectors.
func Windows() []Window {
	return []Window{WindowToday, WindowYesterday, WindowMonth, WindowPrevMonth}
}

// ParseWindow validates a selector string.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowToday, WindowYesterday, WindowMonth, WindowPrevMonth:
		return Window(s), nil
	}
	return "", apperrors.NewValidationError("period", "must be one of today, yesterday, month, prevmonth")
}

// FiltersByDay reports whether the window narrows games to one exact
// calendar date. Month windows take the whole archive unfiltered.
func (w Window) FiltersByDay() bool {
	return w == WindowToday || w == WindowYesterday
}

// TargetDate returns the calendar date a day-filtered window selects,
// relative to the reference date. For month windows it returns the
// reference date itself.
func (w Window) TargetDate(ref time.Time) time.Time {
	if w == WindowYesterday {
		return ref.AddDate(0, 0, -1)
	}
	return ref
}

// ArchiveMonth returns the year and month of the upstream archive this
// window needs. A yesterday that falls in the previous month requests the
// previous month's archive.
func (w Window) ArchiveMonth(ref time.Time) (int, time.Month) {
	switch w {
	case WindowYesterday:
		d := ref.AddDate(0, 0, -1)
		return d.Year(), d.Month()
	case WindowPrevMonth:
		d := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 0, -1)
		return d.Year(), d.Month()
	default:
		return ref.Year(), ref.Month()
	}
}

// Contains reports whether a game ending at endTime falls inside the
// window. The comparison happens in the reference date's location.
func (w Window) Contains(endTime, ref time.Time) bool {
	if !w.FiltersByDay() {
		return true
	}
	return sameDate(endTime.In(ref.Location()), w.TargetDate(ref))
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
