// Package calendarmap maps real calendar dates to the puzzle's (month, day,
// weekday) configuration space and enumerates every distinct configuration the
// dispatcher must cover.
package calendarmap

import (
	"time"

	"github.com/calpuzzle/calpuzzle/internal/puzzle"
)

// FirstYear and LastYear bound the range of calendar years the dispatcher sweeps.
const (
	FirstYear = 2022
	LastYear  = 2048
)

// Weekday returns the weekday of the given date as 0=Monday..6=Sunday. The
// standard library's time.Weekday puts Sunday at 0; this remaps it to the
// Monday-first convention the puzzle's board layout uses.
func Weekday(year, month, day int) int {
	stdWeekday := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(stdWeekday) + 6) % 7
}

// IsLeapYear reports whether year is a leap year under the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// IsValidDate reports whether (year, month, day) names a real date.
func IsValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= DaysInMonth(year, month)
}

// All enumerates every distinct (month, day, weekday) configuration that occurs
// on some real date between FirstYear and LastYear, in deterministic first-seen
// order. Across that range every valid (month, day) pair is observed on all
// seven weekdays at least once, so the result always has exactly 366*7 = 2562
// members.
func All() []puzzle.Configuration {
	seen := make(map[puzzle.Configuration]bool)
	var configs []puzzle.Configuration
	for year := FirstYear; year <= LastYear; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				cfg := puzzle.Configuration{Month: month, Day: day, Weekday: Weekday(year, month, day)}
				if seen[cfg] {
					continue
				}
				seen[cfg] = true
				configs = append(configs, cfg)
			}
		}
	}
	return configs
}
