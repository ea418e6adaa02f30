// Package puzzle turns a (month, day, weekday) configuration into the initial
// search target: the board outline with the three label cells it denotes removed.
package puzzle

import (
	"errors"
	"fmt"

	"github.com/calpuzzle/calpuzzle/internal/geom"
)

// ErrInvalidConfiguration is returned when a triple does not name a real date or
// would alias a cell outside the outline.
var ErrInvalidConfiguration = errors.New("puzzle: invalid configuration")

// genericDaysInMonth caps day-of-month independent of any particular year: Feb
// allows up to 29 (a leap day is a real date in some year), April/June/September/
// November cap at 30, and the rest at 31. Configuration carries no year, so this
// is deliberately the loosest bound that still rejects nonsense like day=30 Feb.
var genericDaysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Configuration identifies one puzzle instance: a real calendar date with no year
// attached, plus the weekday it falls on (0=Monday..6=Sunday) in some year.
type Configuration struct {
	Month, Day, Weekday int
}

// MonthLabel returns the three-letter month abbreviation.
func (c Configuration) MonthLabel() string {
	return monthLabels[c.Month-1]
}

// WeekdayLabel returns the three-letter weekday abbreviation.
func (c Configuration) WeekdayLabel() string {
	return weekdayLabels[c.Weekday]
}

// String renders the configuration in the catalogue's MMDDWW-Mon-DD-Wdy basename
// format (without extension).
func (c Configuration) String() string {
	return fmt.Sprintf("%02d%02d%02d-%s-%02d-%s",
		c.Month, c.Day, c.Weekday, c.MonthLabel(), c.Day, c.WeekdayLabel())
}

// NewConfiguration validates a (month, day, weekday) triple and returns it
// alongside the initial search target: the 50-cell outline minus the three
// reserved label cells.
func NewConfiguration(month, day, weekday int) (Configuration, geom.Set, error) {
	if month < 1 || month > 12 {
		return Configuration{}, geom.EmptySet, fmt.Errorf("%w: month=%d out of range", ErrInvalidConfiguration, month)
	}
	if weekday < 0 || weekday > 6 {
		return Configuration{}, geom.EmptySet, fmt.Errorf("%w: weekday=%d out of range", ErrInvalidConfiguration, weekday)
	}
	if day < 1 || day > genericDaysInMonth[month-1] {
		return Configuration{}, geom.EmptySet, fmt.Errorf("%w: %s %d is not a real date", ErrInvalidConfiguration, monthLabels[month-1], day)
	}

	cfg := Configuration{Month: month, Day: day, Weekday: weekday}
	mc, dc, wc := monthCell(month), dayCell(day), weekdayCell(weekday)
	if !Outline.Has(mc) || !Outline.Has(dc) || !Outline.Has(wc) {
		return Configuration{}, geom.EmptySet, fmt.Errorf("%w: reserved cell outside outline", ErrInvalidConfiguration)
	}
	if mc == dc || mc == wc || dc == wc {
		return Configuration{}, geom.EmptySet, fmt.Errorf("%w: reserved cells are not pairwise distinct", ErrInvalidConfiguration)
	}

	target := Outline.Remove(mc).Remove(dc).Remove(wc)
	return cfg, target, nil
}

// ReservedCells returns the three cells NewConfiguration reserved for cfg, in
// (month, day, weekday) order.
func (c Configuration) ReservedCells() (month, day, weekday geom.Cell) {
	return monthCell(c.Month), dayCell(c.Day), weekdayCell(c.Weekday)
}
