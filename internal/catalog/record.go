// Package catalog is the filesystem-backed, content-addressed store of solved
// configurations: one YAML payload per configuration, written atomically, plus
// a companion advisory lock file used to coordinate concurrent workers.
package catalog

import (
	"fmt"
	"strconv"

	"github.com/calpuzzle/calpuzzle/internal/geom"
	"github.com/calpuzzle/calpuzzle/internal/piece"
	"github.com/calpuzzle/calpuzzle/internal/puzzle"
	"github.com/calpuzzle/calpuzzle/internal/solver"
)

// Record is the structured catalogue payload for one configuration.
type Record struct {
	Configuration RecordConfiguration `yaml:"configuration"`
	Parts         []RecordPart        `yaml:"parts"`
}

// RecordConfiguration mirrors puzzle.Configuration with human-readable labels
// alongside the numeric fields.
type RecordConfiguration struct {
	Month        int    `yaml:"month"`
	MonthLabel   string `yaml:"monthLabel"`
	Day          int    `yaml:"day"`
	Weekday      int    `yaml:"weekday"`
	WeekdayLabel string `yaml:"weekdayLabel"`
}

// RecordPart is one placement in a catalogue record: a piece name, its
// translation offset, and its orientation.
type RecordPart struct {
	Name       string `yaml:"name"`
	XOffset    int    `yaml:"xoffset"`
	YOffset    int    `yaml:"yoffset"`
	Rotation   int    `yaml:"rotation"`
	IsMirrored bool   `yaml:"ismirrored"`
}

func newRecord(cfg puzzle.Configuration, placements []solver.Placement) Record {
	parts := make([]RecordPart, len(placements))
	for i, p := range placements {
		parts[i] = RecordPart{
			Name:       string(p.Piece),
			XOffset:    p.Offset.Col,
			YOffset:    p.Offset.Row,
			Rotation:   p.Rotation,
			IsMirrored: p.Mirrored,
		}
	}
	return Record{
		Configuration: RecordConfiguration{
			Month:        cfg.Month,
			MonthLabel:   cfg.MonthLabel(),
			Day:          cfg.Day,
			Weekday:      cfg.Weekday,
			WeekdayLabel: cfg.WeekdayLabel(),
		},
		Parts: parts,
	}
}

// ParseBasename recovers the (month, day, weekday) triple from a catalogue
// payload's basename (the cfg.String() format, e.g. "010105-Jan-01-Sat", with
// or without the .yaml extension). The leading six digits are authoritative;
// the trailing labels exist only for readability when browsing the directory.
func ParseBasename(name string) (month, day, weekday int, err error) {
	if len(name) < 6 {
		return 0, 0, 0, fmt.Errorf("%w: basename %q too short", ErrStoreIO, name)
	}
	digits := name[:6]
	month, err1 := strconv.Atoi(digits[0:2])
	day, err2 := strconv.Atoi(digits[2:4])
	weekday, err3 := strconv.Atoi(digits[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("%w: basename %q does not start with MMDDWW", ErrStoreIO, name)
	}
	return month, day, weekday, nil
}

func partsToPlacements(parts []RecordPart) ([]solver.Placement, error) {
	placements := make([]solver.Placement, len(parts))
	for i, part := range parts {
		if len(part.Name) != 1 {
			return nil, fmt.Errorf("%w: malformed piece name %q", ErrStoreIO, part.Name)
		}
		name := part.Name[0]
		if _, ok := piece.ByName[name]; !ok {
			return nil, fmt.Errorf("%w: unknown piece name %q", ErrStoreIO, part.Name)
		}
		offset, err := geom.NewCell(part.XOffset, part.YOffset)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreIO, err)
		}
		placements[i] = solver.Placement{
			Piece:    name,
			Offset:   offset,
			Rotation: part.Rotation,
			Mirrored: part.IsMirrored,
		}
	}
	return placements, nil
}
