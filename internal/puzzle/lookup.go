package puzzle

import "github.com/calpuzzle/calpuzzle/internal/geom"

// CellLabel describes the permanent tag a single outline cell carries.
type CellLabel struct {
	Kind  LabelKind
	Value int // month 1..12, day 1..31, or weekday 0..6, depending on Kind
}

var cellLabels map[geom.Cell]CellLabel

func init() {
	cellLabels = make(map[geom.Cell]CellLabel, Outline.Count())
	for m := 1; m <= 12; m++ {
		cellLabels[monthCell(m)] = CellLabel{Kind: LabelMonth, Value: m}
	}
	for d := 1; d <= 31; d++ {
		cellLabels[dayCell(d)] = CellLabel{Kind: LabelDay, Value: d}
	}
	for w := 0; w <= 6; w++ {
		cellLabels[weekdayCell(w)] = CellLabel{Kind: LabelWeekday, Value: w}
	}
}

// LabelOf returns the label carried by c, if any. ok is false for grid cells
// outside the outline; every member of Outline carries a label.
func LabelOf(c geom.Cell) (CellLabel, bool) {
	l, ok := cellLabels[c]
	return l, ok
}

// FromReservedCells derives the Configuration that reserves exactly the three
// given cells, failing unless they carry exactly one month, one day, and one
// weekday label between them. Used by discover mode to read off the
// configuration a tiling happens to leave uncovered.
func FromReservedCells(cells []geom.Cell) (Configuration, bool) {
	if len(cells) != 3 {
		return Configuration{}, false
	}
	var cfg Configuration
	var haveMonth, haveDay, haveWeekday bool
	for _, c := range cells {
		label, ok := LabelOf(c)
		if !ok {
			return Configuration{}, false
		}
		switch label.Kind {
		case LabelMonth:
			if haveMonth {
				return Configuration{}, false
			}
			haveMonth = true
			cfg.Month = label.Value
		case LabelDay:
			if haveDay {
				return Configuration{}, false
			}
			haveDay = true
			cfg.Day = label.Value
		case LabelWeekday:
			if haveWeekday {
				return Configuration{}, false
			}
			haveWeekday = true
			cfg.Weekday = label.Value
		default:
			return Configuration{}, false
		}
	}
	if !haveMonth || !haveDay || !haveWeekday {
		return Configuration{}, false
	}
	return cfg, true
}
