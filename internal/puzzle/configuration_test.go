package puzzle

import (
	"errors"
	"testing"

	"github.com/calpuzzle/calpuzzle/internal/geom"
	"github.com/calpuzzle/calpuzzle/internal/piece"
)

func TestOutlineSize(t *testing.T) {
	t.Parallel()
	if got := Outline.Count(); got != 50 {
		t.Errorf("unexpected outline size: got=%d want=50", got)
	}
}

func cell(t *testing.T, col, row int) geom.Cell {
	t.Helper()
	c, err := geom.NewCell(col, row)
	if err != nil {
		t.Fatalf("bad fixture cell (%d,%d): %v", col, row, err)
	}
	return c
}

func TestNewConfiguration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                       string
		month, day, weekday       int
		wantErr                    error
		wantMonth, wantDay, wantWd [2]int
	}{
		{
			name: "1 Jan, Saturday", month: 1, day: 1, weekday: 5,
			wantMonth: [2]int{0, 7}, wantDay: [2]int{0, 5}, wantWd: [2]int{6, 0},
		},
		{
			name: "29 Feb, Monday", month: 2, day: 29, weekday: 0,
			wantMonth: [2]int{1, 7}, wantDay: [2]int{0, 1}, wantWd: [2]int{4, 1},
		},
		{
			name: "31 Dec, Sunday", month: 12, day: 31, weekday: 6,
			wantMonth: [2]int{5, 6}, wantDay: [2]int{2, 1}, wantWd: [2]int{3, 1},
		},
		{
			name: "30 Feb is never a real date", month: 2, day: 30, weekday: 0,
			wantErr: ErrInvalidConfiguration,
		},
		{
			name: "month out of range", month: 13, day: 1, weekday: 0,
			wantErr: ErrInvalidConfiguration,
		},
		{
			name: "weekday out of range", month: 1, day: 1, weekday: 7,
			wantErr: ErrInvalidConfiguration,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, target, err := NewConfiguration(tt.month, tt.day, tt.weekday)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if target.Count() != piece.TotalArea {
				t.Errorf("unexpected target size: got=%d want=%d", target.Count(), piece.TotalArea)
			}
			monthCell, dayCell, weekdayCell := cfg.ReservedCells()
			if want := cell(t, tt.wantMonth[0], tt.wantMonth[1]); monthCell != want {
				t.Errorf("unexpected month cell: got=%v want=%v", monthCell, want)
			}
			if want := cell(t, tt.wantDay[0], tt.wantDay[1]); dayCell != want {
				t.Errorf("unexpected day cell: got=%v want=%v", dayCell, want)
			}
			if want := cell(t, tt.wantWd[0], tt.wantWd[1]); weekdayCell != want {
				t.Errorf("unexpected weekday cell: got=%v want=%v", weekdayCell, want)
			}
			if target.Has(monthCell) || target.Has(dayCell) || target.Has(weekdayCell) {
				t.Error("reserved cells must not be members of the initial target")
			}
		})
	}
}
