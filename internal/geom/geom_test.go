package geom

import (
	"errors"
	"testing"
)

func TestNewCell(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		col     int
		row     int
		wantErr error
	}{
		{name: "ok origin", col: 0, row: 0, wantErr: nil},
		{name: "ok corner", col: Width - 1, row: Height - 1, wantErr: nil},
		{name: "bad negative col", col: -1, row: 0, wantErr: ErrInvalidCell},
		{name: "bad col overflow", col: Width, row: 0, wantErr: ErrInvalidCell},
		{name: "bad negative row", col: 0, row: -1, wantErr: ErrInvalidCell},
		{name: "bad row overflow", col: 0, row: Height, wantErr: ErrInvalidCell},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewCell(tt.col, tt.row)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Col != tt.col || got.Row != tt.row {
				t.Errorf("unexpected cell: got=%v want=(%d,%d)", got, tt.col, tt.row)
			}
		})
	}
}

func mustCells(t *testing.T, coords [][2]int) Set {
	t.Helper()
	var cells []Cell
	for _, xy := range coords {
		c, err := NewCell(xy[0], xy[1])
		if err != nil {
			t.Fatalf("bad fixture coordinate %v: %v", xy, err)
		}
		cells = append(cells, c)
	}
	return NewSet(cells...)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	shifted := mustCells(t, [][2]int{{2, 3}, {3, 3}, {2, 4}})
	want := mustCells(t, [][2]int{{0, 0}, {1, 0}, {0, 1}})
	got := Normalize(shifted)
	if got != want {
		t.Errorf("unexpected normalised set:\ngot:\n%swant:\n%s", got.Dump(), want.Dump())
	}
	if Normalize(want) != want {
		t.Error("normalizing an already-normalised shape must be a no-op")
	}
}

func TestRotateAndMirrorPreserveArea(t *testing.T) {
	t.Parallel()
	shape := mustCells(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}}) // piece D
	for _, turns := range []int{0, 1, 2, 3} {
		rotated := Normalize(Rotate(shape, turns))
		if rotated.Count() != shape.Count() {
			t.Errorf("rotate(%d) changed area: got=%d want=%d", turns*90, rotated.Count(), shape.Count())
		}
	}
	mirrored := Normalize(Mirror(shape))
	if mirrored.Count() != shape.Count() {
		t.Errorf("mirror changed area: got=%d want=%d", mirrored.Count(), shape.Count())
	}
}

func TestDistinctOrientationsCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		shape       [][2]int
		allowMirror bool
		wantCount   int
	}{
		{
			name:        "piece A, 2-fold symmetric line, no mirror",
			shape:       [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
			allowMirror: false,
			wantCount:   2, // horizontal and vertical
		},
		{
			name:        "piece D, self-symmetric, mirror allowed but collapses",
			shape:       [][2]int{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}},
			allowMirror: true,
			wantCount:   4,
		},
		{
			name:        "piece C, asymmetric L-tromino-plus, mirror-distinct",
			shape:       [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
			allowMirror: true,
			wantCount:   8,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			shape := mustCells(t, tt.shape)
			orientations := DistinctOrientations(shape, tt.allowMirror)
			if len(orientations) != tt.wantCount {
				t.Errorf("unexpected orientation count: got=%d want=%d", len(orientations), tt.wantCount)
			}
			seen := make(map[Set]bool)
			for _, o := range orientations {
				if seen[o.Shape] {
					t.Errorf("duplicate orientation shape produced: %v", o)
				}
				seen[o.Shape] = true
				if o.Shape.Count() != shape.Count() {
					t.Errorf("orientation changed area: got=%d want=%d", o.Shape.Count(), shape.Count())
				}
			}
		})
	}
}

func TestFitsAndApply(t *testing.T) {
	t.Parallel()
	target := mustCells(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}})
	shape := mustCells(t, [][2]int{{0, 0}, {1, 0}, {2, 0}})
	offsetOK, _ := NewCell(0, 0)
	if !Fits(target, shape, offsetOK) {
		t.Fatal("expected shape to fit at origin")
	}

	offsetOutside, _ := NewCell(0, 3)
	if Fits(target, shape, offsetOutside) {
		t.Error("shape should not fit outside target")
	}

	remaining := Apply(target, shape, offsetOK)
	want := mustCells(t, [][2]int{{0, 1}, {1, 1}, {2, 1}})
	if remaining != want {
		t.Errorf("unexpected remaining target:\ngot:\n%swant:\n%s", remaining.Dump(), want.Dump())
	}

	offsetOffGrid := Cell{Col: Width - 1, Row: Height - 1}
	if Fits(target, shape, offsetOffGrid) {
		t.Error("offset that shifts shape off the grid must not fit")
	}
}

func TestConnectedComponents(t *testing.T) {
	t.Parallel()
	s := mustCells(t, [][2]int{{0, 0}, {1, 0}, {3, 0}, {3, 1}, {6, 7}})
	components := ConnectedComponents(s)
	if len(components) != 3 {
		t.Fatalf("unexpected component count: got=%d want=3", len(components))
	}
	total := 0
	for _, c := range components {
		total += c.Count()
	}
	if total != s.Count() {
		t.Errorf("components do not partition the set: got=%d want=%d", total, s.Count())
	}
}
