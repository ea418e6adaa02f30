package puzzle

import "github.com/calpuzzle/calpuzzle/internal/geom"

// Outline is the fixed 50-cell physical layout of the puzzle board: two header
// rows of six month cells, four full rows of seven day cells, a final day row of
// three cells plus four weekday cells, and a closing row of three weekday cells.
var Outline geom.Set

// monthLabels and weekdayLabels are the three-letter abbreviations used in
// catalogue records and CLI output.
var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var weekdayLabels = [7]string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

// weekdayCells maps weekday (0=Monday..6=Sunday) to its fixed board cell.
var weekdayCells [7]geom.Cell

func init() {
	var cells []geom.Cell
	for row := 6; row <= 7; row++ { // two month rows
		for col := 0; col < 6; col++ {
			c, _ := geom.NewCell(col, row)
			cells = append(cells, c)
		}
	}
	for row := 2; row <= 5; row++ { // four full day rows
		for col := 0; col < 7; col++ {
			c, _ := geom.NewCell(col, row)
			cells = append(cells, c)
		}
	}
	for col := 0; col < 3; col++ { // trailing day cells
		c, _ := geom.NewCell(col, 1)
		cells = append(cells, c)
	}

	// Weekday cells, fixed by the physical board layout. Thu/Fri/Sat sit on the
	// closing row; Sun/Mon/Tue/Wed sit alongside the trailing day cells.
	weekdayCellCoords := map[string][2]int{
		"Thu": {4, 0},
		"Fri": {5, 0},
		"Sat": {6, 0},
		"Sun": {3, 1},
		"Mon": {4, 1},
		"Tue": {5, 1},
		"Wed": {6, 1},
	}
	for w, label := range weekdayLabels {
		xy := weekdayCellCoords[label]
		c, _ := geom.NewCell(xy[0], xy[1])
		weekdayCells[w] = c
		cells = append(cells, c)
	}

	Outline = geom.NewSet(cells...)
}

// monthCell returns the fixed board cell bearing month m (1..12).
func monthCell(m int) geom.Cell {
	col := (m - 1) % 6
	row := 7 - (m-1)/6
	c, err := geom.NewCell(col, row)
	if err != nil {
		panic(err)
	}
	return c
}

// dayCell returns the fixed board cell bearing day-of-month d (1..31).
func dayCell(d int) geom.Cell {
	col := (d - 1) % 7
	row := 5 - (d-1)/7
	c, err := geom.NewCell(col, row)
	if err != nil {
		panic(err)
	}
	return c
}

// weekdayCell returns the fixed board cell bearing weekday w (0=Monday..6=Sunday).
func weekdayCell(w int) geom.Cell {
	return weekdayCells[w]
}
