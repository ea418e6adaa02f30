package geom

// ConnectedComponents partitions s into its maximal 4-connected components. Used by
// the solver's pruning heuristics to reason about disjoint regions of the remaining
// target. Components are returned in ascending order of their lowest member cell
// index, which keeps results deterministic for a given s.
func ConnectedComponents(s Set) []Set {
	var components []Set
	remaining := s
	for remaining != 0 {
		seed := remaining.Cells()[0]
		component := floodFill(s, seed)
		components = append(components, component)
		remaining &^= component
	}
	return components
}

func floodFill(s Set, seed Cell) Set {
	visited := NewSet(seed)
	frontier := []Cell{seed}
	for len(frontier) > 0 {
		c := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, n := range neighbors4(c) {
			if !s.Has(n) || visited.Has(n) {
				continue
			}
			visited = visited.Add(n)
			frontier = append(frontier, n)
		}
	}
	return visited
}

func neighbors4(c Cell) []Cell {
	candidates := [4]Cell{
		{Col: c.Col - 1, Row: c.Row},
		{Col: c.Col + 1, Row: c.Row},
		{Col: c.Col, Row: c.Row - 1},
		{Col: c.Col, Row: c.Row + 1},
	}
	out := make([]Cell, 0, 4)
	for _, n := range candidates {
		if n.Col < 0 || n.Col >= Width || n.Row < 0 || n.Row >= Height {
			continue
		}
		out = append(out, n)
	}
	return out
}
