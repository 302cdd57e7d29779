package floorplan

// ConnectedComponents groups cells that can reach each other through open
// walls. Each component is a slice of row-major cell indices in BFS order;
// components are ordered by their smallest index.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (fp *Floorplan) ConnectedComponents() [][]int {
	total := fp.Size()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u%fp.width, u/fp.width
			for _, d := range Directions {
				if fp.walls[u]&d.bit() != 0 {
					continue
				}
				dx, dy := d.Delta()
				vx, vy := ux+dx, uy+dy
				if !fp.InBounds(vx, vy) {
					continue // the exit
				}
				vi := fp.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// IsConnected reports whether every cell is reachable from every other.
func (fp *Floorplan) IsConnected() bool {
	return len(fp.ConnectedComponents()) == 1
}
