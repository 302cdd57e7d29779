package distance

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
)

// walker encapsulates mutable BFS state.
type walker struct {
	fp    *floorplan.Floorplan
	queue []int32 // cell indices; floorplan.New caps the grid at MaxInt32 cells
	field *Field
}

// Compute returns the distance field of fp measured from its exit cell.
// The exit has distance 0; each reachable cell has one more than its
// closest open neighbor.
// Returns ErrNilFloorplan or ErrNoExit.
func Compute(fp *floorplan.Floorplan) (*Field, error) {
	if fp == nil {
		return nil, ErrNilFloorplan
	}
	exit, ok := fp.Exit()
	if !ok {
		return nil, ErrNoExit
	}
	return ComputeFrom(fp, exit.Cell())
}

// ComputeFrom returns the field of step counts to the nearest of sources.
// Duplicate sources are ignored.
// Returns ErrNilFloorplan, ErrNoSource or ErrOutOfBounds.
func ComputeFrom(fp *floorplan.Floorplan, sources ...floorplan.Cell) (*Field, error) {
	if fp == nil {
		return nil, ErrNilFloorplan
	}
	if len(sources) == 0 {
		return nil, ErrNoSource
	}
	for _, s := range sources {
		if !fp.InBounds(s.X, s.Y) {
			return nil, fmt.Errorf("%w: source %v", ErrOutOfBounds, s)
		}
	}

	n := fp.Size()
	w := &walker{
		fp:    fp,
		queue: make([]int32, 0, n),
		field: &Field{
			fp:      fp,
			width:   fp.Width(),
			height:  fp.Height(),
			dists:   make([]int, n),
			sources: append([]floorplan.Cell(nil), sources...),
		},
	}
	for i := range w.field.dists {
		w.field.dists[i] = Unreachable
	}
	for _, s := range sources {
		w.enqueue(fp.Index(s), 0)
	}
	w.loop()
	w.field.summarize()

	return w.field, nil
}

// enqueue records distance d for cell i and appends it to the queue, unless
// the cell was already reached.
func (w *walker) enqueue(i, d int) {
	if w.field.dists[i] != Unreachable {
		return
	}
	w.field.dists[i] = d
	w.queue = append(w.queue, int32(i))
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		u := int(w.queue[head])
		c := w.fp.Coordinate(u)
		next := w.field.dists[u] + 1
		for _, d := range floorplan.Directions {
			if w.fp.HasWall(c.X, c.Y, d) {
				continue
			}
			nb := c.Neighbor(d)
			if !w.fp.InBounds(nb.X, nb.Y) {
				continue // the exit opening
			}
			w.enqueue(w.fp.Index(nb), next)
		}
	}
}

// summarize finds the farthest cell (first in row-major order on ties) and
// counts reached cells.
func (f *Field) summarize() {
	f.max = Unreachable
	for i, d := range f.dists {
		if d == Unreachable {
			continue
		}
		f.reached++
		if d > f.max {
			f.max = d
			f.farthest = floorplan.Cell{X: i % f.width, Y: i / f.width}
		}
	}
}
