package floorplan

import "fmt"

// Verify checks the invariants of a finished floorplan:
//
//   - interior walls are symmetric and exterior walls are border;
//   - exactly one exterior wall is open and it is the recorded exit;
//   - every cell keeps a wall, none is sealed off, all form one component.
//
// Every failure wraps ErrInvariant.
// Complexity: O(W×H).
func Verify(fp *Floorplan) error {
	if fp == nil {
		return fmt.Errorf("%w: nil floorplan", ErrInvariant)
	}
	openExterior := 0
	for i := 0; i < fp.Size(); i++ {
		c := fp.Coordinate(i)
		for _, d := range Directions {
			n := c.Neighbor(d)
			if !fp.InBounds(n.X, n.Y) {
				if fp.borders[i]&d.bit() == 0 {
					return fmt.Errorf("%w: exterior wall %v is not border", ErrInvariant, Wallboard{c.X, c.Y, d})
				}
				if fp.walls[i]&d.bit() == 0 {
					if i != fp.exit || d != fp.exitDir {
						return fmt.Errorf("%w: open exterior wall %v is not the exit", ErrInvariant, Wallboard{c.X, c.Y, d})
					}
					openExterior++
				}
				continue
			}
			j := fp.index(n.X, n.Y)
			inv := d.Inverse().bit()
			if (fp.walls[i]&d.bit() == 0) != (fp.walls[j]&inv == 0) {
				return fmt.Errorf("%w: asymmetric wall %v", ErrInvariant, Wallboard{c.X, c.Y, d})
			}
			if (fp.borders[i]&d.bit() == 0) != (fp.borders[j]&inv == 0) {
				return fmt.Errorf("%w: asymmetric border %v", ErrInvariant, Wallboard{c.X, c.Y, d})
			}
		}
		switch open := fp.OpenSides(c.X, c.Y); {
		case fp.Size() > 1 && open == 0:
			return fmt.Errorf("%w: cell %v is sealed", ErrInvariant, c)
		case open == len(Directions):
			return fmt.Errorf("%w: cell %v has no wall", ErrInvariant, c)
		}
	}
	if fp.exit < 0 {
		return fmt.Errorf("%w: no exit", ErrInvariant)
	}
	exit := fp.Coordinate(fp.exit)
	if n := exit.Neighbor(fp.exitDir); fp.InBounds(n.X, n.Y) {
		return fmt.Errorf("%w: exit %v does not face outside", ErrInvariant, Wallboard{exit.X, exit.Y, fp.exitDir})
	}
	if openExterior != 1 {
		return fmt.Errorf("%w: %d open exterior walls", ErrInvariant, openExterior)
	}
	if comps := fp.ConnectedComponents(); len(comps) != 1 {
		return fmt.Errorf("%w: %d components", ErrInvariant, len(comps))
	}
	return nil
}

// IsPerfect reports whether the floorplan is a spanning tree of its cells:
// connected with exactly W×H-1 interior walls removed.
func (fp *Floorplan) IsPerfect() bool {
	return fp.removed == fp.Size()-1 && fp.IsConnected()
}
