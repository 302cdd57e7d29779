package floorplan

import (
	"fmt"
	"math"
)

// Snapshot is the plain-data form of a Floorplan, suitable for encoding.
type Snapshot struct {
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Walls   []uint8   `json:"walls"`
	Borders []uint8   `json:"borders"`
	Rooms   []int32   `json:"rooms"`
	Exit    int       `json:"exit"`
	ExitDir Direction `json:"exit_dir"`
}

// Snapshot copies the floorplan state.
func (fp *Floorplan) Snapshot() Snapshot {
	return Snapshot{
		Width:   fp.width,
		Height:  fp.height,
		Walls:   append([]uint8(nil), fp.walls...),
		Borders: append([]uint8(nil), fp.borders...),
		Rooms:   append([]int32(nil), fp.rooms...),
		Exit:    fp.exit,
		ExitDir: fp.exitDir,
	}
}

// FromSnapshot rebuilds a frozen Floorplan and runs Verify on it, so a
// loaded maze satisfies the same invariants as a generated one.
func FromSnapshot(s Snapshot) (*Floorplan, error) {
	if s.Width <= 0 || s.Height <= 0 || s.Width > math.MaxInt32/s.Height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	n := s.Width * s.Height
	if len(s.Walls) != n || len(s.Borders) != n || len(s.Rooms) != n {
		return nil, fmt.Errorf("%w: snapshot arrays do not match %dx%d", ErrInvariant, s.Width, s.Height)
	}
	if s.Exit < -1 || s.Exit >= n || s.ExitDir > West {
		return nil, fmt.Errorf("%w: exit %d/%d", ErrInvariant, s.Exit, s.ExitDir)
	}
	fp := &Floorplan{
		width:   s.Width,
		height:  s.Height,
		walls:   make([]uint8, n),
		borders: make([]uint8, n),
		rooms:   append([]int32(nil), s.Rooms...),
		exit:    s.Exit,
		exitDir: s.ExitDir,
	}
	for i := 0; i < n; i++ {
		fp.walls[i] = s.Walls[i] & allWalls
		fp.borders[i] = s.Borders[i] & allWalls
		if id := int(fp.rooms[i]); id > fp.roomCount {
			fp.roomCount = id
		}
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			i := fp.index(x, y)
			if x+1 < s.Width && fp.walls[i]&East.bit() == 0 {
				fp.removed++
			}
			if y+1 < s.Height && fp.walls[i]&South.bit() == 0 {
				fp.removed++
			}
		}
	}
	if err := Verify(fp); err != nil {
		return nil, err
	}
	fp.Freeze()

	return fp, nil
}
