package builder

import (
	"testing"

	"github.com/katalvlaran/lvmaze/floorplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisjointSet(t *testing.T) {
	ds := newDisjointSet(6)
	assert.Equal(t, 6, ds.sets())

	assert.True(t, ds.union(0, 1))
	assert.True(t, ds.union(2, 3))
	assert.True(t, ds.union(1, 3))
	assert.False(t, ds.union(0, 2), "already joined")
	assert.Equal(t, 3, ds.sets())

	assert.Equal(t, ds.find(0), ds.find(3))
	assert.NotEqual(t, ds.find(0), ds.find(4))
	assert.Equal(t, 5, ds.find(5))
}

func TestJoinOpen(t *testing.T) {
	fp, err := floorplan.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, fp.MarkRoom(floorplan.Rect{X: 1, Y: 1, W: 2, H: 2}, nil))

	ds := newDisjointSet(fp.Size())
	joinOpen(fp, ds)
	assert.Equal(t, 16-3, ds.sets())
	root := ds.find(fp.Index(floorplan.Cell{X: 1, Y: 1}))
	for _, c := range []floorplan.Cell{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		assert.Equal(t, root, ds.find(fp.Index(c)))
	}
}

func TestFlood(t *testing.T) {
	fp, err := floorplan.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, fp.MarkRoom(floorplan.Rect{X: 1, Y: 1, W: 3, H: 2}, nil))

	visited := make([]bool, fp.Size())
	region := flood(fp, fp.Index(floorplan.Cell{X: 2, Y: 2}), visited)
	assert.Len(t, region, 6)
	assert.Equal(t, fp.Index(floorplan.Cell{X: 2, Y: 2}), region[0])
	assert.Nil(t, flood(fp, region[3], visited), "already visited")
	assert.Len(t, flood(fp, 0, visited), 1)
}

func TestRoomPlacement(t *testing.T) {
	fp, err := floorplan.New(30, 30)
	require.NoError(t, err)
	cfg := newBuilderConfig(WithSeed(5), WithRooms(6))

	placed := placeRooms(fp, cfg)
	require.Equal(t, 6, placed)
	assert.Equal(t, 6, fp.Rooms())

	for y := 0; y < fp.Height(); y++ {
		for x := 0; x < fp.Width(); x++ {
			if !fp.IsInRoom(x, y) {
				continue
			}
			assert.False(t, fp.IsOnBorder(x, y), "rooms keep off the grid edge")
			assert.Less(t, fp.OpenSides(x, y), 4, "room cell (%d,%d) keeps a wall", x, y)
			// neighbors are either the same room or corridor
			for _, d := range floorplan.Directions {
				n := floorplan.Cell{X: x, Y: y}.Neighbor(d)
				if id := fp.RoomID(n.X, n.Y); id != 0 {
					assert.Equal(t, fp.RoomID(x, y), id, "rooms must not touch")
				}
			}
		}
	}
}

func TestRoomPlacement_TooSmall(t *testing.T) {
	fp, err := floorplan.New(3, 3)
	require.NoError(t, err)
	assert.Zero(t, placeRooms(fp, newBuilderConfig(WithRooms(2))))
}

func TestReportIsMonotonic(t *testing.T) {
	var got []int
	cfg := newBuilderConfig(WithProgress(func(p int) { got = append(got, p) }))
	cfg.report(0)
	cfg.step(1, 10)
	cfg.step(1, 10)
	cfg.report(5)
	cfg.step(10, 10)
	cfg.report(140)
	cfg.report(100)
	assert.Equal(t, []int{0, 9, 95, 100}, got)
}
