// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// unionfind.go — arena-indexed disjoint sets over row-major cell indices.
//
// Path halving in find and union by rank keep both operations at
// amortized O(α(n)). Sets only ever merge.

package builder

import "github.com/katalvlaran/lvmaze/floorplan"

type disjointSet struct {
	parent []int32
	rank   []uint8
	count  int
}

// newDisjointSet returns n singleton sets.
func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int32, n),
		rank:   make([]uint8, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = int32(i)
	}
	return ds
}

// find returns the root of x's set.
func (ds *disjointSet) find(x int) int {
	for int(ds.parent[x]) != x {
		// point x at its grandparent
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = int(ds.parent[x])
	}
	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	if ds.rank[ra] < ds.rank[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = int32(ra)
	if ds.rank[ra] == ds.rank[rb] {
		ds.rank[ra]++
	}
	ds.count--
	return true
}

// sets returns the number of disjoint sets.
func (ds *disjointSet) sets() int {
	return ds.count
}

// joinOpen unions every pair of cells already connected by an open interior
// wall, such as the inside of a room.
func joinOpen(fp *floorplan.Floorplan, ds *disjointSet) {
	w, h := fp.Width(), fp.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if x+1 < w && !fp.HasWall(x, y, floorplan.East) {
				ds.union(i, i+1)
			}
			if y+1 < h && !fp.HasWall(x, y, floorplan.South) {
				ds.union(i, i+w)
			}
		}
	}
}
