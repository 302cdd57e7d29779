// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// boruvka.go — component merging (randomized Borůvka).
//
// Algorithm:
//  1. Give every removable wallboard a weight in [minWeight, maxWeight] and a
//     random rank. Both sides of a wall share them. (weight, rank) is a strict
//     total order, so the cheapest wallboard of a component is unique and
//     ties between equal weights are decided uniformly at random.
//  2. Start from one set per cell; cells already joined by open walls
//     (room interiors) share a set.
//  3. Each round every component selects its cheapest wallboard leading to
//     another component. Selections are applied in ascending root order; one
//     whose sides were joined earlier in the same round is skipped.
//  4. Repeat until a single component remains.
//
// Wallboards whose removal would leave a cell without walls are ranked after
// all others. A component selects one only if it has nothing else.
//
// Complexity: O(log(W×H)) rounds in practice, O(W×H) work per round.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
	"github.com/sirupsen/logrus"
)

type boruvkaBuilder struct {
	cfg *builderConfig
}

// Method implements Builder.
func (b *boruvkaBuilder) Method() Method { return MethodBoruvka }

// boruvkaEdge is one removable wall between cells u and v.
type boruvkaEdge struct {
	wb     floorplan.Wallboard
	u, v   int
	weight int
	rank   int64
}

// selection is the cheapest wallboard found for a component in a round.
type selection struct {
	edge       int // index into edges, -1 if none
	saturating bool
}

// cheaper orders candidates: non-saturating first, then by weight, then rank.
func cheaper(edges []boruvkaEdge, e int, sat bool, cur selection) bool {
	if cur.edge < 0 {
		return true
	}
	if sat != cur.saturating {
		return !sat
	}
	a, c := &edges[e], &edges[cur.edge]
	if a.weight != c.weight {
		return a.weight < c.weight
	}
	return a.rank < c.rank
}

// Build implements Builder.
func (b *boruvkaBuilder) Build(ctx context.Context, fp *floorplan.Floorplan) error {
	if err := checkInput(fp); err != nil {
		return err
	}
	n := fp.Size()
	rng := b.cfg.rng

	walls := removableWallboards(fp)
	edges := make([]boruvkaEdge, len(walls))
	for i, wb := range walls {
		edges[i] = boruvkaEdge{
			wb:     wb,
			u:      fp.Index(wb.Cell()),
			v:      fp.Index(wb.Neighbor()),
			weight: minWeight + rng.Intn(maxWeight-minWeight+1),
			rank:   rng.Int63(),
		}
	}

	ds := newDisjointSet(n)
	joinOpen(fp, ds)
	initial := ds.sets()
	best := make([]selection, n)
	roots := make([]int, 0, initial)

	for round := 1; ds.sets() > 1; round++ {
		if err := canceled(ctx); err != nil {
			return err
		}
		for i := range best {
			best[i] = selection{edge: -1}
		}
		for e := range edges {
			ed := &edges[e]
			if !fp.CanTearDown(ed.wb) {
				continue
			}
			ru, rv := ds.find(ed.u), ds.find(ed.v)
			if ru == rv {
				continue
			}
			sat := !fp.KeepsWalls(ed.wb)
			if cheaper(edges, e, sat, best[ru]) {
				best[ru] = selection{edge: e, saturating: sat}
			}
			if cheaper(edges, e, sat, best[rv]) {
				best[rv] = selection{edge: e, saturating: sat}
			}
		}

		roots = roots[:0]
		for i := 0; i < n; i++ {
			if ds.find(i) != i {
				continue
			}
			if best[i].edge < 0 {
				return fmt.Errorf("%w: component of cell %v in round %d", ErrNoCandidate, fp.Coordinate(i), round)
			}
			roots = append(roots, i)
		}

		merged := 0
		for _, r := range roots {
			sel := best[r]
			ed := &edges[sel.edge]
			if ds.find(ed.u) == ds.find(ed.v) {
				continue
			}
			if !sel.saturating && !fp.KeepsWalls(ed.wb) {
				continue // changed this round, reconsider next round
			}
			if sel.saturating {
				b.cfg.log.WithField("wallboard", ed.wb.String()).Debug("boruvka: opening a cell completely")
			}
			if err := fp.DeleteWallboard(ed.wb); err != nil {
				return fmt.Errorf("builder: boruvka: %w", err)
			}
			ds.union(ed.u, ed.v)
			merged++
		}
		b.cfg.log.WithFields(logrus.Fields{"round": round, "merged": merged, "components": ds.sets()}).Trace("boruvka round")
		b.cfg.step(initial-ds.sets(), initial-1)
	}
	return nil
}
