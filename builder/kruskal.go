// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// kruskal.go — randomized Kruskal.
//
// Algorithm:
//  1. Collect all removable wallboards and shuffle them.
//  2. Walk the list: tear down every wallboard whose sides lie in different
//     sets and union the sets.
//  3. Wallboards that would leave a cell without walls are set aside and
//     only used if sets remain after the walk.
//
// Complexity: O(E·α(W×H)) with E interior walls.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/floorplan"
)

type kruskalBuilder struct {
	cfg *builderConfig
}

// Method implements Builder.
func (b *kruskalBuilder) Method() Method { return MethodKruskal }

// Build implements Builder.
func (b *kruskalBuilder) Build(ctx context.Context, fp *floorplan.Floorplan) error {
	if err := checkInput(fp); err != nil {
		return err
	}
	n := fp.Size()
	walls := removableWallboards(fp)
	b.cfg.rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	ds := newDisjointSet(n)
	joinOpen(fp, ds)
	initial := ds.sets()
	var deferred []floorplan.Wallboard

	join := func(wb floorplan.Wallboard, force bool) (bool, error) {
		u, v := fp.Index(wb.Cell()), fp.Index(wb.Neighbor())
		if ds.find(u) == ds.find(v) {
			return false, nil
		}
		if !force && !fp.KeepsWalls(wb) {
			deferred = append(deferred, wb)
			return false, nil
		}
		if err := fp.DeleteWallboard(wb); err != nil {
			return false, fmt.Errorf("builder: kruskal: %w", err)
		}
		ds.union(u, v)
		b.cfg.step(initial-ds.sets(), initial-1)
		return true, nil
	}

	for _, wb := range walls {
		if ds.sets() == 1 {
			break
		}
		if err := canceled(ctx); err != nil {
			return err
		}
		if _, err := join(wb, false); err != nil {
			return err
		}
	}
	for _, wb := range deferred {
		if ds.sets() == 1 {
			break
		}
		if err := canceled(ctx); err != nil {
			return err
		}
		ok, err := join(wb, true)
		if err != nil {
			return err
		}
		if ok {
			b.cfg.log.WithField("wallboard", wb.String()).Debug("kruskal: opening a cell completely")
		}
	}
	if ds.sets() > 1 {
		return fmt.Errorf("%w: kruskal left %d components", ErrDisconnected, ds.sets())
	}
	return nil
}
