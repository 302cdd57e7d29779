package factory

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/floorplan"
	"github.com/sirupsen/logrus"
)

// Progress checkpoints. The builder reports inside [buildStart, buildEnd].
const (
	buildStart   = 5
	buildEnd     = 90
	distanceDone = 95
)

// Maze is the product of one order: a frozen floorplan, its distance field
// and the suggested start cell, the one farthest from the exit.
type Maze struct {
	ID        uuid.UUID
	Order     Order
	Floorplan *floorplan.Floorplan
	Distances *distance.Field
	Start     floorplan.Cell
}

// Generate runs the whole pipeline for o on the calling goroutine. progress
// may be nil; when set it receives checkpoints from 0 to 95, the final 100 is
// left to the caller.
func Generate(ctx context.Context, o Order, progress func(percent int)) (*Maze, error) {
	return generate(ctx, o, progress, discardLogger())
}

func generate(ctx context.Context, o Order, progress func(int), log logrus.FieldLogger) (*Maze, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if progress == nil {
		progress = func(int) {}
	}
	w, h := o.Dimensions()
	fp, err := floorplan.New(w, h)
	if err != nil {
		return nil, err
	}
	progress(0)

	err = builder.Generate(ctx, fp, o.Method,
		builder.WithSeed(o.Seed),
		builder.WithPerfect(o.Perfect),
		builder.WithRooms(o.Rooms()),
		builder.WithLogger(log),
		builder.WithProgress(func(p int) {
			progress(buildStart + p*(buildEnd-buildStart)/100)
		}),
	)
	if err != nil {
		return nil, err
	}

	return assemble(o, fp, progress)
}

// assemble computes the distance field of a finished floorplan.
func assemble(o Order, fp *floorplan.Floorplan, progress func(int)) (*Maze, error) {
	field, err := distance.Compute(fp)
	if err != nil {
		return nil, err
	}
	progress(distanceDone)

	return &Maze{
		ID:        uuid.New(),
		Order:     o,
		Floorplan: fp,
		Distances: field,
		Start:     field.StartPosition(),
	}, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
