package builder_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/distance"
	"github.com/katalvlaran/lvmaze/floorplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generate builds a w×h maze with the given method and options.
func generate(t *testing.T, w, h int, m builder.Method, opts ...builder.Option) *floorplan.Floorplan {
	t.Helper()
	fp, err := floorplan.New(w, h)
	require.NoError(t, err)
	require.NoError(t, builder.Generate(context.Background(), fp, m, opts...))
	return fp
}

// assertSolvable checks connectivity, the single exit and finite distances.
func assertSolvable(t *testing.T, fp *floorplan.Floorplan) {
	t.Helper()
	require.NoError(t, floorplan.Verify(fp))
	exits := 0
	for y := 0; y < fp.Height(); y++ {
		for x := 0; x < fp.Width(); x++ {
			if fp.IsExitPosition(x, y) {
				exits++
			}
		}
	}
	assert.Equal(t, 1, exits)

	f, err := distance.Compute(fp)
	require.NoError(t, err)
	assert.True(t, f.AllReachable())
}

// assertWalled checks that every cell keeps at least one wall.
func assertWalled(t *testing.T, fp *floorplan.Floorplan) {
	t.Helper()
	for y := 0; y < fp.Height(); y++ {
		for x := 0; x < fp.Width(); x++ {
			assert.Less(t, fp.OpenSides(x, y), 4, "cell (%d,%d) lost all walls", x, y)
		}
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range builder.Methods {
		got, err := builder.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := builder.ParseMethod(" Boruvka ")
	require.NoError(t, err)
	assert.Equal(t, builder.MethodBoruvka, got)

	_, err = builder.ParseMethod("eller")
	assert.ErrorIs(t, err, builder.ErrUnknownMethod)
	assert.Equal(t, "Method(9)", builder.Method(9).String())
}

func TestNew_UnknownMethod(t *testing.T) {
	_, err := builder.New(builder.Method(42))
	assert.ErrorIs(t, err, builder.ErrUnknownMethod)

	fp, err := floorplan.New(3, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, builder.Generate(context.Background(), fp, builder.Method(-1)), builder.ErrUnknownMethod)
	assert.ErrorIs(t, builder.Generate(context.Background(), nil, builder.MethodPrim), builder.ErrNilFloorplan)
}

func TestBuild_Perfect(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {2, 1}, {1, 5}, {4, 4}, {12, 12}, {20, 15}}
	for _, m := range builder.Methods {
		for _, sz := range sizes {
			for seed := int64(1); seed <= 5; seed++ {
				name := fmt.Sprintf("%v/%dx%d/seed%d", m, sz.w, sz.h, seed)
				t.Run(name, func(t *testing.T) {
					fp := generate(t, sz.w, sz.h, m, builder.WithSeed(seed), builder.WithPerfect(true))
					assertSolvable(t, fp)
					assertWalled(t, fp)
					assert.Equal(t, sz.w*sz.h-1, fp.RemovedCount())
					assert.True(t, fp.IsPerfect())
					assert.Zero(t, fp.Rooms())
					assert.True(t, fp.Frozen())
				})
			}
		}
	}
}

func TestBuild_Imperfect(t *testing.T) {
	for _, m := range builder.Methods {
		for seed := int64(1); seed <= 4; seed++ {
			t.Run(fmt.Sprintf("%v/seed%d", m, seed), func(t *testing.T) {
				fp := generate(t, 25, 20, m,
					builder.WithSeed(seed),
					builder.WithPerfect(false),
					builder.WithRooms(4),
				)
				assertSolvable(t, fp)
				assertWalled(t, fp)
				assert.Positive(t, fp.Rooms())
				assert.Greater(t, fp.RemovedCount(), 25*20-1, "rooms and loops add openings")
			})
		}
	}
}

func TestBuild_ExtraWalls(t *testing.T) {
	fp := generate(t, 10, 10, builder.MethodKruskal,
		builder.WithSeed(3), builder.WithPerfect(false), builder.WithExtraWalls(7))
	assertSolvable(t, fp)
	assert.Equal(t, 10*10-1+7, fp.RemovedCount())
}

func TestBuild_Deterministic(t *testing.T) {
	for _, m := range builder.Methods {
		a := generate(t, 15, 12, m, builder.WithSeed(99), builder.WithPerfect(false), builder.WithRooms(2))
		b := generate(t, 15, 12, m, builder.WithSeed(99), builder.WithPerfect(false), builder.WithRooms(2))
		assert.True(t, a.Equal(b), "%v must be deterministic", m)

		c := generate(t, 15, 12, m, builder.WithSeed(100), builder.WithPerfect(false), builder.WithRooms(2))
		assert.False(t, a.Equal(c), "%v ignores the seed", m)
	}
}

func TestBuild_DoesNotPlaceExit(t *testing.T) {
	fp, err := floorplan.New(6, 6)
	require.NoError(t, err)
	b, err := builder.New(builder.MethodBoruvka, builder.WithSeed(13))
	require.NoError(t, err)
	assert.Equal(t, builder.MethodBoruvka, b.Method())

	require.NoError(t, b.Build(context.Background(), fp))
	_, ok := fp.Exit()
	assert.False(t, ok)
	assert.True(t, fp.IsPerfect())
	assert.False(t, fp.Frozen())
}

func TestBuild_FrozenFloorplan(t *testing.T) {
	fp := generate(t, 4, 4, builder.MethodPrim)
	b, err := builder.New(builder.MethodPrim)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Build(context.Background(), fp), floorplan.ErrFrozen)
}

func TestBuild_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, m := range builder.Methods {
		fp, err := floorplan.New(10, 10)
		require.NoError(t, err)
		err = builder.Generate(ctx, fp, m)
		assert.ErrorIs(t, err, context.Canceled, "%v", m)
		assert.False(t, fp.Frozen())
	}
}

func TestBuild_Progress(t *testing.T) {
	for _, m := range builder.Methods {
		var got []int
		generate(t, 12, 12, m, builder.WithProgress(func(p int) { got = append(got, p) }))
		require.NotEmpty(t, got)
		assert.Equal(t, 0, got[0])
		assert.Equal(t, 100, got[len(got)-1])
		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i], got[i-1], "%v progress must increase", m)
		}
	}
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithRooms(-1) })
	assert.Panics(t, func() { builder.WithExtraWalls(-1) })
	assert.Panics(t, func() { builder.WithProgress(nil) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
}
