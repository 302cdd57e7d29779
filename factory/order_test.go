package factory_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderValidate(t *testing.T) {
	cases := []struct {
		name  string
		order factory.Order
		ok    bool
	}{
		{"level 0", factory.Order{}, true},
		{"level 15", factory.Order{SkillLevel: 15, Method: builder.MethodBoruvka}, true},
		{"negative level", factory.Order{SkillLevel: -1}, false},
		{"level 16", factory.Order{SkillLevel: 16}, false},
		{"unknown method", factory.Order{Method: builder.Method(42)}, false},
		{"negative width", factory.Order{Width: -3}, false},
		{"explicit size", factory.Order{Width: 7, Height: 2}, true},
		{"largest size", factory.Order{Width: factory.MaxDimension, Height: factory.MaxDimension}, true},
		{"too wide", factory.Order{Width: factory.MaxDimension + 1}, false},
		{"too tall", factory.Order{Height: 1 << 20}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, factory.ErrInvalidOrder)
		})
	}

	err := factory.Order{Method: builder.Method(42)}.Validate()
	assert.ErrorIs(t, err, builder.ErrUnknownMethod)
}

func TestOrderDimensions(t *testing.T) {
	for level := 0; level <= factory.MaxSkillLevel; level++ {
		w, h := factory.Order{SkillLevel: level}.Dimensions()
		assert.Equal(t, factory.SkillWidth[level], w)
		assert.Equal(t, factory.SkillHeight[level], h)
	}

	w, h := factory.Order{SkillLevel: 15, Width: 9}.Dimensions()
	assert.Equal(t, 9, w)
	assert.Equal(t, 250, h)
}

func TestOrderRooms(t *testing.T) {
	assert.Zero(t, factory.Order{SkillLevel: 8, Perfect: true}.Rooms())
	assert.Equal(t, 20, factory.Order{SkillLevel: 8}.Rooms())
}

func TestOrderKey(t *testing.T) {
	a := factory.Order{SkillLevel: 2, Method: builder.MethodPrim, Seed: 4}
	b := factory.Order{Method: builder.MethodPrim, Seed: 4, Width: 15, Height: 15}
	// Same size, but level 0 asks for no rooms.
	require.NotEqual(t, a.Key(), b.Key())

	b.SkillLevel = 2
	assert.Equal(t, a.Key(), b.Key())

	c := a
	c.Seed = 5
	assert.NotEqual(t, a.Key(), c.Key())
	c = a
	c.Perfect = true
	assert.NotEqual(t, a.Key(), c.Key())
}
