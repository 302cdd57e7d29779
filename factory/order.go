package factory

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/sirupsen/logrus"
)

// MaxSkillLevel is the highest supported skill level.
const MaxSkillLevel = 15

// MaxDimension bounds Order.Width and Order.Height.
const MaxDimension = 2048

// Skill tables indexed by skill level.
var (
	SkillWidth  = [MaxSkillLevel + 1]int{4, 12, 15, 20, 25, 25, 35, 35, 40, 60, 70, 80, 90, 110, 150, 300}
	SkillHeight = [MaxSkillLevel + 1]int{4, 12, 15, 15, 20, 25, 25, 35, 40, 60, 70, 75, 75, 90, 120, 250}
	SkillRooms  = [MaxSkillLevel + 1]int{0, 2, 2, 3, 4, 5, 10, 10, 20, 25, 25, 25, 50, 100, 200, 300}
)

// Order is a maze request. Width and Height of zero take the values of the
// skill tables.
type Order struct {
	SkillLevel int
	Method     builder.Method
	Perfect    bool
	Seed       int64
	Width      int
	Height     int
}

// Validate returns an error wrapping ErrInvalidOrder when o cannot be built.
func (o Order) Validate() error {
	if o.SkillLevel < 0 || o.SkillLevel > MaxSkillLevel {
		return fmt.Errorf("%w: skill level %d outside [0,%d]", ErrInvalidOrder, o.SkillLevel, MaxSkillLevel)
	}
	if !o.Method.Valid() {
		return fmt.Errorf("%w: %w: %v", ErrInvalidOrder, builder.ErrUnknownMethod, o.Method)
	}
	if o.Width < 0 || o.Height < 0 || o.Width > MaxDimension || o.Height > MaxDimension {
		return fmt.Errorf("%w: size %dx%d outside [0,%d]", ErrInvalidOrder, o.Width, o.Height, MaxDimension)
	}
	return nil
}

// Dimensions returns the maze width and height.
func (o Order) Dimensions() (width, height int) {
	width, height = o.Width, o.Height
	if width == 0 {
		width = SkillWidth[o.SkillLevel]
	}
	if height == 0 {
		height = SkillHeight[o.SkillLevel]
	}
	return width, height
}

// Rooms returns how many rooms the maze asks for. Perfect mazes have none.
func (o Order) Rooms() int {
	if o.Perfect {
		return 0
	}
	return SkillRooms[o.SkillLevel]
}

// Key identifies every order that yields the same floorplan.
func (o Order) Key() string {
	w, h := o.Dimensions()
	return fmt.Sprintf("v1:%dx%d:%s:perfect=%t:rooms=%d:seed=%d", w, h, o.Method, o.Perfect, o.Rooms(), o.Seed)
}

func (o Order) fields() logrus.Fields {
	w, h := o.Dimensions()
	return logrus.Fields{
		"skill":   o.SkillLevel,
		"method":  o.Method.String(),
		"perfect": o.Perfect,
		"seed":    o.Seed,
		"width":   w,
		"height":  h,
	}
}
