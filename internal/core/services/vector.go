package services

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/custodia-labs/vecdemo/internal/core/domain"
)

// Vector is any fixed-size float vector the demo builds.
type Vector interface {
	mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4
}

// Size returns the number of components in v.
func Size[V Vector](v V) int {
	return len(Components(v))
}

// Components returns the components of v in storage order.
func Components[V Vector](v V) []float32 {
	switch v := any(v).(type) {
	case mgl32.Vec2:
		return v[:]
	case mgl32.Vec3:
		return v[:]
	case mgl32.Vec4:
		return v[:]
	default:
		return nil
	}
}

// Component reads the named component through the mgl32 accessors.
// Asking for a component the vector does not have (w on a Vec3) is an error.
func Component[V Vector](v V, c domain.Component) (float32, error) {
	if !c.In(Size(v)) {
		return 0, unknownComponent(v, c)
	}

	switch v := any(v).(type) {
	case mgl32.Vec2:
		switch c {
		case domain.ComponentX:
			return v.X(), nil
		case domain.ComponentY:
			return v.Y(), nil
		}
	case mgl32.Vec3:
		switch c {
		case domain.ComponentX:
			return v.X(), nil
		case domain.ComponentY:
			return v.Y(), nil
		case domain.ComponentZ:
			return v.Z(), nil
		}
	case mgl32.Vec4:
		switch c {
		case domain.ComponentX:
			return v.X(), nil
		case domain.ComponentY:
			return v.Y(), nil
		case domain.ComponentZ:
			return v.Z(), nil
		case domain.ComponentW:
			return v.W(), nil
		}
	}
	return 0, unknownComponent(v, c)
}

func unknownComponent[V Vector](v V, c domain.Component) error {
	return fmt.Errorf("%w: %q on %s", domain.ErrUnknownComponent, c, domain.VectorLabel(Size(v)))
}
