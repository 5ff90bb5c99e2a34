package services

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/custodia-labs/vecdemo/internal/core/domain"
	"github.com/custodia-labs/vecdemo/internal/core/ports/driven"
	"github.com/custodia-labs/vecdemo/internal/core/ports/driving"
	"github.com/custodia-labs/vecdemo/internal/logger"
)

// Ensure DemoService implements the interface.
var _ driving.DemoService = (*DemoService)(nil)

// DemoService builds the three demo vectors and formats one line per vector.
type DemoService struct {
	renderer driven.VectorRenderer
}

// NewDemoService creates a new demo service that formats values with renderer.
func NewDemoService(renderer driven.VectorRenderer) *DemoService {
	return &DemoService{renderer: renderer}
}

// Lines returns, in order: the x of Vec2(2, 3), the y of Vec3(1, 3.2345, 4)
// and the whole of Vec4(1, 3.2345, 4, 0.25).
func (s *DemoService) Lines(ctx context.Context) ([]domain.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Demo Vectors")
	logger.Debug("Renderer: %s", s.renderer.Name())

	v2 := mgl32.Vec2{2, 3}
	v3 := mgl32.Vec3{1, 3.2345, 4}
	v4 := mgl32.Vec4{1, 3.2345, 4, 0.25}

	first, err := ComponentLine(s.renderer, v2, domain.ComponentX)
	if err != nil {
		return nil, err
	}
	second, err := ComponentLine(s.renderer, v3, domain.ComponentY)
	if err != nil {
		return nil, err
	}
	third := VectorLine(s.renderer, v4)

	lines := []domain.Line{first, second, third}
	logger.Debug("Built %d lines", len(lines))
	return lines, nil
}

// ComponentLine reads component c of v and formats it as a scalar line.
func ComponentLine[V Vector](r driven.VectorRenderer, v V, c domain.Component) (domain.Line, error) {
	f, err := Component(v, c)
	if err != nil {
		return domain.Line{}, err
	}
	label := domain.ComponentLabel(Size(v), c)
	logger.Debug("%s = %v", label, f)
	return domain.Line{Label: label, Value: r.Scalar(f)}, nil
}

// VectorLine renders every component of v.
func VectorLine[V Vector](r driven.VectorRenderer, v V) domain.Line {
	components := Components(v)
	label := domain.VectorLabel(len(components))
	logger.Debug("%s = %v", label, components)
	return domain.Line{Label: label, Value: r.Vector(components...)}
}
