package render

import (
	"github.com/custodia-labs/vecdemo/internal/core/domain"
	"github.com/custodia-labs/vecdemo/internal/core/ports/driven"
)

// Ensure Bracket implements the interface.
var _ driven.VectorRenderer = Bracket{}

// Bracket renders vectors as a bracketed, comma separated list.
type Bracket struct{}

// Name returns domain.RenderStyleBracket.
func (Bracket) Name() domain.RenderStyle {
	return domain.RenderStyleBracket
}

// Scalar formats f in shortest round-trip form.
func (Bracket) Scalar(f float32) string {
	return shortest(f)
}

// Vector renders components as "[a, b, ...]".
func (Bracket) Vector(components ...float32) string {
	return "[" + join(components, shortest) + "]"
}
