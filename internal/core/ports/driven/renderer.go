package driven

import "github.com/custodia-labs/vecdemo/internal/core/domain"

// VectorRenderer converts vector components to their textual form.
type VectorRenderer interface {
	// Name returns the style this renderer implements.
	Name() domain.RenderStyle

	// Scalar formats a single component.
	Scalar(f float32) string

	// Vector formats all components of a vector, in storage order.
	Vector(components ...float32) string
}
