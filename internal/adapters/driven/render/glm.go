package render

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/vecdemo/internal/core/domain"
	"github.com/custodia-labs/vecdemo/internal/core/ports/driven"
)

// Ensure GLM implements the interface.
var _ driven.VectorRenderer = GLM{}

// GLM renders vectors the way glm::to_string does for float vectors.
type GLM struct{}

// Name returns domain.RenderStyleGLM.
func (GLM) Name() domain.RenderStyle {
	return domain.RenderStyleGLM
}

// Scalar formats f in shortest round-trip form. glm only fixes the
// precision of whole-vector strings; lone components print like any float.
func (GLM) Scalar(f float32) string {
	return shortest(f)
}

// Vector renders components as "vecN(a, b, ...)" with six decimals each.
func (GLM) Vector(components ...float32) string {
	return "vec" + strconv.Itoa(len(components)) + "(" + join(components, fixed) + ")"
}

func fixed(f float32) string {
	return fmt.Sprintf("%f", f)
}
