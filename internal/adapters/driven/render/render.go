package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/vecdemo/internal/core/domain"
	"github.com/custodia-labs/vecdemo/internal/core/ports/driven"
)

const separator = ", "

// ForStyle returns the renderer implementing style.
func ForStyle(style domain.RenderStyle) (driven.VectorRenderer, error) {
	switch style {
	case domain.RenderStyleBracket:
		return Bracket{}, nil
	case domain.RenderStyleGLM:
		return GLM{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedStyle, style)
	}
}

// shortest formats f with the fewest digits that parse back to the same float32.
func shortest(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func join(components []float32, format func(float32) string) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = format(c)
	}
	return strings.Join(parts, separator)
}
