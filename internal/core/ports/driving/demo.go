package driving

import (
	"context"

	"github.com/custodia-labs/vecdemo/internal/core/domain"
)

// DemoService produces the demo output lines.
type DemoService interface {
	// Lines builds the demo vectors and returns one line per vector, in print order.
	Lines(ctx context.Context) ([]domain.Line, error)
}
