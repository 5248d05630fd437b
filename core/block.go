package core

import (
	"context"
)

// IClock logical time source, monotonically non-decreasing ticks
type IClock interface {
	Now(ctx context.Context) (uint64, error)
}
