package mock

import (
	"context"

	"github.com/fwojciec/pressclip"
)

var _ pressclip.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of pressclip.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, ex *pressclip.Extraction) ([]byte, error)
}

func (r *Renderer) Render(ctx context.Context, ex *pressclip.Extraction) ([]byte, error) {
	return r.RenderFn(ctx, ex)
}
