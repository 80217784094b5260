package mock

import (
	"context"

	"github.com/fwojciec/serprank"
)

var _ serprank.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of serprank.PageSource.
type PageSource struct {
	AcquireFn func(ctx context.Context, keyword string, vertical serprank.Vertical) (*serprank.Page, error)
}

func (s *PageSource) Acquire(ctx context.Context, keyword string, vertical serprank.Vertical) (*serprank.Page, error) {
	return s.AcquireFn(ctx, keyword, vertical)
}
