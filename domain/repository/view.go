package repository

import (
	"context"

	"streamhub/domain/query"
)

// IView executes composed-view pipelines against the document store.
type IView interface {
	// One decodes the first record of the view into out, or reports
	// not-found when the view yields nothing.
	One(ctx context.Context, view query.View, out any) error
	// All decodes every record into out (a pointer to a slice).
	All(ctx context.Context, view query.View, out any) error
	// Page decodes one slice of the view into out using store-side
	// skip/limit, returning total-count metadata. The request must be
	// normalized by the caller.
	Page(ctx context.Context, view query.View, req query.PageRequest, out any) (query.PageInfo, error)
}
