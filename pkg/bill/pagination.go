package bill

import (
	"context"
	"errors"
	"fmt"
)

// Lister is the subset of ResourceClient the pagination helpers need.
type Lister[T any] interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[T], error)
}

// PaginationOptions controls the page-walking helpers.
type PaginationOptions struct {
	// MaxPages caps how many pages are fetched. Zero means no cap.
	MaxPages int
}

// DefaultPaginationOptions returns options with no page cap.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// ErrNoMoreResults is returned by PageIterator.Next after the last result.
var ErrNoMoreResults = errors.New("no more results")

// FetchAllPages collects every result across pages by following NextPage
// tokens. The caller's params are not modified.
func FetchAllPages[T any](ctx context.Context, lister Lister[T], params *ListParams, options *PaginationOptions) ([]T, error) {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	params = params.clone()

	var all []T

	for page := 0; options.MaxPages == 0 || page < options.MaxPages; page++ {
		resp, err := lister.List(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page+1, err)
		}

		all = append(all, resp.Results...)

		// A repeated or absent token ends the walk.
		if resp.NextPage == "" || resp.NextPage == params.Page {
			break
		}

		params.Page = resp.NextPage
	}

	return all, nil
}

// ForEachPage invokes fn for every page in order, following NextPage tokens.
// Iteration stops at the first error from the API or from fn.
func ForEachPage[T any](ctx context.Context, lister Lister[T], params *ListParams, fn func(page *ListResponse[T]) error) error {
	params = params.clone()

	for {
		resp, err := lister.List(ctx, params)
		if err != nil {
			return err
		}

		err = fn(resp)
		if err != nil {
			return err
		}

		if resp.NextPage == "" || resp.NextPage == params.Page {
			return nil
		}

		params.Page = resp.NextPage
	}
}

// PageIterator walks a list result one item at a time, fetching pages lazily.
type PageIterator[T any] struct {
	ctx    context.Context
	lister Lister[T]
	params *ListParams

	buffer []T
	index  int
	done   bool
}

// NewPageIterator creates an iterator over the results matching params.
func NewPageIterator[T any](ctx context.Context, lister Lister[T], params *ListParams) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:    ctx,
		lister: lister,
		params: params.clone(),
	}
}

// HasNext reports whether another result may be available. Before the first
// fetch it is always true; afterwards it is true while buffered results or an
// unconsumed continuation token remain.
func (it *PageIterator[T]) HasNext() bool {
	if it.index < len(it.buffer) {
		return true
	}

	return !it.done
}

// Next returns the next result, fetching the next page when the current one
// is exhausted. It returns ErrNoMoreResults after the last result.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	for it.index >= len(it.buffer) {
		if it.done {
			return zero, ErrNoMoreResults
		}

		err := it.fetch()
		if err != nil {
			return zero, err
		}
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the iterator and returns the remaining results.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreResults) {
				break
			}

			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

func (it *PageIterator[T]) fetch() error {
	resp, err := it.lister.List(it.ctx, it.params)
	if err != nil {
		return err
	}

	it.buffer = resp.Results
	it.index = 0

	if resp.NextPage == "" || resp.NextPage == it.params.Page {
		it.done = true
	} else {
		it.params.Page = resp.NextPage
	}

	return nil
}
