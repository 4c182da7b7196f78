package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerline-io/bill-client/internal/http"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// resourceClient is the shared CRUD implementation behind every entity
// client. Each operation runs inside WithAutoRetry, so a stale session is
// renewed and the call replayed once without the caller noticing.
type resourceClient[T, C, U any] struct {
	client   *Client
	endpoint string
	singular string
	plural   string
	bulkKey  string
}

func newResourceClient[T, C, U any](client *Client, endpoint, singular, plural, bulkKey string) *resourceClient[T, C, U] {
	return &resourceClient[T, C, U]{
		client:   client,
		endpoint: endpoint,
		singular: singular,
		plural:   plural,
		bulkKey:  bulkKey,
	}
}

// List implements bill.ResourceClient.List. Invalid params fail before any
// network traffic.
func (r *resourceClient[T, C, U]) List(ctx context.Context, params *bill.ListParams) (*bill.ListResponse[T], error) {
	if params == nil {
		params = bill.NewListParams()
	}

	err := params.Validate()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.plural, err)
	}

	var list bill.ListResponse[T]

	err = r.client.WithAutoRetry(ctx, func(ctx context.Context) error {
		resp, err := r.client.httpClient.Get(ctx, r.endpoint, params.ToValues())
		if err != nil {
			return err
		}

		unmarshalLenient(resp.Body, &list)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.plural, err)
	}

	return &list, nil
}

// Get implements bill.ResourceClient.Get.
func (r *resourceClient[T, C, U]) Get(ctx context.Context, id string) (*T, error) {
	entity, err := r.fetch(ctx, func(ctx context.Context) (*http.Response, error) {
		return r.client.httpClient.Get(ctx, r.endpoint+"/"+id, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.singular, err)
	}

	return entity, nil
}

// Create implements bill.ResourceClient.Create.
func (r *resourceClient[T, C, U]) Create(ctx context.Context, request *C) (*T, error) {
	entity, err := r.fetch(ctx, func(ctx context.Context) (*http.Response, error) {
		return r.client.httpClient.Post(ctx, r.endpoint, request)
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.singular, err)
	}

	return entity, nil
}

// CreateMultiple implements bill.ResourceClient.CreateMultiple. The bulk
// endpoint answers either with a bare array or with an object keyed by the
// entity's plural name; both shapes are unwrapped transparently, preserving
// request order.
func (r *resourceClient[T, C, U]) CreateMultiple(ctx context.Context, requests []*C) ([]T, error) {
	var results []T

	err := r.client.WithAutoRetry(ctx, func(ctx context.Context) error {
		resp, err := r.client.httpClient.Post(ctx, r.endpoint+"/bulk", requests)
		if err != nil {
			return err
		}

		results = unwrapBulk[T](resp.Body, r.bulkKey)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("creating multiple %s: %w", r.plural, err)
	}

	return results, nil
}

// Update implements bill.ResourceClient.Update.
func (r *resourceClient[T, C, U]) Update(ctx context.Context, id string, request *U) (*T, error) {
	entity, err := r.fetch(ctx, func(ctx context.Context) (*http.Response, error) {
		return r.client.httpClient.Patch(ctx, r.endpoint+"/"+id, request)
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.singular, err)
	}

	return entity, nil
}

// Archive implements bill.ResourceClient.Archive.
func (r *resourceClient[T, C, U]) Archive(ctx context.Context, id string) (*T, error) {
	entity, err := r.fetch(ctx, func(ctx context.Context) (*http.Response, error) {
		return r.client.httpClient.Post(ctx, r.endpoint+"/"+id+"/archive", nil)
	})
	if err != nil {
		return nil, fmt.Errorf("archiving %s: %w", r.singular, err)
	}

	return entity, nil
}

// Restore implements bill.ResourceClient.Restore.
func (r *resourceClient[T, C, U]) Restore(ctx context.Context, id string) (*T, error) {
	entity, err := r.fetch(ctx, func(ctx context.Context) (*http.Response, error) {
		return r.client.httpClient.Post(ctx, r.endpoint+"/"+id+"/restore", nil)
	})
	if err != nil {
		return nil, fmt.Errorf("restoring %s: %w", r.singular, err)
	}

	return entity, nil
}

// fetch runs one request inside WithAutoRetry and decodes the entity body.
// A successful response with an empty or non-JSON body yields a nil entity.
func (r *resourceClient[T, C, U]) fetch(ctx context.Context, call func(ctx context.Context) (*http.Response, error)) (*T, error) {
	var (
		entity  T
		decoded bool
	)

	err := r.client.WithAutoRetry(ctx, func(ctx context.Context) error {
		resp, err := call(ctx)
		if err != nil {
			return err
		}

		decoded = unmarshalLenient(resp.Body, &entity)

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !decoded {
		return nil, nil //nolint:nilnil // empty success bodies carry no entity
	}

	return &entity, nil
}

// unmarshalLenient decodes a successful response body and reports whether
// anything was decoded. The API answers some successful calls with an empty
// body or non-JSON content; those are successes without data, not errors.
func unmarshalLenient(body []byte, out interface{}) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return false
	}

	return json.Unmarshal(trimmed, out) == nil
}

// unwrapBulk decodes a bulk-create response in either of its two shapes.
func unwrapBulk[T any](body []byte, key string) []T {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	var bare []T
	if err := json.Unmarshal(trimmed, &bare); err == nil {
		return bare
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapped); err == nil {
		if raw, ok := wrapped[key]; ok {
			var items []T
			if err := json.Unmarshal(raw, &items); err == nil {
				return items
			}
		}
	}

	return nil
}
