package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-io/bill-client/internal/client"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

// newVendorClient wires a logged-in capable client against the test server and
// returns its vendors resource client.
func newVendorClient(t *testing.T, server *loginServer) bill.VendorsClient {
	t.Helper()

	billClient, err := client.New(testConfig(server.URL))
	require.NoError(t, err)

	return billClient.Vendors()
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestResourceClient_List(t *testing.T) {
	t.Parallel()
	t.Run("decodes a page of results", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)
		server.handler = func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v3/vendors", request.URL.Path)
			assert.Equal(t, "25", request.URL.Query().Get("max"))
			assert.Equal(t, "archived:eq:false", request.URL.Query().Get("filters"))
			assert.Equal(t, "dev-key", request.Header.Get("devKey"))
			assert.Equal(t, "session-1", request.Header.Get("sessionId"))

			_, _ = writer.Write([]byte(`{
				"nextPage": "token-2",
				"results": [
					{"id": "vnd-1", "name": "Acme Supplies"},
					{"id": "vnd-2", "name": "Office Depot", "archived": true}
				]
			}`))
		}

		vendors := newVendorClient(t, server)

		params := bill.NewListParams().
			WithMax(25).
			WithFilter(bill.ScalarFilter{Field: "archived", Op: bill.FilterEq, Value: false})

		page, err := vendors.List(context.Background(), params)
		require.NoError(t, err)
		require.Len(t, page.Results, 2)
		assert.Equal(t, "token-2", page.NextPage)
		assert.Empty(t, page.PrevPage)
		assert.Equal(t, "vnd-1", page.Results[0].ID)
		assert.Equal(t, "Acme Supplies", page.Results[0].Name)
		assert.True(t, page.Results[1].Archived)
	})

	t.Run("nil params lists with defaults", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)
		server.handler = func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.URL.RawQuery)
			_, _ = writer.Write([]byte(`{"results": []}`))
		}

		vendors := newVendorClient(t, server)

		page, err := vendors.List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, page.Results)
	})

	t.Run("no credentials is a configuration error", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(&bill.Config{APIEndpoint: server.URL})
		require.NoError(t, err)

		_, err = billClient.Vendors().List(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, bill.IsConfiguration(err))
		assert.False(t, bill.IsAuthentication(err))
		assert.Equal(t, 0, server.logins)
	})

	t.Run("invalid max fails before any network traffic", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		vendors := newVendorClient(t, server)

		_, err := vendors.List(context.Background(), bill.NewListParams().WithMax(500))
		require.ErrorIs(t, err, bill.ErrMaxOutOfRange)
		assert.Equal(t, 0, server.logins)
	})

	t.Run("renews an expired session and replays once", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)
		calls := 0
		server.handler = func(writer http.ResponseWriter, request *http.Request) {
			calls++
			if calls == 1 {
				writer.WriteHeader(http.StatusUnauthorized)
				_, _ = writer.Write([]byte(`[{"message": "Session is expired", "code": 1101}]`))

				return
			}

			assert.Equal(t, "session-2", request.Header.Get("sessionId"))
			_, _ = writer.Write([]byte(`{"results": [{"id": "vnd-1", "name": "Acme Supplies"}]}`))
		}

		vendors := newVendorClient(t, server)

		page, err := vendors.List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, page.Results, 1)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 2, server.logins)
	})
}

func TestResourceClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("decodes the entity", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)
		server.handler = func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "/v3/vendors/vnd-1", request.URL.Path)
			_, _ = writer.Write([]byte(`{"id": "vnd-1", "name": "Acme Supplies", "email": "ap@acme.test"}`))
		}

		vendors := newVendorClient(t, server)

		vendor, err := vendors.Get(context.Background(), "vnd-1")
		require.NoError(t, err)
		require.NotNil(t, vendor)
		assert.Equal(t, "Acme Supplies", vendor.Name)
		assert.Equal(t, "ap@acme.test", vendor.Email)
	})

	t.Run("unknown id is a not found error", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)
		server.handler = func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`[{"message": "Vendor not found", "code": 1344}]`))
		}

		vendors := newVendorClient(t, server)

		_, err := vendors.Get(context.Background(), "vnd-missing")
		require.Error(t, err)
		assert.True(t, bill.IsNotFound(err))
		assert.Contains(t, err.Error(), "getting vendor")
	})

	t.Run("empty success body yields nil entity", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)
		server.handler = func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}

		vendors := newVendorClient(t, server)

		vendor, err := vendors.Get(context.Background(), "vnd-1")
		require.NoError(t, err)
		assert.Nil(t, vendor)
	})
}

func TestResourceClient_Create(t *testing.T) {
	t.Parallel()

	server := newLoginServer(t)
	server.handler = func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/v3/vendors", request.URL.Path)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "Acme Supplies", body["name"])

		_, _ = writer.Write([]byte(`{"id": "vnd-1", "name": "Acme Supplies"}`))
	}

	vendors := newVendorClient(t, server)

	vendor, err := vendors.Create(context.Background(), &bill.VendorCreateRequest{Name: "Acme Supplies"})
	require.NoError(t, err)
	require.NotNil(t, vendor)
	assert.Equal(t, "vnd-1", vendor.ID)
}

func TestResourceClient_CreateMultiple(t *testing.T) {
	t.Parallel()

	requests := []*bill.VendorCreateRequest{
		{Name: "First Vendor"},
		{Name: "Second Vendor"},
	}

	testCases := []struct {
		name string
		body string
	}{
		{
			name: "bare array response",
			body: `[{"id": "vnd-1", "name": "First Vendor"}, {"id": "vnd-2", "name": "Second Vendor"}]`,
		},
		{
			name: "wrapped object response",
			body: `{"vendors": [{"id": "vnd-1", "name": "First Vendor"}, {"id": "vnd-2", "name": "Second Vendor"}]}`,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := newLoginServer(t)
			server.handler = func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, http.MethodPost, request.Method)
				assert.Equal(t, "/v3/vendors/bulk", request.URL.Path)

				var body []map[string]interface{}

				require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
				require.Len(t, body, 2)

				_, _ = writer.Write([]byte(testCase.body))
			}

			vendors := newVendorClient(t, server)

			created, err := vendors.CreateMultiple(context.Background(), requests)
			require.NoError(t, err)
			require.Len(t, created, 2)
			// Order mirrors the request order.
			assert.Equal(t, "First Vendor", created[0].Name)
			assert.Equal(t, "Second Vendor", created[1].Name)
		})
	}
}

func TestResourceClient_Update(t *testing.T) {
	t.Parallel()

	server := newLoginServer(t)
	server.handler = func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPatch, request.Method)
		assert.Equal(t, "/v3/vendors/vnd-1", request.URL.Path)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		// Only the field being changed goes over the wire.
		assert.Equal(t, map[string]interface{}{"email": "billing@acme.test"}, body)

		_, _ = writer.Write([]byte(`{"id": "vnd-1", "name": "Acme Supplies", "email": "billing@acme.test"}`))
	}

	vendors := newVendorClient(t, server)

	email := "billing@acme.test"

	vendor, err := vendors.Update(context.Background(), "vnd-1", &bill.VendorUpdateRequest{Email: &email})
	require.NoError(t, err)
	require.NotNil(t, vendor)
	assert.Equal(t, "billing@acme.test", vendor.Email)
}

func TestResourceClient_ArchiveRestore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     string
		archived bool
		call     func(ctx context.Context, vendors bill.VendorsClient) (*bill.Vendor, error)
	}{
		{
			name:     "archive",
			path:     "/v3/vendors/vnd-1/archive",
			archived: true,
			call: func(ctx context.Context, vendors bill.VendorsClient) (*bill.Vendor, error) {
				return vendors.Archive(ctx, "vnd-1")
			},
		},
		{
			name:     "restore",
			path:     "/v3/vendors/vnd-1/restore",
			archived: false,
			call: func(ctx context.Context, vendors bill.VendorsClient) (*bill.Vendor, error) {
				return vendors.Restore(ctx, "vnd-1")
			},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := newLoginServer(t)
			server.handler = func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, http.MethodPost, request.Method)
				assert.Equal(t, testCase.path, request.URL.Path)

				response := bill.Vendor{ID: "vnd-1", Name: "Acme Supplies", Archived: testCase.archived}
				_ = json.NewEncoder(writer).Encode(response)
			}

			vendors := newVendorClient(t, server)

			vendor, err := testCase.call(context.Background(), vendors)
			require.NoError(t, err)
			require.NotNil(t, vendor)
			assert.Equal(t, testCase.archived, vendor.Archived)
		})
	}
}

func TestResourceClient_ValidationError(t *testing.T) {
	t.Parallel()

	server := newLoginServer(t)
	server.handler = func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		_, _ = writer.Write([]byte(`[{"message": "Invalid field name: name is required", "code": 1121}]`))
	}

	vendors := newVendorClient(t, server)

	_, err := vendors.Create(context.Background(), &bill.VendorCreateRequest{})
	require.Error(t, err)
	assert.True(t, bill.IsValidation(err))
	assert.Contains(t, err.Error(), "creating vendor")
}
