package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-io/bill-client/internal/client"
	"github.com/ledgerline-io/bill-client/pkg/bill"
)

func testConfig(endpoint string) *bill.Config {
	return &bill.Config{
		Username:       "user@example.com",
		Password:       "secret",
		OrganizationID: "org-1",
		DevKey:         "dev-key",
		APIEndpoint:    endpoint,
	}
}

// loginServer serves /v3/login with a fresh session id per login and counts
// calls per path.
type loginServer struct {
	*httptest.Server

	logins  int
	logouts int
	handler http.HandlerFunc
}

func newLoginServer(t *testing.T) *loginServer {
	t.Helper()

	server := &loginServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/v3/login":
			server.logins++

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "user@example.com", body["username"])
			assert.Equal(t, "dev-key", body["devKey"])

			_ = json.NewEncoder(writer).Encode(bill.Session{
				SessionID:      fmt.Sprintf("session-%d", server.logins),
				OrganizationID: "org-1",
				UserID:         "user-1",
			})
		case "/v3/logout":
			server.logouts++

			writer.WriteHeader(http.StatusOK)
		default:
			if server.handler != nil {
				server.handler(writer, request)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}
	}))

	t.Cleanup(server.Close)

	return server
}

func TestClient_Login(t *testing.T) {
	t.Parallel()
	t.Run("stores the session", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		session, err := billClient.Login(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "session-1", session.SessionID)
		assert.Equal(t, "org-1", session.OrganizationID)
		assert.Equal(t, "user-1", session.UserID)
		assert.True(t, billClient.IsLoggedIn())
	})

	t.Run("always performs a fresh network login", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		first, err := billClient.Login(context.Background())
		require.NoError(t, err)

		second, err := billClient.Login(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, server.logins)
		assert.NotEqual(t, first.SessionID, second.SessionID)
	})

	t.Run("fails without credentials", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(&bill.Config{APIEndpoint: server.URL})
		require.NoError(t, err)

		_, err = billClient.Login(context.Background())
		require.Error(t, err)
		assert.True(t, bill.IsConfiguration(err))
		assert.Equal(t, 0, server.logins)
	})

	t.Run("surfaces authentication failures", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`[{"message": "Invalid credentials"}]`))
		}))
		defer server.Close()

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		_, err = billClient.Login(context.Background())
		require.Error(t, err)
		assert.True(t, bill.IsAuthentication(err))
		assert.False(t, billClient.IsLoggedIn())
	})
}

func TestClient_LoginWithCredentials(t *testing.T) {
	t.Parallel()

	server := newLoginServer(t)

	billClient, err := client.New(&bill.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	session, err := billClient.LoginWithCredentials(context.Background(), bill.Credentials{
		Username:       "user@example.com",
		Password:       "secret",
		OrganizationID: "org-1",
		DevKey:         "dev-key",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-1", session.SessionID)
	assert.True(t, billClient.IsLoggedIn())
}

func TestClient_Logout(t *testing.T) {
	t.Parallel()
	t.Run("no-op when not logged in", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		require.NoError(t, billClient.Logout(context.Background()))
		assert.Equal(t, 0, server.logouts)
	})

	t.Run("clears the session", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		_, err = billClient.Login(context.Background())
		require.NoError(t, err)

		require.NoError(t, billClient.Logout(context.Background()))
		assert.Equal(t, 1, server.logouts)
		assert.False(t, billClient.IsLoggedIn())
		assert.Nil(t, billClient.Session())
	})

	t.Run("discards transport errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path == "/v3/login" {
				_ = json.NewEncoder(writer).Encode(bill.Session{SessionID: "session-1"})

				return
			}

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		_, err = billClient.Login(context.Background())
		require.NoError(t, err)

		require.NoError(t, billClient.Logout(context.Background()))
		assert.False(t, billClient.IsLoggedIn())
	})
}

func TestClient_EnsureLoggedIn(t *testing.T) {
	t.Parallel()
	t.Run("logs in once", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		require.NoError(t, billClient.EnsureLoggedIn(context.Background()))
		require.NoError(t, billClient.EnsureLoggedIn(context.Background()))
		assert.Equal(t, 1, server.logins)
	})

	t.Run("configuration error without credentials", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(&bill.Config{APIEndpoint: server.URL})
		require.NoError(t, err)

		err = billClient.EnsureLoggedIn(context.Background())
		require.Error(t, err)
		assert.True(t, bill.IsConfiguration(err))
	})

	t.Run("authentication error when auto-login disabled", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)
		config := testConfig(server.URL)
		config.DisableAutoLogin = true

		billClient, err := client.New(config)
		require.NoError(t, err)

		err = billClient.EnsureLoggedIn(context.Background())
		require.Error(t, err)
		assert.True(t, bill.IsAuthentication(err))
		assert.Equal(t, 0, server.logins)
	})
}

func TestClient_Session(t *testing.T) {
	t.Parallel()

	server := newLoginServer(t)

	billClient, err := client.New(testConfig(server.URL))
	require.NoError(t, err)

	assert.Nil(t, billClient.Session())

	_, err = billClient.Login(context.Background())
	require.NoError(t, err)

	// Session returns a copy: mutating it must not affect the client.
	session := billClient.Session()
	session.SessionID = "tampered"

	assert.Equal(t, "session-1", billClient.Session().SessionID)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_WithAutoRetry(t *testing.T) {
	t.Parallel()
	t.Run("retries once after session expiry", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		attempts := 0

		err = billClient.WithAutoRetry(context.Background(), func(ctx context.Context) error {
			attempts++
			if attempts == 1 {
				return &bill.SessionExpiredError{APIError: bill.APIError{Message: "session expired", HTTPStatus: 401}}
			}

			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
		// Initial auto-login plus one renewal.
		assert.Equal(t, 2, server.logins)
	})

	t.Run("gives up after the second expiry", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		attempts := 0
		expired := &bill.SessionExpiredError{APIError: bill.APIError{Message: "session expired", HTTPStatus: 401}}

		err = billClient.WithAutoRetry(context.Background(), func(ctx context.Context) error {
			attempts++

			return expired
		})
		require.Error(t, err)
		assert.True(t, bill.IsSessionExpired(err))
		assert.Equal(t, 2, attempts)
		assert.Equal(t, 2, server.logins)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)

		billClient, err := client.New(testConfig(server.URL))
		require.NoError(t, err)

		attempts := 0
		boom := errors.New("boom")

		err = billClient.WithAutoRetry(context.Background(), func(ctx context.Context) error {
			attempts++

			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, server.logins)
	})

	t.Run("does not renew when auto-login disabled", func(t *testing.T) {
		t.Parallel()

		server := newLoginServer(t)
		config := testConfig(server.URL)
		config.DisableAutoLogin = true

		billClient, err := client.New(config)
		require.NoError(t, err)

		// Establish a session explicitly, then let it expire.
		_, err = billClient.Login(context.Background())
		require.NoError(t, err)

		attempts := 0

		err = billClient.WithAutoRetry(context.Background(), func(ctx context.Context) error {
			attempts++

			return &bill.SessionExpiredError{APIError: bill.APIError{Message: "session expired", HTTPStatus: 401}}
		})
		require.Error(t, err)
		assert.True(t, bill.IsSessionExpired(err))
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, server.logins)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, bill.ErrConfigRequired)
	})

	t.Run("unknown environment", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&bill.Config{Environment: bill.Environment("staging")})
		require.Error(t, err)
	})

	t.Run("resource clients initialized", func(t *testing.T) {
		t.Parallel()

		billClient, err := client.New(&bill.Config{Environment: bill.EnvironmentSandbox})
		require.NoError(t, err)

		assert.NotNil(t, billClient.Vendors())
		assert.NotNil(t, billClient.Bills())
		assert.NotNil(t, billClient.Invoices())
		assert.NotNil(t, billClient.Customers())
		assert.NotNil(t, billClient.Payments())
		assert.NotNil(t, billClient.CreditMemos())
		assert.NotNil(t, billClient.ChartOfAccounts())
		assert.NotNil(t, billClient.AccountingClasses())
	})
}
