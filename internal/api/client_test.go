package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanka857/Major-Project-1/internal/shared/apperr"
)

func TestLoginSendsCredentialsAndDecodesUser(t *testing.T) {
	var gotBody map[string]string
	var gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/users/login/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get(HeaderRequestID)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 3, "_id": 3, "username": "ravi@example.com", "email": "ravi@example.com", "isAdmin": false, "token": "abc"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	u, err := c.Login(context.Background(), "ravi@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "ravi@example.com", gotBody["username"])
	assert.Equal(t, "secret123", gotBody["password"])
	assert.NotEmpty(t, gotRequestID, "every request carries an X-Request-ID")
	assert.Equal(t, 3, u.ID)
	assert.Equal(t, "abc", u.Token)
}

func TestAuthenticatedCallSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.MyOrders(context.Background(), "tok-123")
	require.NoError(t, err)
}

func TestAnonymousCallOmitsAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.ListProducts(context.Background())
	require.NoError(t, err)
}

func TestErrorResponseExtractsDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "No active account found with the given credentials"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Login(context.Background(), "ravi@example.com", "wrong")
	require.Error(t, err)

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Server, ae.Kind)
	assert.Equal(t, http.StatusUnauthorized, ae.Status)
	assert.Equal(t, "No active account found with the given credentials", apperr.Message(err))
}

func TestErrorResponseWithoutDetailFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.GetProduct(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "Request failed with status code 502", apperr.Message(err))
}

func TestTransportFailureIsNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, nil)
	_, err := c.ListProducts(context.Background())
	require.Error(t, err)

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Transport, ae.Kind)
	assert.NotEmpty(t, apperr.Message(err))
}

func TestPriceDecodesBothEncodings(t *testing.T) {
	var p struct {
		A Price `json:"a"`
		B Price `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "129.00", "b": 129}`), &p))
	assert.Equal(t, Price(129), p.A)
	assert.Equal(t, Price(129), p.B)
}
