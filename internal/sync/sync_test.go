package sync_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
	syncpkg "github.com/dannykalklus-wq/invoice-app/internal/sync"
)

func TestClient_Push(t *testing.T) {
	var gotAuth, gotRequestID string

	var gotList []invoice.Invoice

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotList))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := syncpkg.New(srv.URL, "secret-token", 5*time.Second)

	list := []invoice.Invoice{{InvoiceNo: "INV-1", ClientName: "Acme Corp"}}
	err := c.Push(context.Background(), list)
	require.NoError(t, err)

	assert.Equal(t, "Token secret-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	require.Len(t, gotList, 1)
	assert.Equal(t, "INV-1", gotList[0].InvoiceNo)
}

func TestClient_Push_NoTokenOmitsAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := syncpkg.New(srv.URL, "", 5*time.Second)
	assert.NoError(t, c.Push(context.Background(), nil))
}

func TestClient_Push_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := syncpkg.New(srv.URL, "", 5*time.Second)
	err := c.Push(context.Background(), nil)
	assert.Error(t, err)
}

func TestClient_Push_Unreachable(t *testing.T) {
	c := syncpkg.New("http://127.0.0.1:1", "", time.Second)
	assert.Error(t, c.Push(context.Background(), nil))
}

func TestDisabled_Push(t *testing.T) {
	assert.NoError(t, syncpkg.Disabled{}.Push(context.Background(), []invoice.Invoice{{InvoiceNo: "INV-1"}}))
}
