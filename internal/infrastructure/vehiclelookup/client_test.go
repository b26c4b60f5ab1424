package vehiclelookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByPlate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/plates/ABC1D23", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"brand":"Fiat","model":"Argo","year":2022}`))
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL, "test-key"))

	brand, model, year, err := c.LookupByPlate(context.Background(), "ABC1D23")
	require.NoError(t, err)
	assert.Equal(t, "Fiat", brand)
	assert.Equal(t, "Argo", model)
	assert.Equal(t, 2022, year)
}

func TestLookupByPlate_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"brand":"VW","model":"Gol","year":2019}`))
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL, ""))

	brand, _, _, err := c.LookupByPlate(context.Background(), "XYZ9A88")
	require.NoError(t, err)
	assert.Equal(t, "VW", brand)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLookupByPlate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := DefaultConfig(srv.URL, "")
	cfg.Retries = 0
	c := NewClient(cfg)

	_, _, _, err := c.LookupByPlate(context.Background(), "NOP0E00")
	assert.Error(t, err)
}
