package dolarapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wallbit/exchange-rates-api/internal/adapters/upstream/dolarapi"
)

func TestFetchRates_DecodesResponseArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"moneda":"USD","nombre":"Blue","casa":"blue","compra":1415,"venta":1435,"fechaActualizacion":"2025-11-06T19:58:00.000Z"},
			{"moneda":"USD","nombre":"Oficial","casa":"oficial","compra":1425,"venta":1475,"fechaActualizacion":"2025-11-06T19:58:00.000Z"}
		]`))
	}))
	defer server.Close()

	client := dolarapi.NewClient(server.URL)

	rates, err := client.FetchRates(context.Background())

	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "blue", rates[0].House)
	assert.Equal(t, "oficial", rates[1].House)
	assert.Equal(t, "1415", rates[0].Buy.String())
	assert.Equal(t, "1475", rates[1].Sell.String())
}

func TestFetchRates_AppliesItemDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"compra":100,"venta":110}]`))
	}))
	defer server.Close()

	client := dolarapi.NewClient(server.URL)

	rates, err := client.FetchRates(context.Background())

	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "unknown", rates[0].House)
	assert.Equal(t, "USD", rates[0].Currency)
	assert.Empty(t, rates[0].Name)
	assert.Empty(t, rates[0].LastUpdated)
}

func TestFetchRates_EmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := dolarapi.NewClient(server.URL)

	rates, err := client.FetchRates(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestFetchRates_Non2xxStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := dolarapi.NewClient(server.URL)

	rates, err := client.FetchRates(context.Background())

	require.Error(t, err)
	assert.Nil(t, rates)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestFetchRates_MalformedBodyIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer server.Close()

	client := dolarapi.NewClient(server.URL)

	_, err := client.FetchRates(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode upstream response")
}

func TestFetchRates_ContextTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := dolarapi.NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchRates(ctx)

	require.Error(t, err)
}
