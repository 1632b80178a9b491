package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contable-dev/contabilidad_api/internal/platform/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.9134,"MXN":18.52}}`))
	}))
	defer server.Close()

	client := rates.NewClient(server.URL, "USD")
	rate, err := client.FetchRate(context.Background(), "EUR")

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.9134)))
}

func TestFetchRate_MissingCurrency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.9134}}`))
	}))
	defer server.Close()

	client := rates.NewClient(server.URL, "USD")
	_, err := client.FetchRate(context.Background(), "XXX")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rate for XXX")
}

func TestFetchRate_NonPositiveRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0}}`))
	}))
	defer server.Close()

	client := rates.NewClient(server.URL, "USD")
	_, err := client.FetchRate(context.Background(), "EUR")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive")
}

func TestFetchRate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := rates.NewClient(server.URL, "USD")
	_, err := client.FetchRate(context.Background(), "EUR")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}
