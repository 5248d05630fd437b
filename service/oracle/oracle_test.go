package oracle

import (
	"context"
	"fmt"
	"lending/core"
	"lending/pkg/number"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFeed(t *testing.T) {
	ctx := context.Background()
	feed, err := FromConfig(core.Price{
		Decimals: 8,
		Static:   map[string]string{"btc": "2.5", "zero": "0"},
	})
	require.Nil(t, err)

	assert.Equal(t, "100000000", feed.Scale().String())

	price, err := feed.PriceOf(ctx, "btc")
	require.Nil(t, err)
	assert.Equal(t, "250000000", price.String())

	_, err = feed.PriceOf(ctx, "eth")
	assert.ErrorIs(t, err, core.ErrUnsupportedAsset)

	_, err = feed.PriceOf(ctx, "zero")
	assert.ErrorIs(t, err, core.ErrInvalidPrice)

	_, err = FromConfig(core.Price{Static: map[string]string{"btc": "abc"}})
	assert.NotNil(t, err)
}

func TestPriceService(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		switch r.URL.Path {
		case "/api/v2/tickers/btc":
			fmt.Fprint(w, `{"provider":"test","symbol":"BTC","price":"3.14159265"}`)
		case "/api/v2/tickers/neg":
			fmt.Fprint(w, `{"provider":"test","symbol":"NEG","price":"-1"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	ctx := context.Background()
	s := New(core.Price{EndPoint: ts.URL, Decimals: 4, CacheTTL: 60})
	assert.Equal(t, number.NewAmount(10000), s.Scale())

	price, err := s.PriceOf(ctx, "btc")
	require.Nil(t, err)
	assert.Equal(t, "31415", price.String())

	_, err = s.PriceOf(ctx, "btc")
	require.Nil(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second read is cached")

	_, err = s.PriceOf(ctx, "neg")
	assert.ErrorIs(t, err, core.ErrInvalidPrice)

	_, err = s.PriceOf(ctx, "missing")
	assert.NotNil(t, err)
}
