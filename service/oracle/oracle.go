package oracle

import (
	"context"
	"fmt"
	"lending/core"
	"lending/pkg/number"
	"lending/pkg/resthttp"
	"time"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// PriceService pulls prices from an oracle api and caches them for ttl
type PriceService struct {
	endpoint string
	decimals int32
	scale    number.Amount
	ttl      time.Duration

	cache gcache.Cache
	sf    singleflight.Group
}

// New new oracle price feed
func New(cfg core.Price) *PriceService {
	return &PriceService{
		endpoint: cfg.EndPoint,
		decimals: cfg.Decimals,
		scale:    Scale(cfg.Decimals),
		ttl:      time.Duration(cfg.CacheTTL) * time.Second,
		cache:    gcache.New(64).LRU().Build(),
	}
}

// Scale fixed-point factor of prices returned by PriceOf
func (s *PriceService) Scale() number.Amount {
	return s.scale
}

// PriceOf current price of asset
func (s *PriceService) PriceOf(ctx context.Context, assetID string) (number.Amount, error) {
	if v, err := s.cache.Get(assetID); err == nil {
		return v.(number.Amount), nil
	}

	v, err, _ := s.sf.Do(assetID, func() (interface{}, error) {
		ticker, err := s.PullPriceTicker(ctx, assetID)
		if err != nil {
			return nil, err
		}

		if !ticker.Price.IsPositive() {
			return nil, core.ErrInvalidPrice
		}

		price, err := number.AmountFromDecimal(ticker.Price, s.decimals)
		if err != nil {
			return nil, err
		}

		if price.IsZero() {
			return nil, core.ErrInvalidPrice
		}

		_ = s.cache.SetWithExpire(assetID, price, s.ttl)
		return price, nil
	})

	if err != nil {
		return number.Zero, err
	}

	return v.(number.Amount), nil
}

// PullPriceTicker pull price ticker
func (s *PriceService) PullPriceTicker(ctx context.Context, assetID string) (*core.PriceTicker, error) {
	url := fmt.Sprintf("%s/api/v2/tickers/%s", s.endpoint, assetID)
	logger.FromContext(ctx).Debugln("pull price:", url)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}
