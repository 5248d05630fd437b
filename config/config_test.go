package config

import (
	"lending/core"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaults(t *testing.T) {
	var cfg core.Config
	withDefaults(&cfg)

	assert.Equal(t, int64(15), cfg.App.SecondsPerBlock)
	assert.Equal(t, int32(8), cfg.Price.Decimals)
	assert.Equal(t, int64(15), cfg.Price.CacheTTL)
	assert.Equal(t, "lending.events", cfg.Kafka.Topic)
	assert.Equal(t, core.CustodyModeVault, cfg.Custody.Mode)
	assert.Equal(t, core.DefaultParams(), cfg.Risk)
}

func TestWithDefaultsKeepsValues(t *testing.T) {
	cfg := core.Config{
		App:   core.App{SecondsPerBlock: 1},
		Price: core.Price{Decimals: 4},
		Risk: core.Params{
			MinRatio:    20000,
			BorrowRate:  core.Rate{Numerator: 1, Denominator: 100},
			CloseFactor: 5000,
		},
	}

	withDefaults(&cfg)

	assert.Equal(t, int64(1), cfg.App.SecondsPerBlock)
	assert.Equal(t, int32(4), cfg.Price.Decimals)
	assert.Equal(t, uint64(20000), cfg.Risk.MinRatio)
	assert.Equal(t, core.Rate{Numerator: 1, Denominator: 100}, cfg.Risk.BorrowRate)
	assert.Equal(t, core.DefaultParams().DepositRate, cfg.Risk.DepositRate)
	assert.Equal(t, uint64(5000), cfg.Risk.CloseFactor)
}
