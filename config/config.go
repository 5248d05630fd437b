package config

import (
	"lending/core"
	"os"

	configUtil "github.com/fox-one/pkg/config"
	"github.com/joho/godotenv"
)

const (
	defaultSecondsPerBlock = 15
	defaultPriceDecimals   = 8
	defaultPriceCacheTTL   = 15
	defaultKafkaTopic      = "lending.events"
)

// Load load config file, variables in .env (if present) override the yaml through LENDING_*
func Load(configFile string, cfg *core.Config) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return err
		}
	}

	configUtil.AutomaticLoadEnv("LENDING")
	if err := configUtil.LoadYaml(configFile, cfg); err != nil {
		return err
	}

	withDefaults(cfg)
	return nil
}

func withDefaults(cfg *core.Config) {
	if cfg.App.SecondsPerBlock <= 0 {
		cfg.App.SecondsPerBlock = defaultSecondsPerBlock
	}

	if cfg.Price.Decimals <= 0 {
		cfg.Price.Decimals = defaultPriceDecimals
	}

	if cfg.Price.CacheTTL <= 0 {
		cfg.Price.CacheTTL = defaultPriceCacheTTL
	}

	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = defaultKafkaTopic
	}

	if cfg.Custody.Mode == "" {
		cfg.Custody.Mode = core.CustodyModeVault
	}

	def := core.DefaultParams()
	if cfg.Risk.MinRatio == 0 {
		cfg.Risk.MinRatio = def.MinRatio
	}

	if cfg.Risk.DepositRate.Denominator == 0 {
		cfg.Risk.DepositRate = def.DepositRate
	}

	if cfg.Risk.BorrowRate.Denominator == 0 {
		cfg.Risk.BorrowRate = def.BorrowRate
	}

	if cfg.Risk.CloseFactor == 0 {
		cfg.Risk.CloseFactor = def.CloseFactor
	}
}
