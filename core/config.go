package core

import (
	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/store/db"
)

// Config lending config
type Config struct {
	App     App       `json:"app"`
	DB      db.Config `json:"db"`
	Redis   Redis     `json:"redis"`
	Kafka   Kafka     `json:"kafka"`
	Assets  Assets    `json:"assets"`
	Price   Price     `json:"price"`
	Risk    Params    `json:"risk"`
	Custody Custody   `json:"custody"`
}

// App app config
type App struct {
	// Genesis unix seconds of tick 0
	Genesis         int64  `json:"genesis"`
	SecondsPerBlock int64  `json:"seconds_per_block"`
	Location        string `json:"location"`
}

// Redis redis config
type Redis struct {
	Addr string `json:"addr"`
	DB   int    `json:"db"`
}

// Kafka kafka config, events are not published when Brokers is empty
type Kafka struct {
	Brokers []string `json:"brokers"`
	Topic   string   `json:"topic"`
}

// Price price feed config
type Price struct {
	// Decimals prices are scaled by 10^Decimals
	Decimals int32 `json:"decimals"`
	// Static asset id => decimal price, used when EndPoint is empty
	Static map[string]string `json:"static"`
	// EndPoint price oracle api
	EndPoint string `json:"end_point"`
	// CacheTTL seconds an oracle price is reused
	CacheTTL int64 `json:"cache_ttl"`
}

const (
	// CustodyModeVault in-process vault
	CustodyModeVault = "vault"
	// CustodyModeMixin mixin wallet
	CustodyModeMixin = "mixin"
)

// Custody custody config
type Custody struct {
	Mode string `json:"mode"`
	// Liquidity asset id => amount the vault starts with
	Liquidity map[string]string `json:"liquidity"`
	Mixin     MixinWallet       `json:"mixin"`
}

// MixinWallet mixin dapp config
type MixinWallet struct {
	mixin.Keystore
	ClientSecret string `json:"client_secret"`
	Pin          string `json:"pin"`
}
