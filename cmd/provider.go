package cmd

import (
	"fmt"
	"lending/core"
	"lending/pkg/number"
	"lending/service/account"
	"lending/service/block"
	"lending/service/custody"
	"lending/service/event"
	"lending/service/ledger"
	"lending/service/oracle"
	accountstore "lending/store/account"
	eventstore "lending/store/event"
	"lending/store/ratio"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
	"github.com/go-redis/redis"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
}

func provideMixinClient() *mixin.Client {
	c, err := mixin.NewFromKeystore(&cfg.Custody.Mixin.Keystore)
	if err != nil {
		panic(err)
	}

	return c
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideAccountStore(db *db.DB) core.IAccountStore {
	return accountstore.New(db)
}

func provideEventStore(db *db.DB) core.IEventStore {
	return eventstore.New(db)
}

func provideRatioStore(client *redis.Client) core.IRatioStore {
	return ratio.New(client)
}

// ------------------service------------------------------------

func provideClock() core.IClock {
	return block.New(cfg.App)
}

// providePriceFeed oracle feed when an end point is configured, static prices otherwise
func providePriceFeed() core.IPriceFeed {
	if cfg.Price.EndPoint != "" {
		return oracle.New(cfg.Price)
	}

	feed, err := oracle.FromConfig(cfg.Price)
	if err != nil {
		panic(err)
	}

	return feed
}

func provideCustody() core.ICustody {
	switch cfg.Custody.Mode {
	case core.CustodyModeMixin:
		return custody.NewMixin(provideMixinClient(), cfg.Custody.Mixin.Pin, cfg.Assets)
	case core.CustodyModeVault:
		vault := custody.NewVault()
		for assetID, v := range cfg.Custody.Liquidity {
			amount, err := number.ParseAmount(v)
			if err != nil {
				panic(fmt.Errorf("custody liquidity of %s: %w", assetID, err))
			}

			if err := vault.Fund(assetID, amount); err != nil {
				panic(err)
			}
		}

		return vault
	default:
		panic(fmt.Errorf("unknown custody mode %q", cfg.Custody.Mode))
	}
}

func provideLedger(accounts core.IAccountStore, prices core.IPriceFeed, clock core.IClock, custody core.ICustody) core.ILedgerService {
	if cfg.Assets.Base.ID == "" || cfg.Assets.Collateral.ID == "" {
		panic("assets.base.id and assets.collateral.id are required")
	}

	return ledger.New(cfg.Assets, cfg.Risk, accounts, prices, clock, custody)
}

func provideAccountService(ledgerz core.ILedgerService, ratios core.IRatioStore) core.IAccountService {
	return account.New(ledgerz, ratios)
}

func provideEventPublisher() core.IEventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return event.NewLog()
	}

	return event.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic)
}

// provideLedgerService ledger over the configured database, price feed and custody
func provideLedgerService(database *db.DB) core.ILedgerService {
	return provideLedger(
		provideAccountStore(database),
		providePriceFeed(),
		provideClock(),
		provideCustody(),
	)
}
