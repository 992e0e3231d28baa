package cmd

import (
	"time"

	"kitties/core"
	"kitties/service/notify"
	"kitties/service/random"
	"kitties/service/registry"
	balancestore "kitties/store/balance"
	eventstore "kitties/store/event"
	kittystore "kitties/store/kitty"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideKittyStore(db *db.DB) core.IKittyStore {
	return kittystore.New(db, cfg.App.MaxOwned())
}

func provideCachedKittyStore(db *db.DB) core.IKittyStore {
	return kittystore.Cache(provideKittyStore(db), time.Second)
}

func provideBalanceStore(db *db.DB) core.IBalanceStore {
	return balancestore.New(db, cfg.App.KeepAliveBalance)
}

func provideEventStore(db *db.DB) core.IEventStore {
	return eventstore.New(db)
}

// ------------------service------------------------------------

func provideRandomService() core.Randomness {
	return random.New()
}

func provideNotifyService() core.EventSink {
	return notify.New(notify.Config{
		URL: cfg.App.NotifyURL,
	})
}

func provideRegistryService(db *db.DB) core.IRegistryService {
	return registry.New(
		db,
		provideKittyStore(db),
		provideBalanceStore(db),
		provideEventStore(db),
		provideRandomService(),
	)
}
