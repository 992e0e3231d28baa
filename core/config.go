package core

import (
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// DefaultMaxKittiesOwned default per account ownership capacity
const DefaultMaxKittiesOwned = 100

// Config kitties config
type Config struct {
	App App       `json:"app"`
	DB  db.Config `json:"db"`
}

// App app config
type App struct {
	// MaxKittiesOwned the maximum amount of kitties a single account can own
	MaxKittiesOwned int `json:"max_kitties_owned"`
	// KeepAliveBalance minimum balance a payer must keep after a sale
	KeepAliveBalance decimal.Decimal `json:"keep_alive_balance"`
	// NotifyURL optional webhook receiving registry events
	NotifyURL string `json:"notify_url"`
	Location  string `json:"location"`
}

// MaxOwned capacity with the default applied
func (a App) MaxOwned() int {
	if a.MaxKittiesOwned > 0 {
		return a.MaxKittiesOwned
	}

	return DefaultMaxKittiesOwned
}
