package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Balance account balance row
type Balance struct {
	Account   string          `sql:"size:36;PRIMARY_KEY" json:"account"`
	Amount    decimal.Decimal `sql:"type:decimal(20,8)" json:"amount"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IBalanceStore currency ledger interface. Transfer joins the caller's
// transaction so payment settles atomically with the state change around it.
type IBalanceStore interface {
	// Find returns a zero balance for unknown accounts
	Find(ctx context.Context, account string) (*Balance, error)
	Deposit(ctx context.Context, tx *db.DB, account string, amount decimal.Decimal) error
	// Transfer fails with ErrInsufficientBalance when the payer would drop
	// below zero, or below the keep alive floor when keepAlive is set
	Transfer(ctx context.Context, tx *db.DB, from, to string, amount decimal.Decimal, keepAlive bool) error
}
