package balance

import (
	"context"
	"path/filepath"
	"testing"

	"kitties/core"

	"github.com/fox-one/pkg/store/db"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *db.DB {
	path := filepath.Join(t.TempDir(), "kitties.db")
	database := db.MustOpen(db.Config{
		Dialect:  "sqlite3",
		Host:     path,
		Database: path,
	})
	require.Nil(t, db.Migrate(database))
	return database
}

func deposit(t *testing.T, database *db.DB, store core.IBalanceStore, account string, amount int64) {
	require.Nil(t, database.Tx(func(tx *db.DB) error {
		return store.Deposit(context.Background(), tx, account, decimal.NewFromInt(amount))
	}))
}

func amountOf(t *testing.T, store core.IBalanceStore, account string) decimal.Decimal {
	balance, err := store.Find(context.Background(), account)
	require.Nil(t, err)
	return balance.Amount
}

func TestDeposit(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	store := New(database, decimal.NewFromInt(1))
	ctx := context.Background()

	assert.True(t, amountOf(t, store, "alice").IsZero())

	deposit(t, database, store, "alice", 100)
	deposit(t, database, store, "alice", 50)
	assert.True(t, amountOf(t, store, "alice").Equal(decimal.NewFromInt(150)))

	err := database.Tx(func(tx *db.DB) error {
		return store.Deposit(ctx, tx, "alice", decimal.Zero)
	})
	assert.Equal(t, core.ErrInvalidAmount, err)
}

func TestTransfer(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	store := New(database, decimal.NewFromInt(1))
	ctx := context.Background()

	deposit(t, database, store, "alice", 100)

	require.Nil(t, database.Tx(func(tx *db.DB) error {
		return store.Transfer(ctx, tx, "alice", "bob", decimal.NewFromInt(40), false)
	}))

	assert.True(t, amountOf(t, store, "alice").Equal(decimal.NewFromInt(60)))
	assert.True(t, amountOf(t, store, "bob").Equal(decimal.NewFromInt(40)))
}

func TestTransferInsufficient(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	store := New(database, decimal.NewFromInt(1))
	ctx := context.Background()

	deposit(t, database, store, "alice", 100)

	err := database.Tx(func(tx *db.DB) error {
		return store.Transfer(ctx, tx, "alice", "bob", decimal.NewFromInt(200), false)
	})
	assert.Equal(t, core.ErrInsufficientBalance, err)

	err = database.Tx(func(tx *db.DB) error {
		return store.Transfer(ctx, tx, "nobody", "bob", decimal.NewFromInt(1), false)
	})
	assert.Equal(t, core.ErrInsufficientBalance, err)

	// balances untouched on failure
	assert.True(t, amountOf(t, store, "alice").Equal(decimal.NewFromInt(100)))
	assert.True(t, amountOf(t, store, "bob").IsZero())
}

func TestTransferKeepAlive(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	store := New(database, decimal.NewFromInt(10))
	ctx := context.Background()

	deposit(t, database, store, "alice", 100)

	// would leave 5, below the keep alive floor of 10
	err := database.Tx(func(tx *db.DB) error {
		return store.Transfer(ctx, tx, "alice", "bob", decimal.NewFromInt(95), true)
	})
	assert.Equal(t, core.ErrInsufficientBalance, err)

	// same amount is fine without keep alive
	require.Nil(t, database.Tx(func(tx *db.DB) error {
		return store.Transfer(ctx, tx, "alice", "bob", decimal.NewFromInt(95), false)
	}))
	assert.True(t, amountOf(t, store, "alice").Equal(decimal.NewFromInt(5)))
}
