package kitty

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"kitties/core"

	"github.com/fox-one/pkg/store/db"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
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

func testKitty(id, owner string) *core.Kitty {
	return &core.Kitty{
		ID:     id,
		Gender: core.GenderMale,
		Owner:  owner,
	}
}

func TestSaveAndFind(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	store := New(database, 3)
	ctx := context.Background()

	_, err := store.Find(ctx, "deadbeef")
	assert.Equal(t, core.ErrKittyNotFound, err)

	kitty := testKitty("deadbeef", "alice")
	require.Nil(t, database.Tx(func(tx *db.DB) error {
		return store.Save(ctx, tx, kitty)
	}))

	found, err := store.Find(ctx, "deadbeef")
	require.Nil(t, err)
	assert.Equal(t, "alice", found.Owner)
	assert.False(t, found.Price.Valid)

	exists, err := store.Exists(ctx, "deadbeef")
	require.Nil(t, err)
	assert.True(t, exists)

	// upsert mutates owner in place
	kitty.Owner = "bob"
	require.Nil(t, database.Tx(func(tx *db.DB) error {
		return store.Save(ctx, tx, kitty)
	}))

	found, err = store.Find(ctx, "deadbeef")
	require.Nil(t, err)
	assert.Equal(t, "bob", found.Owner)
}

func TestAppendToOwnerCapacity(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	store := New(database, 2)
	ctx := context.Background()

	require.Nil(t, database.Tx(func(tx *db.DB) error {
		return store.AppendToOwner(ctx, tx, "alice", "k1")
	}))
	require.Nil(t, database.Tx(func(tx *db.DB) error {
		return store.AppendToOwner(ctx, tx, "alice", "k2")
	}))

	err := database.Tx(func(tx *db.DB) error {
		return store.AppendToOwner(ctx, tx, "alice", "k3")
	})
	assert.Equal(t, core.ErrTooManyOwned, err)

	list, err := store.OwnerList(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, []string{"k1", "k2"}, list)
}

func TestRemoveFromOwnerSwapRemove(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	store := New(database, 10)
	ctx := context.Background()

	for _, id := range []string{"k1", "k2", "k3", "k4"} {
		id := id
		require.Nil(t, database.Tx(func(tx *db.DB) error {
			return store.AppendToOwner(ctx, tx, "alice", id)
		}))
	}

	// removing from the middle moves the last slot into the hole
	require.Nil(t, database.Tx(func(tx *db.DB) error {
		return store.RemoveFromOwner(ctx, tx, "alice", "k2")
	}))

	list, err := store.OwnerList(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, []string{"k1", "k4", "k3"}, list)

	// removing the last slot keeps the rest in place
	require.Nil(t, database.Tx(func(tx *db.DB) error {
		return store.RemoveFromOwner(ctx, tx, "alice", "k3")
	}))

	list, err = store.OwnerList(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, []string{"k1", "k4"}, list)

	err = database.Tx(func(tx *db.DB) error {
		return store.RemoveFromOwner(ctx, tx, "alice", "k2")
	})
	assert.Equal(t, core.ErrKittyNotFound, err)
}

func TestIncrementCount(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	store := New(database, 10)
	ctx := context.Background()

	total, err := store.Count(ctx)
	require.Nil(t, err)
	assert.Zero(t, total)

	for i := uint64(1); i <= 3; i++ {
		require.Nil(t, database.Tx(func(tx *db.DB) error {
			n, err := store.IncrementCount(ctx, tx)
			if err != nil {
				return err
			}
			assert.Equal(t, i, n)
			return nil
		}))
	}

	total, err = store.Count(ctx)
	require.Nil(t, err)
	assert.Equal(t, uint64(3), total)
}

// the sqlite driver refuses to bind uint64 values with the high bit set,
// so the ceiling cannot be seeded through the store; the guard runs before
// any write and is checked on its own
func TestNextTotalOverflow(t *testing.T) {
	n, err := nextTotal(math.MaxUint64 - 1)
	require.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), n)

	_, err = nextTotal(math.MaxUint64)
	assert.Equal(t, core.ErrCountOverflow, err)

	n, err = nextTotal(0)
	require.Nil(t, err)
	assert.Equal(t, uint64(1), n)
}

func TestAppendRollback(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	store := New(database, 10)
	ctx := context.Background()

	err := database.Tx(func(tx *db.DB) error {
		if err := store.AppendToOwner(ctx, tx, "alice", "k1"); err != nil {
			return err
		}
		return core.ErrUnknown
	})
	assert.NotNil(t, err)

	list, err := store.OwnerList(ctx, "alice")
	require.Nil(t, err)
	assert.Empty(t, list)
}
