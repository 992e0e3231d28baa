package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Gender kitty gender, derived from the leading dna byte
type Gender string

const (
	// GenderMale male kitty
	GenderMale Gender = "male"
	// GenderFemale female kitty
	GenderFemale Gender = "female"
)

// GenderOf derive gender from the leading dna byte
func GenderOf(b byte) Gender {
	if b%2 == 0 {
		return GenderMale
	}

	return GenderFemale
}

// Kitty kitty struct. ID is the hex encoded 16 byte dna and never changes
// after mint; Owner and Price are the only mutable fields. Price with
// Valid=false means the kitty is not listed for sale.
type Kitty struct {
	ID        string              `sql:"size:32;PRIMARY_KEY" json:"id"`
	Gender    Gender              `sql:"size:8" json:"gender"`
	Owner     string              `sql:"size:36;index:idx_kitties_owner" json:"owner"`
	Price     decimal.NullDecimal `sql:"type:decimal(20,8)" json:"price,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Ownership one slot of an account's ownership list. Positions are dense
// per owner, starting at 0; removal swaps the last slot into the hole.
type Ownership struct {
	ID       uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Owner    string `sql:"size:36" json:"owner"`
	Position int    `json:"position"`
	KittyID  string `sql:"size:32" json:"kitty_id"`
}

// KittyStats the single counter row; Total only increases
type KittyStats struct {
	ID    int    `sql:"PRIMARY_KEY" json:"id"`
	Total uint64 `json:"total"`
}

// IKittyStore kitty registry store interface
type IKittyStore interface {
	// Save upserts the full kitty record
	Save(ctx context.Context, tx *db.DB, kitty *Kitty) error
	// Find returns ErrKittyNotFound if id is unknown
	Find(ctx context.Context, id string) (*Kitty, error)
	Exists(ctx context.Context, id string) (bool, error)
	// OwnerList returns kitty ids held by owner in slot order
	OwnerList(ctx context.Context, owner string) ([]string, error)
	// AppendToOwner fails with ErrTooManyOwned when the list is full,
	// leaving the list untouched
	AppendToOwner(ctx context.Context, tx *db.DB, owner, kittyID string) error
	// RemoveFromOwner removes by value with swap-remove semantics and
	// fails with ErrKittyNotFound if the slot is absent
	RemoveFromOwner(ctx context.Context, tx *db.DB, owner, kittyID string) error
	Count(ctx context.Context) (uint64, error)
	// IncrementCount fails with ErrCountOverflow instead of wrapping
	IncrementCount(ctx context.Context, tx *db.DB) (uint64, error)
}

// IRegistryService the four registry state transitions. Every call either
// commits all of its writes or none of them.
type IRegistryService interface {
	Mint(ctx context.Context, minter string) (*Kitty, error)
	SetPrice(ctx context.Context, caller, kittyID string, price decimal.NullDecimal) (*Kitty, error)
	Transfer(ctx context.Context, caller, to, kittyID string) error
	Buy(ctx context.Context, buyer, kittyID string, bid decimal.Decimal) (*Kitty, error)
}
