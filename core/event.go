package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

const (
	// EventKittyCreated a new kitty was minted
	EventKittyCreated = "kitty_created"
	// EventPriceSet a kitty price was set or cleared
	EventPriceSet = "price_set"
	// EventKittyTransferred a kitty changed hands directly
	EventKittyTransferred = "kitty_transferred"
	// EventKittySold a kitty was bought at its asking price
	EventKittySold = "kitty_sold"
)

// Event registry event record. Rows are written in the same transaction as
// the state change they describe and delivered later by the notifier worker.
type Event struct {
	ID        uint64              `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID   string              `sql:"size:36" json:"trace_id"`
	Kind      string              `sql:"size:32" json:"kind"`
	KittyID   string              `sql:"size:32" json:"kitty_id"`
	From      string              `sql:"size:36" json:"from,omitempty"`
	To        string              `sql:"size:36" json:"to,omitempty"`
	Price     decimal.NullDecimal `sql:"type:decimal(20,8)" json:"price,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// IEventStore event outbox store interface
type IEventStore interface {
	Create(ctx context.Context, tx *db.DB, event *Event) error
	// ListAfter returns up to limit events with id > cursor, in id order
	ListAfter(ctx context.Context, cursor uint64, limit int) ([]*Event, error)
}

// EventSink delivers events somewhere else; fire and forget
type EventSink interface {
	Send(ctx context.Context, events []*Event) error
}
