package event

import (
	"context"

	"kitties/core"

	"github.com/fox-one/pkg/store/db"
)

type eventStore struct {
	db *db.DB
}

// New new event store
func New(db *db.DB) core.IEventStore {
	return &eventStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update()

		if err := tx.AutoMigrate(core.Event{}).Error; err != nil {
			return err
		}

		if err := tx.Model(core.Event{}).AddUniqueIndex("idx_events_trace", "trace_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *eventStore) Create(ctx context.Context, tx *db.DB, event *core.Event) error {
	return tx.Update().Create(event).Error
}

func (s *eventStore) ListAfter(ctx context.Context, cursor uint64, limit int) ([]*core.Event, error) {
	var events []*core.Event
	if err := s.db.View().Where("id > ?", cursor).Order("id").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}
