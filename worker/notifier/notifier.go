package notifier

import (
	"context"
	"time"

	"kitties/core"
	"kitties/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/robfig/cron/v3"
)

const checkpointKey = "events_checkpoint"

const limit = 100

// Notifier delivers outbox events past the checkpoint, in id order.
// Delivery is at least once: the checkpoint only advances after a batch
// went out.
type Notifier struct {
	worker.BaseJob
	eventStore core.IEventStore
	sink       core.EventSink
	property   property.Store
}

// New new notifier worker
func New(location string, eventStr core.IEventStore, sink core.EventSink, property property.Store) *Notifier {
	notifier := Notifier{
		eventStore: eventStr,
		sink:       sink,
		property:   property,
	}

	l, _ := time.LoadLocation(location)
	notifier.Cron = cron.New(cron.WithLocation(l))
	notifier.Cron.AddFunc("@every 1s", notifier.Tick)
	notifier.OnWork = func() error {
		return notifier.onWork(context.Background())
	}

	return &notifier
}

func (w *Notifier) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "notifier")

	v, err := w.property.Get(ctx, checkpointKey)
	if err != nil {
		log.WithError(err).Errorln("property.Get", checkpointKey)
		return err
	}

	cursor := uint64(v.Int64())

	events, err := w.eventStore.ListAfter(ctx, cursor, limit)
	if err != nil {
		log.WithError(err).Errorln("events.ListAfter")
		return err
	}

	if len(events) == 0 {
		return nil
	}

	if err := w.sink.Send(ctx, events); err != nil {
		log.WithError(err).Errorln("sink.Send")
		return err
	}

	cursor = events[len(events)-1].ID
	if err := w.property.Save(ctx, checkpointKey, cursor); err != nil {
		log.WithError(err).Errorln("property.Save", checkpointKey)
		return err
	}

	return nil
}
