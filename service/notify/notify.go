package notify

import (
	"context"
	"fmt"
	"time"

	"kitties/core"

	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
)

// Config notify config
type Config struct {
	// URL webhook receiving event batches as json; log only when empty
	URL string
}

type notifyService struct {
	client *resty.Client
	url    string
}

// New new event sink
func New(cfg Config) core.EventSink {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &notifyService{
		client: client,
		url:    cfg.URL,
	}
}

func (s *notifyService) Send(ctx context.Context, events []*core.Event) error {
	log := logger.FromContext(ctx).WithField("service", "notify")

	if s.url == "" {
		for _, event := range events {
			log.WithField("kind", event.Kind).WithField("kitty", event.KittyID).Infoln("event")
		}
		return nil
	}

	r, err := s.client.R().SetContext(ctx).SetBody(events).Post(s.url)
	if err != nil {
		log.WithError(err).Errorln("notify.Post")
		return err
	}

	if r.StatusCode() >= 400 {
		err := fmt.Errorf("notify: %s", r.Status())
		log.WithError(err).Errorln("notify.Post")
		return err
	}

	return nil
}
