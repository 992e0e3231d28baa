package kitty

import (
	"context"
	"fmt"
	"time"

	"kitties/core"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/store/db"
	"golang.org/x/sync/singleflight"
)

// Cache wrap a kitty store with a read cache. Mutations drop the touched
// keys so readers never see a stale owner or price for long.
func Cache(store core.IKittyStore, exp time.Duration) core.IKittyStore {
	return &cacheKittyStore{
		IKittyStore: store,
		cache:       gcache.New(1024).LRU().Build(),
		sf:          &singleflight.Group{},
		exp:         exp,
	}
}

type cacheKittyStore struct {
	core.IKittyStore
	cache gcache.Cache
	sf    *singleflight.Group
	exp   time.Duration
}

func (s *cacheKittyStore) Find(ctx context.Context, id string) (*core.Kitty, error) {
	key := s.kittyKey(id)
	if v, err := s.cache.Get(key); err == nil {
		if kitty, ok := v.(*core.Kitty); ok {
			return kitty, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		kitty, err := s.IKittyStore.Find(ctx, id)
		if err != nil {
			return nil, err
		}

		_ = s.cache.SetWithExpire(key, kitty, s.exp)
		return kitty, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.Kitty), nil
}

func (s *cacheKittyStore) Save(ctx context.Context, tx *db.DB, kitty *core.Kitty) error {
	if err := s.IKittyStore.Save(ctx, tx, kitty); err != nil {
		return err
	}

	s.cache.Remove(s.kittyKey(kitty.ID))
	return nil
}

func (s *cacheKittyStore) kittyKey(id string) string {
	return fmt.Sprintf("kitty:id:%s", id)
}
