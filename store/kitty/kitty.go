package kitty

import (
	"context"
	"math"

	"kitties/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

const statsRowID = 1

type kittyStore struct {
	db       *db.DB
	capacity int
}

// New new kitty store. capacity bounds every account's ownership list.
func New(db *db.DB, capacity int) core.IKittyStore {
	return &kittyStore{
		db:       db,
		capacity: capacity,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update()

		if err := tx.AutoMigrate(core.Kitty{}).Error; err != nil {
			return err
		}

		if err := tx.AutoMigrate(core.Ownership{}).Error; err != nil {
			return err
		}

		if err := tx.Model(core.Ownership{}).AddUniqueIndex("idx_ownerships_owner_kitty", "owner", "kitty_id").Error; err != nil {
			return err
		}

		if err := tx.Model(core.Ownership{}).AddUniqueIndex("idx_ownerships_owner_position", "owner", "position").Error; err != nil {
			return err
		}

		if err := tx.AutoMigrate(core.KittyStats{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *kittyStore) Save(ctx context.Context, tx *db.DB, kitty *core.Kitty) error {
	var count int
	if err := tx.Update().Model(core.Kitty{}).Where("id = ?", kitty.ID).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return tx.Update().Create(kitty).Error
	}

	updates := map[string]interface{}{
		"owner": kitty.Owner,
		"price": kitty.Price,
	}
	return tx.Update().Model(core.Kitty{}).Where("id = ?", kitty.ID).Updates(updates).Error
}

func (s *kittyStore) Find(ctx context.Context, id string) (*core.Kitty, error) {
	var kitty core.Kitty
	if err := s.db.View().Where("id = ?", id).First(&kitty).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrKittyNotFound
		}
		return nil, err
	}

	return &kitty, nil
}

func (s *kittyStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	if err := s.db.View().Model(core.Kitty{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *kittyStore) OwnerList(ctx context.Context, owner string) ([]string, error) {
	ids := make([]string, 0, 8)
	if err := s.db.View().Model(core.Ownership{}).Where("owner = ?", owner).Order("position").Pluck("kitty_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

func (s *kittyStore) AppendToOwner(ctx context.Context, tx *db.DB, owner, kittyID string) error {
	var count int
	if err := tx.Update().Model(core.Ownership{}).Where("owner = ?", owner).Count(&count).Error; err != nil {
		return err
	}

	if count >= s.capacity {
		return core.ErrTooManyOwned
	}

	slot := core.Ownership{
		Owner:    owner,
		Position: count,
		KittyID:  kittyID,
	}
	return tx.Update().Create(&slot).Error
}

// RemoveFromOwner swap-remove: the last slot moves into the freed position,
// so list order is not preserved across removals.
func (s *kittyStore) RemoveFromOwner(ctx context.Context, tx *db.DB, owner, kittyID string) error {
	var slot core.Ownership
	if err := tx.Update().Where("owner = ? AND kitty_id = ?", owner, kittyID).First(&slot).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return core.ErrKittyNotFound
		}
		return err
	}

	var last core.Ownership
	if err := tx.Update().Where("owner = ?", owner).Order("position DESC").First(&last).Error; err != nil {
		return err
	}

	if err := tx.Update().Where("id = ?", slot.ID).Delete(core.Ownership{}).Error; err != nil {
		return err
	}

	if last.ID != slot.ID {
		if err := tx.Update().Model(core.Ownership{}).Where("id = ?", last.ID).Update("position", slot.Position).Error; err != nil {
			return err
		}
	}

	return nil
}

func (s *kittyStore) Count(ctx context.Context) (uint64, error) {
	var stats core.KittyStats
	if err := s.db.View().Where("id = ?", statsRowID).First(&stats).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return 0, nil
		}
		return 0, err
	}

	return stats.Total, nil
}

// nextTotal checked increment, fails ErrCountOverflow at the uint64 ceiling
func nextTotal(total uint64) (uint64, error) {
	if total == math.MaxUint64 {
		return 0, core.ErrCountOverflow
	}

	return total + 1, nil
}

func (s *kittyStore) IncrementCount(ctx context.Context, tx *db.DB) (uint64, error) {
	stats := core.KittyStats{ID: statsRowID}
	if err := tx.Update().Where("id = ?", statsRowID).FirstOrCreate(&stats).Error; err != nil {
		return 0, err
	}

	total, err := nextTotal(stats.Total)
	if err != nil {
		return 0, err
	}

	if err := tx.Update().Model(core.KittyStats{}).Where("id = ?", statsRowID).Update("total", total).Error; err != nil {
		return 0, err
	}

	return total, nil
}
