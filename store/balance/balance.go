package balance

import (
	"context"

	"kitties/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type balanceStore struct {
	db        *db.DB
	keepAlive decimal.Decimal
}

// New new balance store. keepAlive is the floor a payer must keep when a
// transfer asks for keep alive semantics.
func New(db *db.DB, keepAlive decimal.Decimal) core.IBalanceStore {
	return &balanceStore{
		db:        db,
		keepAlive: keepAlive,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		return db.Update().AutoMigrate(core.Balance{}).Error
	})
}

func (s *balanceStore) Find(ctx context.Context, account string) (*core.Balance, error) {
	var balance core.Balance
	if err := s.db.View().Where("account = ?", account).First(&balance).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Balance{Account: account, Amount: decimal.Zero}, nil
		}
		return nil, err
	}

	return &balance, nil
}

func (s *balanceStore) Deposit(ctx context.Context, tx *db.DB, account string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	balance := core.Balance{Account: account}
	if err := tx.Update().Where("account = ?", account).FirstOrCreate(&balance).Error; err != nil {
		return err
	}

	next := balance.Amount.Add(amount)
	return tx.Update().Model(core.Balance{}).Where("account = ?", account).Update("amount", next).Error
}

func (s *balanceStore) Transfer(ctx context.Context, tx *db.DB, from, to string, amount decimal.Decimal, keepAlive bool) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	var payer core.Balance
	if err := tx.Update().Where("account = ?", from).First(&payer).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return core.ErrInsufficientBalance
		}
		return err
	}

	floor := decimal.Zero
	if keepAlive {
		floor = s.keepAlive
	}

	remain := payer.Amount.Sub(amount)
	if remain.LessThan(floor) {
		return core.ErrInsufficientBalance
	}

	if err := tx.Update().Model(core.Balance{}).Where("account = ?", from).Update("amount", remain).Error; err != nil {
		return err
	}

	payee := core.Balance{Account: to}
	if err := tx.Update().Where("account = ?", to).FirstOrCreate(&payee).Error; err != nil {
		return err
	}

	next := payee.Amount.Add(amount)
	return tx.Update().Model(core.Balance{}).Where("account = ?", to).Update("amount", next).Error
}
