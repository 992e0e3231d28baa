package registry

import (
	"context"

	"kitties/core"
	"kitties/pkg/dna"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	uuidutil "github.com/fox-one/pkg/uuid"
	"github.com/shopspring/decimal"
)

type registryService struct {
	db       *db.DB
	kitties  core.IKittyStore
	balances core.IBalanceStore
	events   core.IEventStore
	random   core.Randomness
}

// New new registry service. Every transition validates against current
// state first, then commits all of its writes in a single transaction.
func New(
	db *db.DB,
	kittyStr core.IKittyStore,
	balanceStr core.IBalanceStore,
	eventStr core.IEventStore,
	random core.Randomness,
) core.IRegistryService {
	return &registryService{
		db:       db,
		kitties:  kittyStr,
		balances: balanceStr,
		events:   eventStr,
		random:   random,
	}
}

// Mint create a new kitty owned by minter, with dna derived from a
// randomness draw.
func (s *registryService) Mint(ctx context.Context, minter string) (*core.Kitty, error) {
	log := logger.FromContext(ctx).WithField("service", "registry")

	draw, marker, err := s.random.Draw(ctx, []byte(minter))
	if err != nil {
		log.WithError(err).Errorln("random.Draw")
		return nil, err
	}

	d := dna.New(draw, minter, marker)
	kitty := &core.Kitty{
		ID:     d.ID(),
		Gender: core.GenderOf(d.Leading()),
		Owner:  minter,
	}

	exists, err := s.kitties.Exists(ctx, kitty.ID)
	if err != nil {
		log.WithError(err).Errorln("kitties.Exists")
		return nil, err
	}

	if exists {
		return nil, core.ErrDuplicateKitty
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		// capacity check comes first; a full list aborts before the
		// kitty row is written
		if err := s.kitties.AppendToOwner(ctx, tx, minter, kitty.ID); err != nil {
			return err
		}

		if err := s.kitties.Save(ctx, tx, kitty); err != nil {
			return err
		}

		if _, err := s.kitties.IncrementCount(ctx, tx); err != nil {
			return err
		}

		return s.events.Create(ctx, tx, &core.Event{
			TraceID: uuidutil.New(),
			Kind:    core.EventKittyCreated,
			KittyID: kitty.ID,
			To:      minter,
		})
	}); err != nil {
		return nil, err
	}

	log.WithField("kitty", kitty.ID).Infoln("minted")
	return kitty, nil
}

// SetPrice list or delist a kitty. A price with Valid=false delists.
func (s *registryService) SetPrice(ctx context.Context, caller, kittyID string, price decimal.NullDecimal) (*core.Kitty, error) {
	log := logger.FromContext(ctx).WithField("service", "registry")

	if price.Valid && !price.Decimal.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	kitty, err := s.kitties.Find(ctx, kittyID)
	if err != nil {
		return nil, err
	}

	if kitty.Owner != caller {
		return nil, core.ErrNotOwner
	}

	kitty.Price = price
	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.kitties.Save(ctx, tx, kitty); err != nil {
			return err
		}

		return s.events.Create(ctx, tx, &core.Event{
			TraceID: uuidutil.New(),
			Kind:    core.EventPriceSet,
			KittyID: kitty.ID,
			From:    caller,
			Price:   price,
		})
	}); err != nil {
		return nil, err
	}

	log.WithField("kitty", kitty.ID).Infoln("price set")
	return kitty, nil
}

// Transfer move a kitty to another account, clearing its price
func (s *registryService) Transfer(ctx context.Context, caller, to, kittyID string) error {
	kitty, err := s.kitties.Find(ctx, kittyID)
	if err != nil {
		return err
	}

	if kitty.Owner != caller {
		return core.ErrNotOwner
	}

	if to == caller {
		return core.ErrTransferToSelf
	}

	return s.db.Tx(func(tx *db.DB) error {
		return s.move(ctx, tx, kitty, caller, to, core.EventKittyTransferred, decimal.NullDecimal{})
	})
}

// Buy purchase a listed kitty. Settlement happens at the asking price, not
// the bid, and the payment and the ownership move commit together.
func (s *registryService) Buy(ctx context.Context, buyer, kittyID string, bid decimal.Decimal) (*core.Kitty, error) {
	log := logger.FromContext(ctx).WithField("service", "registry")

	kitty, err := s.kitties.Find(ctx, kittyID)
	if err != nil {
		return nil, err
	}

	if !kitty.Price.Valid {
		return nil, core.ErrNotForSale
	}

	seller := kitty.Owner
	if seller == buyer {
		return nil, core.ErrTransferToSelf
	}

	ask := kitty.Price.Decimal
	if bid.LessThan(ask) {
		return nil, core.ErrBidPriceTooLow
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		// payment settles first; a failed payment rolls back before any
		// ownership mutation is attempted
		if err := s.balances.Transfer(ctx, tx, buyer, seller, ask, true); err != nil {
			return err
		}

		return s.move(ctx, tx, kitty, seller, buyer, core.EventKittySold, decimal.NullDecimal{Decimal: ask, Valid: true})
	}); err != nil {
		return nil, err
	}

	log.WithField("kitty", kitty.ID).WithField("price", ask).Infoln("sold")
	return kitty, nil
}

// move reassigns ownership inside tx: index move, owner swap, price reset,
// event append. Callers have already validated the transition.
func (s *registryService) move(ctx context.Context, tx *db.DB, kitty *core.Kitty, from, to, kind string, price decimal.NullDecimal) error {
	log := logger.FromContext(ctx).WithField("service", "registry")

	if err := s.kitties.RemoveFromOwner(ctx, tx, from, kitty.ID); err != nil {
		if err == core.ErrKittyNotFound {
			// the table says from owns this kitty but the index has no
			// slot for it; an invariant is broken somewhere else
			log.WithField("kitty", kitty.ID).WithField("owner", from).Errorln("ownership index corrupted")
			return core.ErrIndexCorrupted
		}
		return err
	}

	if err := s.kitties.AppendToOwner(ctx, tx, to, kitty.ID); err != nil {
		return err
	}

	kitty.Owner = to
	kitty.Price = decimal.NullDecimal{}
	if err := s.kitties.Save(ctx, tx, kitty); err != nil {
		return err
	}

	return s.events.Create(ctx, tx, &core.Event{
		TraceID: uuidutil.New(),
		Kind:    kind,
		KittyID: kitty.ID,
		From:    from,
		To:      to,
		Price:   price,
	})
}
