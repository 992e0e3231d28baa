package views

import (
	"kitties/core"
)

// Kitty kitty view
type Kitty struct {
	ID      string `json:"id"`
	Gender  string `json:"gender"`
	Owner   string `json:"owner"`
	Price   string `json:"price,omitempty"`
	ForSale bool   `json:"for_sale"`
}

// NewKitty kitty view from the core record
func NewKitty(kitty *core.Kitty) *Kitty {
	view := &Kitty{
		ID:     kitty.ID,
		Gender: string(kitty.Gender),
		Owner:  kitty.Owner,
	}

	if kitty.Price.Valid {
		view.ForSale = true
		view.Price = kitty.Price.Decimal.String()
	}

	return view
}

// Stats registry stats view
type Stats struct {
	TotalKitties uint64 `json:"total_kitties"`
}

// Balance account balance view
type Balance struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
}
