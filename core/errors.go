package core

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100001

	// ErrKittyNotFound no kitty with the requested id
	ErrKittyNotFound ErrorCode = 100100
	// ErrDuplicateKitty minted id collides with an existing kitty
	ErrDuplicateKitty ErrorCode = 100101
	// ErrTooManyOwned ownership list is at capacity
	ErrTooManyOwned ErrorCode = 100102
	// ErrCountOverflow total counter would wrap
	ErrCountOverflow ErrorCode = 100103
	// ErrNotOwner caller does not own the kitty
	ErrNotOwner ErrorCode = 100104
	// ErrTransferToSelf transfer or buy from oneself
	ErrTransferToSelf ErrorCode = 100105
	// ErrNotForSale kitty has no price set
	ErrNotForSale ErrorCode = 100106
	// ErrBidPriceTooLow bid below the asking price
	ErrBidPriceTooLow ErrorCode = 100107
	// ErrInsufficientBalance buyer cannot cover the asking price
	ErrInsufficientBalance ErrorCode = 100108
	// ErrIndexCorrupted ownership index disagrees with the kitty table;
	// a defect, not a user error
	ErrIndexCorrupted ErrorCode = 100109
)

var errorMsgs = map[ErrorCode]string{
	ErrUnknown:             "unknown",
	ErrInvalidAmount:       "invalid amount",
	ErrKittyNotFound:       "kitty not found",
	ErrDuplicateKitty:      "duplicate kitty",
	ErrTooManyOwned:        "too many kitties owned",
	ErrCountOverflow:       "kitty count overflow",
	ErrNotOwner:            "not the owner",
	ErrTransferToSelf:      "transfer to self",
	ErrNotForSale:          "not for sale",
	ErrBidPriceTooLow:      "bid price too low",
	ErrInsufficientBalance: "insufficient balance",
	ErrIndexCorrupted:      "ownership index corrupted",
}

func (e ErrorCode) String() string {
	if msg, ok := errorMsgs[e]; ok {
		return msg
	}

	return errorMsgs[ErrUnknown]
}

func (e ErrorCode) Error() string {
	return e.String()
}
