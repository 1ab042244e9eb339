package farm

import "errors"

// Rejections. A call that returns one of these left the model untouched.
var (
	ErrInvalidTarget     = errors.New("invalid target")
	ErrNotReady          = errors.New("plant not ready")
	ErrOccupied          = errors.New("position occupied")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNoPlant           = errors.New("no plant at position")
	ErrUnknownItem       = errors.New("unknown item")
	ErrNotForSale        = errors.New("item not for sale")
	ErrNoSeedSelected    = errors.New("no seed selected")
	ErrExhausted         = errors.New("not enough energy")
	ErrInvalidDirection  = errors.New("invalid direction")
)

var ErrInvalidCatalog = errors.New("invalid catalog")
