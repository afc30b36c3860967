package dto

import "errors"

var (
	// ErrDataUnavailable indicates the broker returned no usable data for a
	// symbol (empty history, no expirations, no chain).
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrMissingRequiredField indicates a strategy order is missing a field
	// required by its order type.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidStrikeOrder indicates iron condor strikes are not strictly
	// ascending.
	ErrInvalidStrikeOrder = errors.New("strikes must be strictly ascending")

	// OCC symbol encoding failures.
	ErrInvalidSymbol = errors.New("invalid underlying symbol")
	ErrInvalidDate   = errors.New("invalid expiration date")
	ErrInvalidStrike = errors.New("invalid strike price")
)
