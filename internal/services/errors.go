package services

import "errors"

// Sentinel errors for the order and transaction flows. Handlers translate
// these to HTTP statuses with errors.Is; anything else is a server error.
var (
	// ErrMissingPrincipal is returned when a checkout arrives without an
	// authenticated buyer identifier.
	ErrMissingPrincipal = errors.New("an authenticated principal is required")

	// ErrEmptyOrder is returned when a checkout carries no farmer groups or
	// no products at all.
	ErrEmptyOrder = errors.New("order must contain at least one product")

	// ErrMissingBuyer is returned when the buyer details snapshot is absent.
	ErrMissingBuyer = errors.New("buyer details are required")

	// ErrInvalidTransportation is returned for a transportation value outside
	// {Pick-up, Delivery}.
	ErrInvalidTransportation = errors.New("invalid transportation option")

	// ErrInvalidLineItem is returned when a line item carries a non-positive
	// quantity or price.
	ErrInvalidLineItem = errors.New("line items require positive quantity and price")

	// ErrTotalMismatch is returned when a client-supplied total disagrees
	// with the server-side recomputation over the line items.
	ErrTotalMismatch = errors.New("total price does not match line items")

	// ErrInvalidRole is returned for a transaction query with a role outside
	// {admin, farmer, business}.
	ErrInvalidRole = errors.New("invalid role provided")

	// ErrNoTransactions is returned when a transaction query matches no
	// orders. The API reports this as not found.
	ErrNoTransactions = errors.New("no transactions found")
)
