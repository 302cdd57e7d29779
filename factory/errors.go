package factory

import "errors"

var (
	// ErrInvalidOrder indicates an order that can never be built.
	ErrInvalidOrder = errors.New("factory: invalid order")

	// ErrNilReceiver indicates Order was called without a receiver.
	ErrNilReceiver = errors.New("factory: nil receiver")
)
