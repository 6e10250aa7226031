package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidPinMode = Error("invalid pin mode")
	ErrNilPin         = Error("pin is not set")
	ErrNilSignal      = Error("permission signal is not set")
	ErrNilSlot        = Error("handoff slot is not set")
)
