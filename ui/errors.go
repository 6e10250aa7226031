package ui

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNilDisplay = Error("display is not set")
	ErrNilSlot    = Error("reading slot is not set")
	ErrBadSize    = Error("invalid framebuffer size")
)
