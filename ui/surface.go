package ui

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 0}
)

// Surface is what the publisher needs from a display: a buffer it can clear,
// draw text into and present.
type Surface interface {
	ClearBuffer()
	DrawText(x, y int16, scale uint8, text string)
	Display() error
}

// Displayer is a buffered pixel display, e.g. *ssd1306.Device.
type Displayer interface {
	drivers.Displayer
	ClearBuffer()
}

// TextSurface draws text onto a pixel display with a fixed font.
type TextSurface struct {
	d     Displayer
	font  *tinyfont.Font
	color color.RGBA
}

func NewTextSurface(d Displayer) *TextSurface {
	if d == nil {
		panic(ErrNilDisplay)
	}
	return &TextSurface{d: d, font: &proggy.TinySZ8pt7b, color: white}
}

func (s *TextSurface) ClearBuffer() {
	s.d.ClearBuffer()
}

// DrawText writes text with its top left corner at x, y. Scale enlarges every
// font pixel into a scale x scale square.
func (s *TextSurface) DrawText(x, y int16, scale uint8, text string) {
	if scale == 0 {
		scale = 1
	}
	sd := &scaled{Displayer: s.d, ox: x, oy: y, k: int16(scale)}
	tinyfont.WriteLine(sd, s.font, 0, int16(s.font.YAdvance), text, s.color)
}

func (s *TextSurface) Display() error {
	return s.d.Display()
}

// scaled maps font pixels onto k x k blocks of the parent display.
type scaled struct {
	Displayer
	ox, oy int16
	k      int16
}

func (s *scaled) Size() (int16, int16) {
	w, h := s.Displayer.Size()
	return (w - s.ox) / s.k, (h - s.oy) / s.k
}

func (s *scaled) SetPixel(x, y int16, c color.RGBA) {
	for dy := int16(0); dy < s.k; dy++ {
		for dx := int16(0); dx < s.k; dx++ {
			s.Displayer.SetPixel(s.ox+x*s.k+dx, s.oy+y*s.k+dy, c)
		}
	}
}
