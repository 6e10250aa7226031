package ui

import (
	"image/color"
	"strings"
)

// Framebuffer is an in-memory monochrome display. Any non-black pixel is lit.
type Framebuffer struct {
	w, h   int16
	pixels []bool
	frames int
}

func NewFramebuffer(w, h int16) *Framebuffer {
	if w <= 0 || h <= 0 {
		panic(ErrBadSize)
	}
	return &Framebuffer{w: w, h: h, pixels: make([]bool, int(w)*int(h))}
}

func (f *Framebuffer) Size() (int16, int16) {
	return f.w, f.h
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.pixels[int(y)*int(f.w)+int(x)] = c != black
}

// Get reports whether the pixel at x, y is lit.
func (f *Framebuffer) Get(x, y int16) bool {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	return f.pixels[int(y)*int(f.w)+int(x)]
}

func (f *Framebuffer) ClearBuffer() {
	clear(f.pixels)
}

// Display counts presented frames.
func (f *Framebuffer) Display() error {
	f.frames++
	return nil
}

func (f *Framebuffer) Frames() int {
	return f.frames
}

// Lit returns the number of lit pixels.
func (f *Framebuffer) Lit() (n int) {
	for _, p := range f.pixels {
		if p {
			n++
		}
	}
	return n
}

// String renders the buffer as rows of '#' and '.'.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow(int(f.w+1) * int(f.h))
	for y := int16(0); y < f.h; y++ {
		for x := int16(0); x < f.w; x++ {
			if f.Get(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
