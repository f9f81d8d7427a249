// Package screen implements the monochrome CHIP-8 display surface.
package screen

import "sync"

const (
	// Width of the display in pixels.
	Width = 64
	// Height of the display in pixels.
	Height = 32
)

// Framebuffer is a Width x Height grid of pixels that sprites are XORed
// onto. It is safe to read from a render goroutine while the VM draws.
type Framebuffer struct {
	mu     sync.RWMutex
	pixels [Width * Height]bool
	dirty  bool
}

// New returns a cleared framebuffer.
func New() *Framebuffer {
	return &Framebuffer{dirty: true}
}

// Clear unsets all pixels.
func (f *Framebuffer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pixels = [Width * Height]bool{}
	f.dirty = true
}

// DrawSprite XORs every row of 8 pixels at x, y. Pixels that leave the
// display wrap around to the opposite side. It returns true if any set
// pixel got unset.
func (f *Framebuffer) DrawSprite(x, y uint8, rows []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	collision := false
	for dy, row := range rows {
		py := (int(y) + dy) % Height
		for dx := 0; dx < 8; dx++ {
			if row&(0x80>>dx) == 0 {
				continue
			}

			px := (int(x) + dx) % Width
			i := py*Width + px
			if f.pixels[i] {
				collision = true
			}
			f.pixels[i] = !f.pixels[i]
		}
	}

	if len(rows) > 0 {
		f.dirty = true
	}
	return collision
}

// Size returns the display dimensions.
func (f *Framebuffer) Size() (int, int) {
	return Width, Height
}

// Pixel returns whether the pixel at x, y is set.
func (f *Framebuffer) Pixel(x, y int) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.pixels[y*Width+x]
}

// Pixels returns a copy of all pixels in row major order.
func (f *Framebuffer) Pixels() [Width * Height]bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.pixels
}

// TakeDirty returns whether the framebuffer changed since the last call.
func (f *Framebuffer) TakeDirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	dirty := f.dirty
	f.dirty = false
	return dirty
}
