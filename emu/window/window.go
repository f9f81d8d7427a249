// Package window renders the framebuffer in a pixelgl window and reads
// the hex keypad from the keyboard.
package window

import (
	"fmt"
	"image/color"
	"maps"

	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// DefaultKeyMap maps the COSMAC VIP keypad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// onto the left side of a QWERTY keyboard.
var DefaultKeyMap = map[uint16]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// defaultKeyMap returns a copy of DefaultKeyMap owned by a single window.
func defaultKeyMap() map[uint16]pixelgl.Button {
	return maps.Clone(DefaultKeyMap)
}

// Window is the display and keypad frontend.
type Window struct {
	*pixelgl.Window
	KeyMap map[uint16]pixelgl.Button

	fb      *screen.Framebuffer
	scale   float64
	imd     *imdraw.IMDraw
	fg, bg  color.Color
	presses []uint8
}

// New opens a window showing the framebuffer, each pixel drawn as a
// scale x scale square. It has to be called from the pixelgl.Run
// callback.
func New(fb *screen.Framebuffer, scale float64, title string) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screen.Width*scale, screen.Height*scale),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	return &Window{
		Window: win,
		KeyMap: defaultKeyMap(),
		fb:     fb,
		scale:  scale,
		imd:    imdraw.New(nil),
		fg:     colornames.White,
		bg:     colornames.Black,
	}, nil
}

// IsPressed returns whether the keypad key is held down.
func (w *Window) IsPressed(key uint8) bool {
	button, ok := w.KeyMap[uint16(key&0x0F)]
	return ok && w.Pressed(button)
}

// NextKeyPress returns the oldest key pressed since the last refresh
// that was not returned yet.
func (w *Window) NextKeyPress() (uint8, bool) {
	if len(w.presses) == 0 {
		return 0, false
	}
	key := w.presses[0]
	w.presses = w.presses[1:]
	return key, true
}

// Refresh redraws the framebuffer if it changed, swaps the buffers and
// collects the keys pressed during the last frame.
func (w *Window) Refresh() {
	if w.fb.TakeDirty() {
		w.render()
	}
	w.Update()

	w.presses = w.presses[:0]
	for key := uint16(0); key < 16; key++ {
		if button, ok := w.KeyMap[key]; ok && w.JustPressed(button) {
			w.presses = append(w.presses, uint8(key))
		}
	}
}

func (w *Window) render() {
	pixels := w.fb.Pixels()

	w.imd.Clear()
	w.imd.Color = w.fg
	for y := 0; y < screen.Height; y++ {
		for x := 0; x < screen.Width; x++ {
			if !pixels[y*screen.Width+x] {
				continue
			}
			// pixel has its origin in the bottom left corner
			top := float64(screen.Height - y)
			w.imd.Push(
				pixel.V(float64(x)*w.scale, (top-1)*w.scale),
				pixel.V(float64(x+1)*w.scale, top*w.scale),
			)
			w.imd.Rectangle(0)
		}
	}

	w.Clear(w.bg)
	w.imd.Draw(w.Window)
}
