package screen

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawSprite(t *testing.T) {
	fb := New()
	sprite := []byte{0b1010_0000, 0b0101_0000}

	collision := fb.DrawSprite(10, 5, sprite)
	assert.False(t, collision)
	assert.True(t, fb.Pixel(10, 5))
	assert.False(t, fb.Pixel(11, 5))
	assert.True(t, fb.Pixel(12, 5))
	assert.True(t, fb.Pixel(11, 6))
	assert.True(t, fb.Pixel(13, 6))

	// drawing the same sprite again erases it
	collision = fb.DrawSprite(10, 5, sprite)
	assert.True(t, collision)
	assert.Equal(t, [Width * Height]bool{}, fb.Pixels())
}

func TestDrawSpriteNoCollisionOnDisjointPixels(t *testing.T) {
	fb := New()
	assert.False(t, fb.DrawSprite(0, 0, []byte{0xF0}))
	assert.False(t, fb.DrawSprite(0, 0, []byte{0x0F}))
	for x := 0; x < 8; x++ {
		assert.True(t, fb.Pixel(x, 0))
	}
}

func TestDrawSpriteWrapsAround(t *testing.T) {
	fb := New()
	fb.DrawSprite(Width-2, Height-1, []byte{0xF0, 0x80})

	assert.True(t, fb.Pixel(Width-2, Height-1))
	assert.True(t, fb.Pixel(Width-1, Height-1))
	assert.True(t, fb.Pixel(0, Height-1))
	assert.True(t, fb.Pixel(1, Height-1))
	assert.True(t, fb.Pixel(Width-2, 0))
	assert.False(t, fb.Pixel(2, Height-1))
}

func TestClearAndDirty(t *testing.T) {
	fb := New()
	assert.True(t, fb.TakeDirty())
	assert.False(t, fb.TakeDirty())

	fb.DrawSprite(0, 0, nil)
	assert.False(t, fb.TakeDirty())

	fb.DrawSprite(3, 3, []byte{0x80})
	assert.True(t, fb.TakeDirty())

	fb.Clear()
	assert.True(t, fb.TakeDirty())
	assert.False(t, fb.Pixel(3, 3))

	width, height := fb.Size()
	assert.Equal(t, Width, width)
	assert.Equal(t, Height, height)
}
