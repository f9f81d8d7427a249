package window

import (
	"testing"

	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/assert"
)

func TestKeyMapIsPerWindow(t *testing.T) {
	keys := defaultKeyMap()
	assert.Equal(t, 16, len(keys))

	keys[0x1] = pixelgl.KeyP
	delete(keys, 0xF)

	assert.Equal(t, pixelgl.Key1, DefaultKeyMap[0x1])
	assert.Equal(t, 16, len(DefaultKeyMap))
	assert.Equal(t, pixelgl.Key1, defaultKeyMap()[0x1])
}
