package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWideRoundTrip(t *testing.T) {
	for _, size := range []int{2, 4} {
		for _, s := range []string{"", "Keyball44", "ÄÖÜ", "pad 🎮"} {
			units := encodeWide(s, size)
			assert.Equal(t, uint32(0), units[len(units)-1])
			assert.Equal(t, s, decodeWide(units, size), "size %d", size)
		}
	}
}

func TestDecodeWideStopsAtNUL(t *testing.T) {
	units := []uint32{'a', 'b', 0, 'c'}
	assert.Equal(t, "ab", decodeWide(units, 4))
}

func TestDecodeWideSurrogates(t *testing.T) {
	assert.Equal(t, "🎮", decodeWide([]uint32{0xD83C, 0xDFAE, 0}, 2))
	assert.Equal(t, "�", decodeWide([]uint32{0xD800, 0}, 4))
}
