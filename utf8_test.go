package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	classes := []struct {
		name string
		cps  []rune
		size int
	}{
		{"one byte", []rune{0x00, 'A', 0x7F}, 1},
		{"two bytes", []rune{0x80, 0xE9, 0x7FF}, 2},
		{"three bytes", []rune{0x800, 0x20AC, 0xFFFF}, 3},
		{"four bytes", []rune{0x10000, 0x1F600, 0x10FFFF}, 4},
	}
	for _, c := range classes {
		t.Run(c.name, func(t *testing.T) {
			for _, cp := range c.cps {
				enc, n := Encode(cp)
				require.Equal(t, c.size, n, "encoded size of %U", cp)
				got, size := DecodeNext(enc[:n], 0)
				assert.Equal(t, cp, got)
				assert.Equal(t, c.size, size)
				assert.Equal(t, c.size, DecodePrev(enc[:n], n))
			}
		})
	}
}

func TestDecodeNextMalformed(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"lone continuation", []byte{0x80}},
		{"truncated two byte", []byte{0xC3}},
		{"bad continuation", []byte{0xE2, 0x41, 0x41}},
		{"overlong", []byte{0xC0, 0xAF}},
		{"above max", []byte{0xF4, 0x90, 0x80, 0x80}},
		{"invalid lead", []byte{0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, size := DecodeNext(tt.buf, 0)
			assert.Equal(t, '?', cp)
			assert.Equal(t, 1, size)
		})
	}
}

func TestDecodeNextAlwaysAdvances(t *testing.T) {
	buf := []byte{0xE2, 0x82, 'x', 0xF0, 0x9F, 0x98, 0x80, 0xFF, 'y'}
	var got []rune
	for i := 0; i < len(buf); {
		cp, size := DecodeNext(buf, i)
		require.Positive(t, size)
		got = append(got, cp)
		i += size
	}
	assert.Equal(t, []rune{'?', '?', 'x', 0x1F600, '?', 'y'}, got)
}

func TestDecodeNextOutOfRange(t *testing.T) {
	cp, size := DecodeNext([]byte("a"), 1)
	assert.Equal(t, rune(0), cp)
	assert.Equal(t, 0, size)
}

func TestDecodePrev(t *testing.T) {
	buf := []byte("aé€😀")
	assert.Equal(t, 4, DecodePrev(buf, len(buf)))
	assert.Equal(t, 3, DecodePrev(buf, len(buf)-4))
	assert.Equal(t, 2, DecodePrev(buf, 3))
	assert.Equal(t, 1, DecodePrev(buf, 1))
	assert.Equal(t, 0, DecodePrev(buf, 0))

	// A stray continuation byte is removed on its own.
	assert.Equal(t, 1, DecodePrev([]byte{'a', 0x80}, 2))
}

func TestEncodeOutOfRange(t *testing.T) {
	for _, cp := range []rune{-1, 0x110000} {
		enc, n := Encode(cp)
		assert.Equal(t, 1, n)
		assert.Equal(t, byte('?'), enc[0])
	}
}

func TestCodepointCount(t *testing.T) {
	assert.Equal(t, 4, CodepointCount([]byte("aé€😀")))
	assert.Equal(t, 2, CodepointCount([]byte("ab\x00cd")))
	assert.Equal(t, 0, CodepointCount(nil))
}
