package gui

// replacementCodepoint is returned for any byte sequence that is not valid UTF-8.
const replacementCodepoint rune = '?'

// maxCodepoint is the largest value representable in four UTF-8 bytes.
const maxCodepoint rune = 0x10FFFF

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// DecodeNext decodes the codepoint starting at buf[offset].
// It returns the codepoint and the number of bytes it occupies. A malformed
// sequence decodes as '?' with size 1 so callers always make progress.
// At or past the end of buf it returns (0, 0).
func DecodeNext(buf []byte, offset int) (rune, int) {
	if offset < 0 || offset >= len(buf) {
		return 0, 0
	}
	p := buf[offset:]
	b0 := p[0]

	switch {
	case b0&0x80 == 0x00:
		return rune(b0), 1

	case b0&0xE0 == 0xC0:
		if len(p) < 2 || !isContinuation(p[1]) {
			break
		}
		cp := rune(b0&0x1F)<<6 | rune(p[1]&0x3F)
		if cp < 0x80 {
			break
		}
		return cp, 2

	case b0&0xF0 == 0xE0:
		if len(p) < 3 || !isContinuation(p[1]) || !isContinuation(p[2]) {
			break
		}
		cp := rune(b0&0x0F)<<12 | rune(p[1]&0x3F)<<6 | rune(p[2]&0x3F)
		if cp < 0x800 {
			break
		}
		return cp, 3

	case b0&0xF8 == 0xF0:
		if len(p) < 4 || !isContinuation(p[1]) || !isContinuation(p[2]) || !isContinuation(p[3]) {
			break
		}
		cp := rune(b0&0x07)<<18 | rune(p[1]&0x3F)<<12 | rune(p[2]&0x3F)<<6 | rune(p[3]&0x3F)
		if cp < 0x10000 || cp > maxCodepoint {
			break
		}
		return cp, 4
	}

	return replacementCodepoint, 1
}

// DecodePrev returns the byte size of the codepoint that ends right before
// buf[offset]. It scans back over at most three continuation bytes; if the
// bytes found do not form one valid sequence it reports 1.
func DecodePrev(buf []byte, offset int) int {
	if offset > len(buf) {
		offset = len(buf)
	}
	if offset <= 0 {
		return 0
	}

	start := offset - 1
	for start > 0 && offset-start < 4 && isContinuation(buf[start]) {
		start--
	}

	if _, size := DecodeNext(buf[:offset], start); size == offset-start {
		return size
	}
	return 1
}

// Encode returns the UTF-8 bytes for a codepoint and how many of them are used.
// Values outside [0, 0x10FFFF] encode as '?'.
func Encode(cp rune) ([4]byte, int) {
	var out [4]byte

	switch {
	case cp < 0 || cp > maxCodepoint:
		out[0] = byte(replacementCodepoint)
		return out, 1
	case cp <= 0x7F:
		out[0] = byte(cp)
		return out, 1
	case cp <= 0x7FF:
		out[0] = byte(0xC0 | (cp>>6)&0x1F)
		out[1] = byte(0x80 | cp&0x3F)
		return out, 2
	case cp <= 0xFFFF:
		out[0] = byte(0xE0 | (cp>>12)&0x0F)
		out[1] = byte(0x80 | (cp>>6)&0x3F)
		out[2] = byte(0x80 | cp&0x3F)
		return out, 3
	default:
		out[0] = byte(0xF0 | (cp>>18)&0x07)
		out[1] = byte(0x80 | (cp>>12)&0x3F)
		out[2] = byte(0x80 | (cp>>6)&0x3F)
		out[3] = byte(0x80 | cp&0x3F)
		return out, 4
	}
}

// EncodedLen returns how many bytes Encode produces for cp.
func EncodedLen(cp rune) int {
	_, n := Encode(cp)
	return n
}

// CodepointCount counts codepoints in a NUL-terminated (or full) buffer.
func CodepointCount(buf []byte) int {
	n := 0
	for i := 0; i < len(buf) && buf[i] != 0; {
		_, size := DecodeNext(buf, i)
		i += size
		n++
	}
	return n
}
