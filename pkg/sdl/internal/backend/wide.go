package backend

import (
	"unicode/utf16"
	"unicode/utf8"
)

// decodeWide converts NUL-terminated wchar_t code units to a Go string.
// Two-byte units are treated as UTF-16, wider ones as UTF-32.
func decodeWide(units []uint32, unitSize int) string {
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}
	if unitSize == 2 {
		u16 := make([]uint16, len(units))
		for i, u := range units {
			u16[i] = uint16(u)
		}
		return string(utf16.Decode(u16))
	}
	buf := make([]byte, 0, len(units))
	for _, u := range units {
		r := rune(u)
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf)
}

// encodeWide is the inverse of decodeWide; the result is NUL-terminated.
func encodeWide(s string, unitSize int) []uint32 {
	var out []uint32
	if unitSize == 2 {
		for _, u := range utf16.Encode([]rune(s)) {
			out = append(out, uint32(u))
		}
	} else {
		for _, r := range s {
			out = append(out, uint32(r))
		}
	}
	return append(out, 0)
}
