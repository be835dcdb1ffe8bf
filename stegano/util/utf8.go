package util

import (
	"unicode/utf16"
)

/*
 * a small UTF-8 transcoder working on raw byte sequences.
 * the bytes usually come from invisible marks found in untrusted text,
 * so decoding is best effort: it never fails, it stops at a truncated
 * sequence and skips invalid leading bytes.
 */

const (
	tx = 0x80 // 1000 0000
	t2 = 0xC0 // 1100 0000
	t3 = 0xE0 // 1110 0000
	t4 = 0xF0 // 1111 0000
	t5 = 0xF8 // 1111 1000

	maskx = 0x3F // 0011 1111
	mask2 = 0x1F // 0001 1111
	mask3 = 0x0F // 0000 1111
	mask4 = 0x07 // 0000 0111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1

	surrSelf = 0x10000
	surr1    = 0xD800
	surr2    = 0xDC00
)

// BytesOf converts a text message into its UTF-8 byte sequence.
func BytesOf(s string) []byte {
	result := make([]byte, 0, len(s))
	for _, r := range s {
		switch i := uint32(r); {
		case i <= rune1Max:
			result = append(result, byte(r))
		case i <= rune2Max:
			result = append(result,
				t2|byte(r>>6),
				tx|byte(r)&maskx)
		case i <= rune3Max:
			result = append(result,
				t3|byte(r>>12),
				tx|byte(r>>6)&maskx,
				tx|byte(r)&maskx)
		default:
			result = append(result,
				t4|byte(r>>18),
				tx|byte(r>>12)&maskx,
				tx|byte(r>>6)&maskx,
				tx|byte(r)&maskx)
		}
	}
	return result
}

// UnitsOf decodes a byte sequence into 16-bit code units.
// scalar values above 0xFFFF are written as surrogate pairs.
func UnitsOf(data []byte) []uint16 {
	result := make([]uint16, 0, len(data))
	i := 0
	for i < len(data) {
		b1 := data[i]
		i++

		switch {
		case b1 < tx:
			result = append(result, uint16(b1))
		case b1&t3 == t2:
			if i >= len(data) {
				return result
			}
			r := rune(b1&mask2)<<6 | rune(data[i]&maskx)
			i++
			result = append(result, uint16(r))
		case b1&t4 == t3:
			if i+1 >= len(data) {
				return result
			}
			r := rune(b1&mask3)<<12 | rune(data[i]&maskx)<<6 | rune(data[i+1]&maskx)
			i += 2
			result = append(result, uint16(r))
		case b1&t5 == t4:
			if i+2 >= len(data) {
				return result
			}
			r := rune(b1&mask4)<<18 | rune(data[i]&maskx)<<12 |
				rune(data[i+1]&maskx)<<6 | rune(data[i+2]&maskx)
			i += 3
			if r > rune3Max {
				r -= surrSelf
				result = append(result, uint16(surr1+(r>>10)), uint16(surr2+(r&0x3FF)))
			} else {
				result = append(result, uint16(r))
			}
		default:
			// invalid leading byte, skip it
		}
	}
	return result
}

// TextOf decodes a byte sequence into text. Adjacent surrogate units are
// recombined, unpaired ones become U+FFFD.
func TextOf(data []byte) string {
	return string(utf16.Decode(UnitsOf(data)))
}
