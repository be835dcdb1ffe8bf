package util

/*
 * transform data from/to binary form.
 * values are small integers extracted from invisible marks, so they are
 * kept as []int until they are packed back into bytes.
 */

// ToBin returns the 8 bits of x, most significant bit first.
func ToBin(x byte) []byte {
	result := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		result[i] = x % 2
		x /= 2
	}
	return result
}

// FromBin is the inverse of ToBin. Missing trailing bits are zeros.
func FromBin(x []byte) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		result <<= 1
		if i < len(x) {
			result |= x[i] & 1
		}
	}
	return result
}

// ToBits splits every byte into 8 values (0 or 1), MSB first.
func ToBits(data []byte) []int {
	result := make([]int, 0, len(data)*8)
	for _, b := range data {
		for _, bit := range ToBin(b) {
			result = append(result, int(bit))
		}
	}
	return result
}

// PackBits packs every 8 consecutive values into one byte, MSB first.
// the last group may be shorter than 8 values, it is left-aligned then.
func PackBits(values []int) []byte {
	result := make([]byte, 0, (len(values)+7)/8)
	group := make([]byte, 0, 8)
	for i := 0; i < len(values); i += 8 {
		group = group[:0]
		for j := i; j < i+8 && j < len(values); j++ {
			group = append(group, byte(values[j]&1))
		}
		result = append(result, FromBin(group))
	}
	return result
}

// ToNibbles splits every byte into two 4-bit values, high nibble first.
func ToNibbles(data []byte) []int {
	result := make([]int, 0, len(data)*2)
	for _, b := range data {
		result = append(result, int(b>>4), int(b&0x0F))
	}
	return result
}

// PackNibbles recombines pairs of 4-bit values into bytes.
// returns false if the amount of values is odd.
func PackNibbles(values []int) ([]byte, bool) {
	if len(values)%2 != 0 {
		return nil, false
	}
	result := make([]byte, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		result = append(result, byte(values[i]&0x0F)<<4|byte(values[i+1]&0x0F))
	}
	return result, true
}

// ToBytes keeps the values as they are, truncated to 8 bits.
func ToBytes(values []int) []byte {
	result := make([]byte, len(values))
	for i, v := range values {
		result[i] = byte(v)
	}
	return result
}
