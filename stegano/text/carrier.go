package text

import (
	"errors"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"hiddenmsg/stegano/util"
)

var (
	ErrEmptyCarrier = errors.New("carrier text is empty")
	ErrEmptyMessage = errors.New("nothing to hide")
	ErrNoAnchors    = errors.New("carrier has no character to attach marks to")
	ErrInvalidValue = errors.New("value can't be written with this scheme")
	ErrInvalidMode  = errors.New("invalid encoding mode")
)

// EncodeSingleCarrier hides message after the characters of carrier
// (usually a single emoji or letter) using the 32-VS scheme.
func EncodeSingleCarrier(message, carrier string) (string, error) {
	return EncodeSingleCarrierWith(WideSelectors{}, message, carrier)
}

// EncodeMultiAnchor hides message inside free-form carrier text using the
// 32-VS scheme, spreading the marks over the anchors of the text.
func EncodeMultiAnchor(message, carrierText string) (string, error) {
	return EncodeMultiAnchorWith(WideSelectors{}, message, carrierText)
}

func EncodeSingleCarrierWith(scheme Scheme, message, carrier string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}
	return embedSingle(scheme, util.BytesOf(message), carrier)
}

func EncodeMultiAnchorWith(scheme Scheme, message, carrierText string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}
	return embedMulti(scheme, util.BytesOf(message), carrierText)
}

func embedSingle(scheme Scheme, data []byte, carrier string) (string, error) {
	chars, marks, err := prepare(scheme, data, carrier)
	if err != nil {
		return "", err
	}
	anchors := make([]bool, len(chars))
	for i := range anchors {
		anchors[i] = true
	}
	return spread(chars, anchors, len(chars), marks), nil
}

func embedMulti(scheme Scheme, data []byte, carrierText string) (string, error) {
	chars, marks, err := prepare(scheme, data, carrierText)
	if err != nil {
		return "", err
	}
	anchors, count := Anchors(chars)
	if count == 0 {
		return "", ErrNoAnchors
	}
	return spread(chars, anchors, count, marks), nil
}

// prepare splits the carrier into user-perceived characters and turns the
// data into marks of the scheme. Marks of the scheme already present in
// the carrier are dropped, they would be read back as data.
func prepare(scheme Scheme, data []byte, carrier string) ([]string, []rune, error) {
	if carrier == "" {
		return nil, nil, ErrEmptyCarrier
	}
	chars := Characters(StripSelectors(carrier, scheme))
	if len(chars) == 0 {
		return nil, nil, ErrEmptyCarrier
	}
	if len(data) == 0 {
		return nil, nil, ErrEmptyMessage
	}
	marks, err := Marks(scheme, data)
	if err != nil {
		return nil, nil, err
	}
	return chars, marks, nil
}

// spread writes every character and, after each anchor, up to
// ceil(len(marks) / count) marks until they are exhausted.
func spread(chars []string, anchors []bool, count int, marks []rune) string {
	per := (len(marks) + count - 1) / count
	var sb strings.Builder
	idx := 0
	for i, ch := range chars {
		sb.WriteString(ch)
		if !anchors[i] {
			continue
		}
		for j := 0; j < per && idx < len(marks); j++ {
			sb.WriteRune(marks[idx])
			idx++
		}
	}
	return sb.String()
}

// Characters splits s into grapheme clusters.
func Characters(s string) []string {
	result := []string{}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		result = append(result, gr.Str())
	}
	return result
}

/*
 * Anchors marks the characters which may carry marks: the non-space
 * characters which are not preceded by a space, so that the marks never
 * end up right after a space and widen the gap between words.
 * If nothing qualifies, every non-space character is an anchor.
 */
func Anchors(chars []string) ([]bool, int) {
	anchors := make([]bool, len(chars))
	count := 0
	for i, ch := range chars {
		if !isSpace(ch) && (i == 0 || !isSpace(chars[i-1])) {
			anchors[i] = true
			count++
		}
	}
	if count == 0 {
		for i, ch := range chars {
			if !isSpace(ch) {
				anchors[i] = true
				count++
			}
		}
	}
	return anchors, count
}

func isSpace(ch string) bool {
	for _, r := range ch {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Marks converts data into the codepoints of the scheme.
func Marks(scheme Scheme, data []byte) ([]rune, error) {
	var values []int
	switch scheme.Packing() {
	case PackNibbles:
		values = util.ToNibbles(data)
	case PackBits:
		values = util.ToBits(data)
	default:
		values = make([]int, len(data))
		for i, b := range data {
			values[i] = int(b)
		}
	}
	result := make([]rune, 0, len(values))
	for _, v := range values {
		r, ok := scheme.ToSelector(v)
		if !ok {
			return nil, ErrInvalidValue
		}
		result = append(result, r)
	}
	return result, nil
}
