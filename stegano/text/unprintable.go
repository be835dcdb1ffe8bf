package text

import (
	"strings"
)

/*
 * Writes data as marks of any known scheme, placed before the decoy text
 * (PrefixMode), after it (SuffixMode) or spread over its anchors
 * (EmbedMode). Binary schemes are only recovered by Decode when the decoy
 * has no scalar values at or above U+200B (emoji, CJK...), every such
 * scalar must belong to the scheme.
 */
func EncodeWithUnprintable(scheme Scheme, mode uint8, data []byte, s string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyMessage
	}
	switch mode {
	case PrefixMode, SuffixMode:
		marks, err := Marks(scheme, data)
		if err != nil {
			return "", err
		}
		encoded := string(marks)
		clean := StripSelectors(s, scheme)
		if mode == PrefixMode {
			return encoded + clean, nil
		}
		return clean + encoded, nil
	case EmbedMode:
		return embedMulti(scheme, data, s)
	default:
		return "", ErrInvalidMode
	}
}

// DecodeFromUnprintable reads data written with the scheme back, without
// any plausibility check. Returns nil if s holds no marks of the scheme.
func DecodeFromUnprintable(scheme Scheme, s string) []byte {
	values := Extract(s, scheme)
	if len(values) == 0 {
		return nil
	}
	data, ok := pack(scheme, values)
	if !ok {
		return nil
	}
	return data
}

// ParseMode converts a placement name into one of the modes.
func ParseMode(name string) (uint8, error) {
	switch strings.ToLower(name) {
	case "prefix":
		return PrefixMode, nil
	case "suffix":
		return SuffixMode, nil
	case "", "embed":
		return EmbedMode, nil
	}
	return 0, ErrInvalidMode
}
