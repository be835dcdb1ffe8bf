package text

import (
	"fmt"
)

// Hide spreads raw bytes over the decoy text with the 32-VS scheme.
func Hide(decoy, data []byte) ([]byte, error) {
	str, err := embedMulti(WideSelectors{}, data, string(decoy))
	return []byte(str), err
}

// Reveal returns the raw bytes hidden by Hide.
func Reveal(decoy []byte) ([]byte, error) {
	data := DecodeFromUnprintable(WideSelectors{}, string(decoy))
	if data == nil {
		return nil, fmt.Errorf("there is no encoded data")
	}
	return data, nil
}
