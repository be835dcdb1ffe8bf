package text

// Packing tells how the values of a scheme are recombined into bytes.
type Packing uint8

const (
	PackDirect  Packing = iota // one value is one byte
	PackNibbles                // two values are one byte, high nibble first
	PackBits                   // eight values are one byte, MSB first
)

/*
 * Scheme maps invisible codepoints to small integer values and back.
 * Implementations must be pure: FromSelector only looks at its argument.
 */
type Scheme interface {
	Name() string
	Size() int
	Packing() Packing
	FromSelector(r rune) (int, bool)
	ToSelector(v int) (rune, bool)
}

// Schemes returns the known schemes in decoding priority order.
func Schemes() []Scheme {
	return []Scheme{
		WideSelectors{},
		NarrowSelectors{},
		ZeroWidthSpaceScheme(),
		ZeroWidthJoinerScheme(),
	}
}

// SchemeByName looks up one of the known schemes.
func SchemeByName(name string) (Scheme, bool) {
	for _, s := range Schemes() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// WideSelectors is the primary scheme: one full byte per mark.
// 0..15 are VS1..VS16, 16..255 live in the variation selectors supplement.
type WideSelectors struct{}

func (WideSelectors) Name() string     { return "32-VS" }
func (WideSelectors) Size() int        { return 256 }
func (WideSelectors) Packing() Packing { return PackDirect }

func (WideSelectors) FromSelector(r rune) (int, bool) {
	if r >= SelectorStart && r <= SelectorEnd {
		return int(r - SelectorStart), true
	}
	if r >= SupplementStart && r <= SupplementEnd {
		return int(r-SupplementStart) + 16, true
	}
	return 0, false
}

func (WideSelectors) ToSelector(v int) (rune, bool) {
	switch {
	case v < 0 || v > 255:
		return 0, false
	case v < 16:
		return SelectorStart + rune(v), true
	default:
		return SupplementStart + rune(v-16), true
	}
}

// NarrowSelectors carries a nibble per mark in VS1..VS16.
type NarrowSelectors struct{}

func (NarrowSelectors) Name() string     { return "16-VS" }
func (NarrowSelectors) Size() int        { return 16 }
func (NarrowSelectors) Packing() Packing { return PackNibbles }

func (NarrowSelectors) FromSelector(r rune) (int, bool) {
	if r >= SelectorStart && r <= SelectorEnd {
		return int(r - SelectorStart), true
	}
	return 0, false
}

func (NarrowSelectors) ToSelector(v int) (rune, bool) {
	if v < 0 || v > 15 {
		return 0, false
	}
	return SelectorStart + rune(v), true
}

// BinaryMarks carries one bit per mark using two zero-width codepoints.
type BinaryMarks struct {
	name string
	One  rune
	Zero rune
}

func ZeroWidthSpaceScheme() BinaryMarks {
	return BinaryMarks{"ZW-SPACE", ZeroWidthSpace, ZeroWidthNonJoiner}
}

func ZeroWidthJoinerScheme() BinaryMarks {
	return BinaryMarks{"ZWJ-BINARY", ZeroWidthJoiner, ZeroWidthNonJoiner}
}

func (b BinaryMarks) Name() string     { return b.name }
func (b BinaryMarks) Size() int        { return 2 }
func (b BinaryMarks) Packing() Packing { return PackBits }

func (b BinaryMarks) FromSelector(r rune) (int, bool) {
	switch r {
	case b.One:
		return 1, true
	case b.Zero:
		return 0, true
	}
	return 0, false
}

func (b BinaryMarks) ToSelector(v int) (rune, bool) {
	switch v {
	case 1:
		return b.One, true
	case 0:
		return b.Zero, true
	}
	return 0, false
}
