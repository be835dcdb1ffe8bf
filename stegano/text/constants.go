package text

const (
	// placement of marks for EncodeWithUnprintable
	PrefixMode = uint8(0)
	SuffixMode = uint8(1)
	EmbedMode  = uint8(2)

	// variation selectors VS1..VS16
	SelectorStart = rune(0xFE00)
	SelectorEnd   = rune(0xFE0F)

	// variation selectors supplement VS17..VS256
	SupplementStart = rune(0xE0100)
	SupplementEnd   = rune(0xE01EF)

	ZeroWidthSpace     = rune(0x200B)
	ZeroWidthNonJoiner = rune(0x200C)
	ZeroWidthJoiner    = rune(0x200D)

	// every scalar value at or above this one is a candidate invisible mark
	MarkThreshold = ZeroWidthSpace

	DefaultThreshold    = 0.75
	DefaultAutoLearnMin = 16

	// bounds of the alphabet auto-learn agrees to infer
	minLearnedAlphabet = 2
	maxLearnedAlphabet = 16

	AutoLearnedScheme = "auto-learned"
)
