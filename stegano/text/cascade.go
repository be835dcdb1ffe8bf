package text

import (
	"strings"

	"hiddenmsg/stegano/util"
)

/*
 * Decoder finds a hidden message in text when the scheme used to write it
 * is not known. It keeps no state between calls and can be shared freely.
 */
type Decoder struct {
	// candidates are accepted when their printable ratio is above this
	Threshold float64
	// minimum amount of candidate marks before auto-learn is tried
	AutoLearnMin int
	// whether to infer unknown schemes at all
	AutoLearn bool
}

func DefaultDecoder() Decoder {
	return Decoder{
		Threshold:    DefaultThreshold,
		AutoLearnMin: DefaultAutoLearnMin,
		AutoLearn:    true,
	}
}

// Decode runs the full cascade with the default decoder.
func Decode(s string) (Result, bool) {
	return DefaultDecoder().Decode(s)
}

// Cascade tries the known schemes on candidate marks, then auto-learn.
func Cascade(cps []rune) (Result, bool) {
	return DefaultDecoder().Cascade(cps)
}

// AutoLearn infers an unknown scheme with the default decoder.
func AutoLearn(cps []rune) (Result, bool) {
	return DefaultDecoder().Learn(cps)
}

func (d Decoder) Decode(s string) (Result, bool) {
	if strings.TrimSpace(s) == "" {
		return Result{}, false
	}

	if res, ok := decodeWide(s); ok {
		return res, true
	}
	if trimmed := strings.TrimSpace(s); trimmed != s {
		if res, ok := decodeWide(trimmed); ok {
			return res, true
		}
	}

	cps := Candidates(s)
	if len(cps) == 0 {
		return Result{}, false
	}
	return d.Cascade(cps)
}

// decodeWide reads 32-VS marks, first from the whole text as one carrier,
// then segment by segment. No plausibility check here: 32-VS marks don't
// show up by accident except for a stray emoji presentation selector.
func decodeWide(s string) (Result, bool) {
	scheme := WideSelectors{}
	if decoded := util.TextOf(util.ToBytes(Extract(s, scheme))); decoded != "" {
		return Result{Text: decoded, Scheme: scheme.Name()}, true
	}
	if decoded := util.TextOf(util.ToBytes(ExtractSegments(s, scheme))); decoded != "" {
		return Result{Text: decoded, Scheme: scheme.Name()}, true
	}
	return Result{}, false
}

func (d Decoder) Cascade(cps []rune) (Result, bool) {
	if len(cps) == 0 {
		return Result{}, false
	}
	for _, scheme := range Schemes() {
		values, ok := pureValues(scheme, cps)
		if !ok || len(values) == 0 {
			continue
		}
		data, ok := pack(scheme, values)
		if !ok {
			continue
		}
		if decoded := util.TextOf(data); decoded != "" && LikelyText(decoded, d.Threshold) {
			return Result{Text: decoded, Scheme: scheme.Name()}, true
		}
	}
	if d.AutoLearn {
		return d.Learn(cps)
	}
	return Result{}, false
}

// pureValues maps cps to values of the scheme. A candidate mark which the
// scheme doesn't know rejects the scheme as a whole.
func pureValues(scheme Scheme, cps []rune) ([]int, bool) {
	values := make([]int, 0, len(cps))
	for _, r := range cps {
		if v, ok := scheme.FromSelector(r); ok {
			values = append(values, v)
		} else if r >= MarkThreshold {
			return nil, false
		}
	}
	return values, true
}

func pack(scheme Scheme, values []int) ([]byte, bool) {
	switch scheme.Packing() {
	case PackNibbles:
		return util.PackNibbles(values)
	case PackBits:
		if len(values) < 8 {
			return nil, false
		}
		return util.PackBits(values), true
	default:
		return util.ToBytes(values), true
	}
}
