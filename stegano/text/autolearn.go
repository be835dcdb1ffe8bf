package text

import (
	"fmt"

	"hiddenmsg/stegano/util"
)

/*
 * Learn treats the candidate marks as an unknown substitution alphabet.
 * Every distinct mark gets the index of its first appearance, then the
 * indices are read as bytes directly and, for two-mark alphabets, as bits.
 * Only alphabets of 2 to 16 distinct marks with at least AutoLearnMin
 * marks in total are tried.
 */
func (d Decoder) Learn(cps []rune) (Result, bool) {
	if len(cps) == 0 || len(cps) < d.AutoLearnMin {
		return Result{}, false
	}

	alphabet := map[rune]int{}
	for _, r := range cps {
		if _, ok := alphabet[r]; !ok {
			alphabet[r] = len(alphabet)
		}
	}
	size := len(alphabet)
	if size < minLearnedAlphabet || size > maxLearnedAlphabet {
		return Result{}, false
	}

	values := make([]int, len(cps))
	for i, r := range cps {
		values[i] = alphabet[r]
	}

	attempts := [][]byte{util.ToBytes(values)}
	if size == 2 && len(values) >= 8 {
		attempts = append(attempts, util.PackBits(values))
	}

	for _, attempt := range attempts {
		decoded := util.TextOf(attempt)
		if decoded != "" && LikelyText(decoded, d.Threshold) {
			return Result{
				Text:   decoded,
				Scheme: AutoLearnedScheme,
				Detail: fmt.Sprintf("%d unique chars", size),
			}, true
		}
	}
	return Result{}, false
}
