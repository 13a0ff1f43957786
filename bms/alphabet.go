package bms

import (
	"strings"

	"github.com/pkg/errors"
)

// decodePair reads a two-character value. Characters missing from the
// alphabet count as zero.
func decodePair(alphabet string, first, second rune) int {
	size := len(alphabet)
	index0 := strings.IndexRune(alphabet, first)
	index1 := strings.IndexRune(alphabet, second)

	var val int
	if index0 > 0 {
		val += index0 * size
	}
	if index1 > 0 {
		val += index1
	}
	return val
}

const maxPairValue = len(alphabetBME)*len(alphabetBME) - 1

// encodePair renders v as two base-36 characters.
func encodePair(v int) (string, error) {
	if v < 0 || v > maxPairValue {
		return "", errors.Errorf("value %d does not fit in two base-36 digits", v)
	}
	size := len(alphabetBME)
	return string([]byte{alphabetBME[v/size], alphabetBME[v%size]}), nil
}
