// Package identity derives stable numeric identifiers from human-readable names.
//
// The identifier is SHA-256 of the normalised name reduced modulo 10^18, so it always fits in an
// int64. Two different names may collide with a probability bounded by that space; uniqueness is
// still enforced by the store's name constraints.
package identity

import (
	"crypto/sha256"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const idDigits = 18

var modulus = new(big.Int).Exp(big.NewInt(10), big.NewInt(idDigits), nil) //nolint:mnd // 10^18

// Normalize keeps letters and whitespace only, joins the words with underscores and lower-cases
// the result.
func Normalize(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			return r
		}

		return -1
	}, norm.NFC.String(raw))

	return cases.Lower(language.Und).String(strings.Join(strings.Fields(cleaned), "_"))
}

func Valid(raw string) bool {
	return Normalize(raw) != ""
}

func Derive(raw string) int64 {
	digest := sha256.Sum256([]byte(Normalize(raw)))

	value := new(big.Int).SetBytes(digest[:])

	return value.Mod(value, modulus).Int64()
}
