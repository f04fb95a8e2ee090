package identity_test

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertofierimonte/avocados-and-recipes/pkg/identity"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "single word", raw: "Tomato", expected: "tomato"},
		{name: "words", raw: "Tomato Soup", expected: "tomato_soup"},
		{name: "whitespace runs", raw: "  Tomato \t\n Soup  ", expected: "tomato_soup"},
		{name: "punctuation", raw: "Mum's Tomato-Soup (v2)!", expected: "mums_tomatosoup_v"},
		{name: "digits dropped", raw: "00 Flour", expected: "flour"},
		{name: "accents kept", raw: "Crème Brûlée", expected: "crème_brûlée"},
		{name: "decomposed accents compose", raw: "Cre\u0300me", expected: "crème"},
		{name: "empty", raw: "", expected: ""},
		{name: "punctuation only", raw: "?!-- 42", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, identity.Normalize(test.raw))
		})
	}
}

func TestDerive_IsDeterministic(t *testing.T) {
	assert.Equal(t, identity.Derive("Tomato Soup"), identity.Derive("Tomato Soup"))
}

func TestDerive_EquivalentNamesShareID(t *testing.T) {
	expected := identity.Derive("Tomato Soup")

	for _, name := range []string{"tomato soup", "TOMATO   SOUP", " Tomato\tSoup ", "Tomato, Soup!", "tomato_soup"} {
		assert.Equal(t, expected, identity.Derive(name), name)
	}
}

func TestDerive_DifferentNamesDiffer(t *testing.T) {
	assert.NotEqual(t, identity.Derive("Tomato Soup"), identity.Derive("Onion Soup"))
	assert.NotEqual(t, identity.Derive("Salt"), identity.Derive("Pepper"))
}

func TestDerive_MatchesDigestModulo(t *testing.T) {
	digest := sha256.Sum256([]byte("tomato_soup"))
	expected := new(big.Int).SetBytes(digest[:])
	expected.Mod(expected, big.NewInt(1_000_000_000_000_000_000))

	assert.Equal(t, expected.Int64(), identity.Derive("Tomato Soup"))
}

func TestDerive_StaysInRange(t *testing.T) {
	for _, name := range []string{"", "a", "Salt", "Extra Virgin Olive Oil", "Crème Brûlée"} {
		id := identity.Derive(name)
		require.GreaterOrEqual(t, id, int64(0))
		require.Less(t, id, int64(1_000_000_000_000_000_000))
	}
}

func TestValid(t *testing.T) {
	assert.True(t, identity.Valid("Salt"))
	assert.False(t, identity.Valid(""))
	assert.False(t, identity.Valid("  !! 12 "))
}
