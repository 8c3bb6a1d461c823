// Package analysis computes the derived properties of a stored string.
package analysis

import (
	"strings"
	"unicode"
)

// Properties holds everything derived from a string's value. All fields are
// computed once at creation and never recomputed or mutated afterwards.
type Properties struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"isPalindrome"`
	UniqueCharacters   int            `json:"uniqueCharacters"`
	WordCount          int            `json:"wordCount"`
	CharacterFrequency map[string]int `json:"characterFrequency"`
}

// Analyze computes the property set for a value. Pure and total: any string is
// accepted, including empty. All counting operates on Unicode code points, not
// on the encoded byte representation.
//
// Palindrome checking normalizes case and strips whitespace; uniqueCharacters
// and characterFrequency count over the raw value. The asymmetry is part of
// the contract.
func Analyze(value string) Properties {
	runes := []rune(value)

	freq := make(map[string]int, len(runes))
	for _, r := range runes {
		freq[string(r)]++
	}

	return Properties{
		Length:             len(runes),
		IsPalindrome:       isPalindrome(runes),
		UniqueCharacters:   len(freq),
		WordCount:          len(strings.Fields(value)),
		CharacterFrequency: freq,
	}
}

// isPalindrome reports whether the value, lower-cased and with all whitespace
// removed, reads identically forward and backward. The empty string is a
// palindrome.
func isPalindrome(runes []rune) bool {
	normalized := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		normalized = append(normalized, unicode.ToLower(r))
	}

	for i, j := 0, len(normalized)-1; i < j; i, j = i+1, j-1 {
		if normalized[i] != normalized[j] {
			return false
		}
	}
	return true
}
