// Package translate maps free-text queries to structured filter
// specifications via a small fixed set of phrase recognizers.
package translate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
)

var (
	longerThanRe        = regexp.MustCompile(`longer than (\d+)`)
	stringsLongerThanRe = regexp.MustCompile(`strings longer than (\d+)`)
	letterRe            = regexp.MustCompile(`contain(?:ing|s)? the letter (\S)`)
)

// Translate converts a free-text query into a filter spec. Fails only on
// blank input; a query with no recognized phrase yields a valid empty spec.
//
// Recognizers run in a fixed order and each may overwrite a field set by an
// earlier one (last match wins). The ordering is part of the contract.
func Translate(query string) (filter.Spec, error) {
	if strings.TrimSpace(query) == "" {
		return filter.Spec{}, fmt.Errorf("query must not be blank: %w", domain.ErrEmptyQuery)
	}

	q := strings.ToLower(query)
	var spec filter.Spec

	if strings.Contains(q, "palindrom") {
		t := true
		spec.IsPalindrome = &t
	}

	if strings.Contains(q, "single word") || strings.Contains(q, "one word") {
		one := 1
		spec.WordCount = &one
	}

	if m := longerThanRe.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			spec.MinLength = &n
		}
	}

	// More specific variant; overwrites the plain "longer than" match.
	if m := stringsLongerThanRe.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			spec.MinLength = &n
		}
	}

	if m := letterRe.FindStringSubmatch(q); m != nil {
		c := m[1]
		spec.ContainsCharacter = &c
	}

	// Fixed heuristic: "first vowel" always means 'a', not any vowel.
	if strings.Contains(q, "first vowel") {
		a := "a"
		spec.ContainsCharacter = &a
	}

	return spec, nil
}
