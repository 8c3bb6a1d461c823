// Package filter defines the structured filter specification and its
// evaluation over stored records.
package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/record"
)

// DefaultLimit is the page size applied when the caller passes none.
const DefaultLimit = 100

// Spec is a set of optional, independently evaluated predicates combined by
// logical AND. A zero Spec matches every record.
type Spec struct {
	IsPalindrome      *bool   `json:"isPalindrome,omitempty"`
	MinLength         *int    `json:"minLength,omitempty"`
	MaxLength         *int    `json:"maxLength,omitempty"`
	WordCount         *int    `json:"wordCount,omitempty"`
	ContainsCharacter *string `json:"containsCharacter,omitempty"`
}

// IsEmpty reports whether the spec has no predicates set.
func (s Spec) IsEmpty() bool {
	return s.IsPalindrome == nil && s.MinLength == nil && s.MaxLength == nil &&
		s.WordCount == nil && s.ContainsCharacter == nil
}

// ParseValues builds a Spec from URL query parameters. Unrecognized keys are
// ignored (forward-compatible). Malformed values for recognized keys fail
// with domain.ErrInvalidFilter.
func ParseValues(values url.Values) (Spec, error) {
	var spec Spec

	if v := values.Get("isPalindrome"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Spec{}, fmt.Errorf("isPalindrome must be a boolean, got %q: %w", v, domain.ErrInvalidFilter)
		}
		spec.IsPalindrome = &b
	}

	for _, p := range []struct {
		key string
		dst **int
	}{
		{"minLength", &spec.MinLength},
		{"maxLength", &spec.MaxLength},
		{"wordCount", &spec.WordCount},
	} {
		v := values.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Spec{}, fmt.Errorf("%s must be an integer, got %q: %w", p.key, v, domain.ErrInvalidFilter)
		}
		if n < 0 {
			return Spec{}, fmt.Errorf("%s must be non-negative, got %d: %w", p.key, n, domain.ErrInvalidFilter)
		}
		*p.dst = &n
	}

	if v := values.Get("containsCharacter"); v != "" {
		if utf8.RuneCountInString(v) != 1 {
			return Spec{}, fmt.Errorf(
				"containsCharacter must be a single character, got %q: %w", v, domain.ErrInvalidFilter,
			)
		}
		spec.ContainsCharacter = &v
	}

	return spec, nil
}

// Matches reports whether a record satisfies every predicate set on the spec.
func (s Spec) Matches(r record.Record) bool {
	p := r.Properties()

	if s.IsPalindrome != nil && p.IsPalindrome != *s.IsPalindrome {
		return false
	}
	if s.MinLength != nil && p.Length < *s.MinLength {
		return false
	}
	if s.MaxLength != nil && p.Length > *s.MaxLength {
		return false
	}
	if s.WordCount != nil && p.WordCount != *s.WordCount {
		return false
	}
	if s.ContainsCharacter != nil {
		if _, ok := p.CharacterFrequency[*s.ContainsCharacter]; !ok {
			return false
		}
	}
	return true
}

// Evaluate returns the subset of records matching the spec, preserving the
// input order.
func Evaluate(records []record.Record, spec Spec) []record.Record {
	matches := make([]record.Record, 0, len(records))
	for _, r := range records {
		if spec.Matches(r) {
			matches = append(matches, r)
		}
	}
	return matches
}

// Page slices matches by offset and limit, reporting the total match count
// before slicing. Negative or zero limit falls back to DefaultLimit; bounds
// beyond the match count clamp to an empty page, never an error.
func Page(matches []record.Record, offset, limit int) ([]record.Record, int) {
	total := len(matches)

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	if offset >= total {
		return []record.Record{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matches[offset:end], total
}
