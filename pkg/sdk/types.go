package strdex

import "time"

// Properties are the structural characteristics computed for a string.
type Properties struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"isPalindrome"`
	UniqueCharacters   int            `json:"uniqueCharacters"`
	WordCount          int            `json:"wordCount"`
	Hash               string         `json:"hash"`
	CharacterFrequency map[string]int `json:"characterFrequency"`
}

// Record is a stored string with its computed properties.
type Record struct {
	ID         string     `json:"id"`
	Value      string     `json:"value"`
	Properties Properties `json:"properties"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Filters is the structured filter specification echoed by Query
// and accepted by ListStrings.
type Filters struct {
	IsPalindrome      *bool   `json:"isPalindrome,omitempty"`
	MinLength         *int    `json:"minLength,omitempty"`
	MaxLength         *int    `json:"maxLength,omitempty"`
	WordCount         *int    `json:"wordCount,omitempty"`
	ContainsCharacter *string `json:"containsCharacter,omitempty"`
}

// ListOptions controls filtering and pagination for ListStrings.
// Nil filter fields are not sent; zero Offset and Limit use server defaults.
type ListOptions struct {
	Filters
	Offset int
	Limit  int
}

// ListResult is one page of records plus the total match count.
type ListResult struct {
	Items  []Record `json:"items"`
	Total  int      `json:"total"`
	Offset int      `json:"offset"`
	Limit  int      `json:"limit"`
}

// QueryResult is the outcome of a natural-language query: the filters
// the query was translated into and the first page of matching records.
type QueryResult struct {
	Filters Filters  `json:"filters"`
	Items   []Record `json:"items"`
	Total   int      `json:"total"`
}

// Health is the service health report.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Bool returns a pointer to b, for use in filter fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for use in filter fields.
func Int(n int) *int { return &n }

// String returns a pointer to s, for use in filter fields.
func String(s string) *string { return &s }
