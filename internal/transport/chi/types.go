package chi

import (
	"time"

	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	"github.com/kailas-cloud/strdex/internal/domain/record"
)

// errorCode identifies the failure class in error responses.
type errorCode string

const (
	codeBadRequest    errorCode = "bad_request"
	codeInvalidInput  errorCode = "invalid_input"
	codeInvalidFilter errorCode = "invalid_filter"
	codeEmptyQuery    errorCode = "empty_query"
	codeNotFound      errorCode = "string_not_found"
	codeAlreadyExists errorCode = "string_already_exists"
	codeInternalError errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type createStringRequest struct {
	Value *string `json:"value"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type propertiesResponse struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"isPalindrome"`
	UniqueCharacters   int            `json:"uniqueCharacters"`
	WordCount          int            `json:"wordCount"`
	Hash               string         `json:"hash"`
	CharacterFrequency map[string]int `json:"characterFrequency"`
}

type recordResponse struct {
	ID         string             `json:"id"`
	Value      string             `json:"value"`
	Properties propertiesResponse `json:"properties"`
	CreatedAt  time.Time          `json:"createdAt"`
}

type listResponse struct {
	Items  []recordResponse `json:"items"`
	Total  int              `json:"total"`
	Offset int              `json:"offset"`
	Limit  int              `json:"limit"`
}

type queryResponse struct {
	Filters filter.Spec      `json:"filters"`
	Items   []recordResponse `json:"items"`
	Total   int              `json:"total"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func recordToResponse(r record.Record) recordResponse {
	p := r.Properties()
	return recordResponse{
		ID:    r.ID(),
		Value: r.Value(),
		Properties: propertiesResponse{
			Length:             p.Length,
			IsPalindrome:       p.IsPalindrome,
			UniqueCharacters:   p.UniqueCharacters,
			WordCount:          p.WordCount,
			Hash:               r.ID(),
			CharacterFrequency: p.CharacterFrequency,
		},
		CreatedAt: time.UnixMilli(r.CreatedAt()).UTC(),
	}
}

func recordsToResponses(records []record.Record) []recordResponse {
	items := make([]recordResponse, len(records))
	for i, r := range records {
		items[i] = recordToResponse(r)
	}
	return items
}
