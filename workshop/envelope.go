package workshop

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Steam wraps payloads in one of three envelopes depending on the interface.
// Endpoints pick the matching unwrap function explicitly.

// directEnvelope is {"response": T}; the payload is always present.
type directEnvelope[T any] struct {
	Response *T `json:"response"`
}

// optionalEnvelope is {"response": T?, "total": n}; total is required, an absent
// response or a zero total means no results.
type optionalEnvelope[T any] struct {
	Response *T   `json:"response"`
	Total    *int `json:"total"`
}

// countedEnvelope is {"response": {"resultcount": n, ...}}; zero count means no results.
type countedEnvelope struct {
	Response *collectionResponse `json:"response"`
}

type collectionResponse struct {
	Result            *int                `json:"result"`
	ResultCount       *int                `json:"resultcount"`
	CollectionDetails []collectionDetails `json:"collectiondetails"`
}

type collectionDetails struct {
	PublishedFileID string            `json:"publishedfileid"`
	Result          int               `json:"result"`
	Children        []CollectionChild `json:"children"`
}

var (
	errMissingResponse          = errors.New(`missing "response" object`)
	errMissingField             = errors.New("missing required field")
	errMissingCollectionDetails = errors.New("resultcount is non-zero but collectiondetails is empty")
)

// payload is implemented by envelope payloads that have required fields.
// A nil slice after decoding means the key was absent or null.
type payload interface {
	validate() error
}

func missingField(name string) error {
	return fmt.Errorf("%w %q", errMissingField, name)
}

func validatePayload[T any](p *T) error {
	if v, ok := any(p).(payload); ok {
		return v.validate()
	}
	return nil
}

// unwrapDirect decodes {"response": T} and returns T.
func unwrapDirect[T any](endpoint Endpoint, body []byte) (T, error) {
	var zero T
	var env directEnvelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, newParseError(endpoint, body, err)
	}
	if env.Response == nil {
		return zero, newParseError(endpoint, body, errMissingResponse)
	}
	if err := validatePayload(env.Response); err != nil {
		return zero, newParseError(endpoint, body, err)
	}
	return *env.Response, nil
}

// unwrapOptional decodes {"response": T?, "total": n}. ok is false when the
// envelope carries no results.
func unwrapOptional[T any](endpoint Endpoint, body []byte) (result T, ok bool, err error) {
	var env optionalEnvelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return result, false, newParseError(endpoint, body, err)
	}
	if env.Total == nil {
		return result, false, newParseError(endpoint, body, missingField("total"))
	}
	if env.Response != nil {
		if err := validatePayload(env.Response); err != nil {
			return result, false, newParseError(endpoint, body, err)
		}
	}
	if env.Response == nil || *env.Total == 0 {
		return result, false, nil
	}
	return *env.Response, true, nil
}

// unwrapCounted decodes the collection envelope and returns the children of the
// first collection. A zero resultcount yields an empty result.
func unwrapCounted(endpoint Endpoint, body []byte) ([]CollectionChild, error) {
	var env countedEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, newParseError(endpoint, body, err)
	}
	if env.Response == nil {
		return nil, newParseError(endpoint, body, errMissingResponse)
	}
	if env.Response.Result == nil {
		return nil, newParseError(endpoint, body, missingField("result"))
	}
	if env.Response.ResultCount == nil {
		return nil, newParseError(endpoint, body, missingField("resultcount"))
	}
	if *env.Response.ResultCount == 0 {
		return []CollectionChild{}, nil
	}
	if len(env.Response.CollectionDetails) == 0 {
		return nil, newParseError(endpoint, body, errMissingCollectionDetails)
	}

	children := env.Response.CollectionDetails[0].Children
	if children == nil {
		return nil, newParseError(endpoint, body, missingField("children"))
	}
	return children, nil
}

func newParseError(endpoint Endpoint, body []byte, err error) *ParseError {
	return &ParseError{
		Endpoint: endpoint.String(),
		Body:     truncateBody(body),
		Err:      err,
	}
}
