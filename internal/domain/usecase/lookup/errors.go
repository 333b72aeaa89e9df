package lookup

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind classifies why a lookup failed. Callers treat every kind the same way.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota + 1
	KindMalformed
	KindLocationNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindMalformed:
		return "malformed response"
	case KindLocationNotFound:
		return "location not found"
	default:
		return "unknown"
	}
}

var (
	ErrNetwork          = errors.New("network failure")
	ErrMalformed        = errors.New("malformed response")
	ErrLocationNotFound = errors.New("location not found")
)

// LookupError is the single failure type of the lookup pipeline
type LookupError struct {
	Kind  ErrorKind
	Query string
	Err   error
}

func (e *LookupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("lookup %q: %s", e.Query, e.Kind)
	}
	return fmt.Sprintf("lookup %q: %s: %v", e.Query, e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a LookupError against the kind sentinels
func (e *LookupError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrMalformed:
		return e.Kind == KindMalformed
	case ErrLocationNotFound:
		return e.Kind == KindLocationNotFound
	}
	return false
}

// classify wraps a gateway error, telling decode failures apart from transport ones
func classify(query string, step string, err error) *LookupError {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	kind := KindNetwork
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		kind = KindMalformed
	}
	return &LookupError{Kind: kind, Query: query, Err: fmt.Errorf("%s: %w", step, err)}
}

func malformed(query string, format string, args ...any) *LookupError {
	return &LookupError{Kind: KindMalformed, Query: query, Err: fmt.Errorf(format, args...)}
}
