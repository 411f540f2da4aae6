package domain

import "errors"

var (
	// ErrNotFound is returned by caches on a miss or logical expiry.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPair marks a malformed trading pair string.
	ErrInvalidPair = errors.New("invalid trading pair")
	// ErrNoQuote means an exchange has no usable quote for the pair: an
	// unrepresentable symbol, a 4xx response, or an unparsable body. Callers
	// treat it as an expected outcome, not an operational error.
	ErrNoQuote = errors.New("no quote")
	// ErrRateLimited marks an upstream 429. Logged for operational
	// visibility, then handled exactly like ErrNoQuote.
	ErrRateLimited = errors.New("rate limited")
	// ErrUpstream marks an upstream 5xx, network failure, or timeout.
	ErrUpstream = errors.New("upstream failure")
)
