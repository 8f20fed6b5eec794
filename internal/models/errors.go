package models

import "errors"

// Application-wide standard errors
var (
	// Catalog & evaluation errors
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrInvalidAction    = errors.New("action is not offered by this scenario")
	ErrInvalidStreet    = errors.New("invalid street")
	ErrInvalidCard      = errors.New("invalid card code")
	ErrInvalidScenario  = errors.New("invalid scenario")

	// External store errors
	ErrStoreFailure = errors.New("document store failure")

	// Identity errors
	ErrUnauthorized = errors.New("unauthorized") // Token missing or failed verification
	ErrForbidden    = errors.New("forbidden")    // Token valid but does not match the request

	// General request errors
	ErrBadRequest = errors.New("bad request")
)

// Error codes returned to clients in ErrorResponse.Code.
const (
	ErrCodeScenarioNotFound = "SCENARIO_NOT_FOUND"
	ErrCodeInvalidAction    = "INVALID_ACTION"
	ErrCodeInvalidStreet    = "INVALID_STREET"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeStoreFailure     = "STORE_FAILURE"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeInternal         = "INTERNAL_ERROR"
)
