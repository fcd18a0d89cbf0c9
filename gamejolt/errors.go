package gamejolt

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid gamejolt configuration")
	// ErrInvalidArgument indicates a missing or out of range argument
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTokenRequired indicates a user-scoped call without a session token
	ErrTokenRequired = errors.New("a user token is required")
	// ErrUnsupportedVersion indicates the configured API version lacks the operation
	ErrUnsupportedVersion = errors.New("operation not supported by API version")
	// ErrNotFound indicates the API returned no matching record
	ErrNotFound = errors.New("resource not found")
	// ErrMalformedResponse indicates a body that is not a Game Jolt response
	ErrMalformedResponse = errors.New("malformed response from Game Jolt API")

	// ErrIncorrectTrophyID indicates the trophy ID is wrong or belongs to another game
	ErrIncorrectTrophyID = errors.New("incorrect trophy ID")
	// ErrUserAlreadyHasTrophy indicates the trophy was already achieved
	ErrUserAlreadyHasTrophy = errors.New("user already has trophy")
	// ErrUserHasNotAchievedTrophy indicates the trophy was never achieved
	ErrUserHasNotAchievedTrophy = errors.New("user has not achieved trophy")
)

// Remote messages returned by the trophy endpoints.
const (
	msgIncorrectTrophyID = "Incorrect trophy ID."
	msgAlreadyHasTrophy  = "The user already has this trophy."
	msgDoesNotHaveTrophy = "The user does not have this trophy."
)

// APIError is a failure reported by Game Jolt (success=false)
type APIError struct {
	Endpoint Endpoint
	Message  string
	Response *Response
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gamejolt API error: %s: request failed", e.Endpoint)
	}
	return fmt.Sprintf("gamejolt API error: %s: %s", e.Endpoint, e.Message)
}

// HasMessage reports whether the remote service explained the failure
func (e *APIError) HasMessage() bool {
	return e.Message != ""
}

// TrophyError is a trophy failure tied to a specific trophy and user.
// It unwraps to one of the trophy sentinels.
type TrophyError struct {
	Kind     error
	TrophyID int
	Username string
	Response *Response

	apiErr *APIError
}

// Error implements the error interface
func (e *TrophyError) Error() string {
	switch e.Kind {
	case ErrIncorrectTrophyID:
		return fmt.Sprintf("invalid trophy ID: %d", e.TrophyID)
	case ErrUserAlreadyHasTrophy:
		return fmt.Sprintf("user %s already has trophy %d", e.Username, e.TrophyID)
	case ErrUserHasNotAchievedTrophy:
		return fmt.Sprintf("user %s does not have trophy %d", e.Username, e.TrophyID)
	default:
		return fmt.Sprintf("trophy %d for user %s: %v", e.TrophyID, e.Username, e.Kind)
	}
}

// Unwrap returns the trophy sentinel and the remote failure it was mapped from
func (e *TrophyError) Unwrap() []error {
	if e.apiErr == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.apiErr}
}

// VersionError reports an operation that needs a newer API version
type VersionError struct {
	Operation string
	Required  string
	Current   string
}

// Error implements the error interface
func (e *VersionError) Error() string {
	return fmt.Sprintf("API version mismatch: %s is only supported at API version %s (configured %s)",
		e.Operation, e.Required, e.Current)
}

// Unwrap returns ErrUnsupportedVersion
func (e *VersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// StatusError is returned by HTTPTransport for non-200 responses
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == 404
}

// trophyError maps a remote trophy failure to a TrophyError, or returns err unchanged.
func trophyError(err error, trophyID int, user *User) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	var kind error
	switch apiErr.Message {
	case msgIncorrectTrophyID:
		kind = ErrIncorrectTrophyID
	case msgAlreadyHasTrophy:
		kind = ErrUserAlreadyHasTrophy
	case msgDoesNotHaveTrophy:
		kind = ErrUserHasNotAchievedTrophy
	default:
		return err
	}

	return &TrophyError{
		Kind:     kind,
		TrophyID: trophyID,
		Username: user.Username,
		Response: apiErr.Response,
		apiErr:   apiErr,
	}
}
