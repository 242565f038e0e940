package twitch_client

import "fmt"

// TransportError is a failure below http status level: dial, tls, timeout, body read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non 2xx answer from twitch. Message is taken from the twitch error body when present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("twitch responded with status code %d: %s", e.StatusCode, e.Message)
}

// DecodeError means twitch answered with a body that is not valid json for the expected payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "invalid json: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// AuthError is returned by GetOAuthToken and by everything that needs a token.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "twitch oauth: " + e.Err.Error() }
func (e *AuthError) Unwrap() error { return e.Err }

// APIError is returned by helix calls once a token was obtained.
type APIError struct {
	Err error
}

func (e *APIError) Error() string { return "twitch api: " + e.Err.Error() }
func (e *APIError) Unwrap() error { return e.Err }
