package datasource

import "fmt"

// ProviderError is returned when the response body itself declares a
// failure via a top-level error.message field. The message is the
// provider's own text and is safe to surface to the user verbatim.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// MalformedResponseError is returned when an expected field is missing
// from an otherwise well-formed response. Callers treat it as a local
// failure and show a generic message instead of the field name.
type MalformedResponseError struct {
	Field string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: missing %s", e.Field)
}

// NetworkError wraps a transport-level failure. The underlying error
// is opaque to callers beyond logging.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
