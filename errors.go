package client

import (
	"fmt"
	"strings"
)

// MissingConfigurationError is returned when one or more required fields are
// absent, either at construction time ([New]) or at call time
// ([Client.Execute]). It is always returned before any network activity.
type MissingConfigurationError struct {
	Fields []string
}

func (e *MissingConfigurationError) Error() string {
	return "missing required options: " + strings.Join(e.Fields, ", ")
}

// TransportError is returned when a request was attempted but no HTTP
// response was obtained, e.g. connection refused or DNS failure. Responses
// with any status code, including 5xx, are not transport errors.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to connect to DirectAdmin: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
