package client

import "fmt"

// ErrorKind classifies a fetch failure.
type ErrorKind int

const (
	// KindNetwork: the request never produced an HTTP response
	// (DNS failure, refused connection, timeout).
	KindNetwork ErrorKind = iota
	// KindHTTP: the endpoint answered with a non-2xx status.
	KindHTTP
	// KindParse: the response body was not a valid stats document.
	KindParse
)

// String returns the lowercase kind label used in the error indicator.
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// FetchError is the single error type returned by StatsClient.GetStats.
// Status is only set for KindHTTP.
type FetchError struct {
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("%s error: status %d", e.Kind, e.Status)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
