package remote

import (
	"errors"
	"net"
	"net/url"
)

const unexpectedMessage = "An unexpected error occurred while fetching classification"

// FetchError is the only error ListStandings returns. Its message is safe to show to users.
type FetchError struct {
	// Transport is true when the request failed on the wire or came back with a non-2xx status.
	Transport bool
	Message   string
	Err       error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a FetchError of the known-transport kind.
func IsTransport(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Transport
}

func newFetchError(err error) *FetchError {
	if isTransportErr(err) {
		return &FetchError{
			Transport: true,
			Message:   "Failed to fetch classification: " + err.Error(),
			Err:       err,
		}
	}
	return &FetchError{Message: unexpectedMessage, Err: err}
}

func isTransportErr(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		return true
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}
