package rest

import (
	"context"
	"errors"
	"fmt"
)

// GenericMessage is shown when the remote API gave no usable message
const GenericMessage = "Unable to reach the server"

// RemoteError is a non-2xx answer from the remote API. The body shape is
// {timeStamp, message, httpStatus}; when the body is not that JSON the
// error is synthesized from the raw status and Synthesized is set.
type RemoteError struct {
	TimeStamp   string `json:"timeStamp"`
	Message     string `json:"message"`
	HTTPStatus  int    `json:"httpStatus"`
	Synthesized bool   `json:"-"`
}

func (e *RemoteError) Error() string {
	return e.Message
}

// TransportError means the request never produced a usable response: the
// connection failed, the context ended, or a success body did not decode.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsCanceled reports whether err comes from a request whose context ended
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// UserMessage converts any error returned by this package, or by the layers
// above it, into the text of a user notification
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		if remoteErr.Message == "" {
			return GenericMessage
		}
		return remoteErr.Message
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return GenericMessage
	}

	return err.Error()
}

// StatusCode returns the HTTP status carried by a RemoteError, or 0
func StatusCode(err error) int {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.HTTPStatus
	}
	return 0
}
