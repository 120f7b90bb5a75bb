package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
)

var (
	ErrRequest      = errors.New("request failed")
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = common.ErrorUnauthorized
	ErrNotFound     = common.ErrorNotFound
	ErrServer       = common.ErrorInternal
)

// Error is the one failure kind returned by Client. StatusCode is 0 when no
// response was received.
type Error struct {
	StatusCode int
	Message    string
	Code       string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrRequest:
		return true
	case ErrUnavailable:
		return e.StatusCode == 0 ||
			e.StatusCode == http.StatusBadGateway ||
			e.StatusCode == http.StatusServiceUnavailable ||
			e.StatusCode == http.StatusGatewayTimeout
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrServer:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// errorBody is what the backend sends alongside a failing status.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Msg     string `json:"msg"`
}

func transportError(err error) *Error {
	return &Error{
		Message: fmt.Sprintf("cannot reach server: %v", err),
		Err:     err,
	}
}

func statusError(status int, body []byte) *Error {
	e := &Error{StatusCode: status}

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		e.Code = eb.Error
		switch {
		case eb.Message != "":
			e.Message = eb.Message
		case eb.Msg != "":
			e.Message = eb.Msg
		case eb.Error != "":
			e.Message = eb.Error
		}
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("request failed: %s", statusText(status))
	}
	return e
}

func statusText(status int) string {
	if t := http.StatusText(status); t != "" {
		return fmt.Sprintf("%d %s", status, t)
	}
	return fmt.Sprintf("status %d", status)
}
