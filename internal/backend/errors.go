package backend

// errors.go maps technical failures to user-facing messages with
// support codes. Network failures and API errors are caught at the
// handler layer, mapped here, and rendered as a dismissible banner with
// a manual Retry control. There is no automatic retry, backoff, or
// circuit breaking anywhere in the console.
//
// Code ranges:
//
//	API001-API099  backend responded with an error status
//	NET001-NET099  the backend could not be reached
//	AUTH001-...    credentials rejected
//	ERR000         fallback

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the delivery backend.
type APIError struct {
	Status  int
	Path    string
	Message string // backend-provided message, may be empty
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s: %d %s", e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("backend %s: status %d", e.Path, e.Status)
}

// UserMessage is the user-facing form of a failure: what happened, what
// to do, and a code to quote to support.
type UserMessage struct {
	Message string
	Action  string
	Code    string
}

// statusMessages maps API status codes to user messages.
var statusMessages = map[int]UserMessage{
	http.StatusUnauthorized: {
		Message: "Your session with the delivery service has expired",
		Action:  "Sign in again to continue",
		Code:    "AUTH001",
	},
	http.StatusForbidden: {
		Message: "Your account does not have access to this resource",
		Action:  "Contact your workspace admin",
		Code:    "AUTH002",
	},
	http.StatusNotFound: {
		Message: "The requested item no longer exists",
		Action:  "Refresh the page to see current data",
		Code:    "API002",
	},
	http.StatusConflict: {
		Message: "This change conflicts with a newer version",
		Action:  "Refresh and apply your change again",
		Code:    "API003",
	},
	http.StatusUnprocessableEntity: {
		Message: "The delivery service rejected the submitted values",
		Action:  "Check the highlighted fields and try again",
		Code:    "API004",
	},
	http.StatusTooManyRequests: {
		Message: "Too many requests to the delivery service",
		Action:  "Wait a moment before retrying",
		Code:    "API005",
	},
}

// networkPatterns maps transport-level error text to user messages.
// First match wins; specific patterns come before general ones.
var networkPatterns = []struct {
	pattern string
	msg     UserMessage
}{
	{"connection refused", UserMessage{
		Message: "The delivery service is not reachable",
		Action:  "Retry in a few moments",
		Code:    "NET001",
	}},
	{"no such host", UserMessage{
		Message: "The delivery service address could not be resolved",
		Action:  "Check the console's backend configuration",
		Code:    "NET002",
	}},
	{"context deadline exceeded", UserMessage{
		Message: "The delivery service took too long to respond",
		Action:  "Retry, or narrow the requested period",
		Code:    "NET003",
	}},
	{"client.timeout", UserMessage{
		Message: "The delivery service took too long to respond",
		Action:  "Retry, or narrow the requested period",
		Code:    "NET003",
	}},
	{"context canceled", UserMessage{
		Message: "The request was cancelled",
		Action:  "Retry if you still need this data",
		Code:    "NET004",
	}},
	{"connection reset", UserMessage{
		Message: "The connection to the delivery service was interrupted",
		Action:  "Retry in a few moments",
		Code:    "NET005",
	}},
}

// MapError converts any failure from this package into a UserMessage
// for banner rendering.
func MapError(err error) UserMessage {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg, ok := statusMessages[apiErr.Status]; ok {
			return msg
		}
		if apiErr.Status >= 500 {
			return UserMessage{
				Message: "The delivery service reported an internal error",
				Action:  "Retry in a few moments",
				Code:    "API001",
			}
		}
		return UserMessage{
			Message: "The delivery service rejected the request",
			Action:  "Retry, and contact support if it keeps failing",
			Code:    "API000",
		}
	}

	text := strings.ToLower(err.Error())
	for _, p := range networkPatterns {
		if strings.Contains(text, p.pattern) {
			return p.msg
		}
	}

	return UserMessage{
		Message: "Something went wrong talking to the delivery service",
		Action:  "Retry, and contact support with the code if it persists",
		Code:    "ERR000",
	}
}
