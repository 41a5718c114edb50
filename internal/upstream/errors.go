package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthorized marks a 401 from the backend. The client clears the local
// session before returning it; callers redirect to sign-in.
var ErrUnauthorized = errors.New("unauthorized")

// Error is the normalized failure shape for any backend call: a
// human-readable message, the HTTP status when one was received, and the raw
// decoded error payload for validation detail extraction.
type Error struct {
	Message string
	Status  int
	Data    interface{}
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("upstream: %s (status %d)", e.Message, e.Status)
	}
	return "upstream: " + e.Message
}

// Is lets errors.Is(err, ErrUnauthorized) match a 401 Error
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == 401
}

// newError builds an Error from a non-2xx response body. A backend that
// returns a structured message list gets its messages joined one per line;
// a single message field is used verbatim; anything else falls back to a
// generic message.
func newError(status int, body []byte) *Error {
	e := &Error{
		Message: "request failed",
		Status:  status,
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return e
	}
	e.Data = payload

	if msgs, ok := payload["messages"].([]interface{}); ok && len(msgs) > 0 {
		parts := make([]string, 0, len(msgs))
		for _, m := range msgs {
			if s, ok := m.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			e.Message = strings.Join(parts, "\n")
			return e
		}
	}

	if msg, ok := payload["message"].(string); ok && msg != "" {
		e.Message = msg
	} else if msg, ok := payload["error"].(string); ok && msg != "" {
		e.Message = msg
	}

	return e
}
