package supabase

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrNoRows       = errors.New("no rows returned")
	ErrMultipleRows = errors.New("JSON object requested, multiple (or no) rows returned")
)

// APIError 上游返回的非 2xx 响应, Message 原样透传给调用方
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError 兼容 PostgREST({message}), GoTrue({msg}/{error_description}) 与 Storage({message,error}) 的错误体
func newAPIError(status int, body []byte) *APIError {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"message", "msg", "error_description", "error"} {
			if msg, ok := payload[key].(string); ok && msg != "" {
				return &APIError{Status: status, Message: msg}
			}
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
