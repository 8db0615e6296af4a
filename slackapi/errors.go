package slackapi

import (
	"encoding/json"
	"fmt"
)

// APIError is a Web API reply with ok=false. Detail is the reply body.
type APIError struct {
	Code   string
	Detail json.RawMessage
}

func (e *APIError) Error() string {
	return "An API error occurred: " + e.Code
}

// HTTPError is a non-200 status from the Web API.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("An HTTP protocol error occurred: statusCode = %d", e.StatusCode)
}
