package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// requestFields is a loosely typed request body. Fields are read on demand
// and never validated.
type requestFields map[string]any

var errNotObject = errors.New("JSON body must be an object or an array")

// parseBody reads JSON or form-encoded bodies, chosen by Content-Type. Any
// other or missing Content-Type leaves the body unread. A JSON array is
// accepted but has no fields.
func parseBody(r *http.Request) (requestFields, error) {
	fields := requestFields{}
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch ct {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
	case "application/json":
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			return fields, nil
		}
		switch raw[0] {
		case '{':
			if err := json.Unmarshal(raw, &fields); err != nil {
				return nil, err
			}
		case '[':
			if !json.Valid(raw) {
				return nil, errors.New("malformed JSON array")
			}
		default:
			return nil, errNotObject
		}
	}
	return fields, nil
}

// Text renders a field as the text Slack receives. It returns nil when the
// field is absent or null so the argument is left out of the call.
func (f requestFields) Text(key string) *string {
	var s string
	switch v := f[key].(type) {
	case nil:
		return nil
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		s = string(b)
	}
	return &s
}

// Number coerces a field to a number the way a loose JavaScript client
// would. It returns nil when the value is not a number.
func (f requestFields) Number(key string) *float64 {
	v, present := f[key]
	if !present {
		return nil
	}
	return toNumber(v)
}

func toNumber(v any) *float64 {
	var n float64
	switch t := v.(type) {
	case nil:
		n = 0
	case float64:
		n = t
	case bool:
		if t {
			n = 1
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			n = 0
			break
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// errorBody is the JSON envelope returned when a proxied call fails.
type errorBody struct {
	Error  string          `json:"error"`
	Detail json.RawMessage `json:"detail"`
}
