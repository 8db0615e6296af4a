package slackapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const DefaultAPIURL = "https://slack.com/api/"

// Client calls Slack Web API methods with a bot token and hands back the
// response body untouched.
type Client struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

type Option func(*Client)

// WithAPIURL points the client at a different Web API root.
func WithAPIURL(apiURL string) Option {
	return func(c *Client) {
		c.apiURL = apiURL
	}
}

// WithHTTPClient replaces the http.Client used for outbound calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if !strings.HasSuffix(c.apiURL, "/") {
		c.apiURL += "/"
	}
	return c
}

// Call posts params to the named method. A reply with ok=false is returned
// as *APIError carrying the whole body.
func (c *Client) Call(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	body, err := send(ctx, c.httpClient, c.apiURL+method, c.token, params)
	if err != nil {
		return nil, err
	}

	var status struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if !status.OK {
		return nil, &APIError{Code: status.Error, Detail: body}
	}
	return body, nil
}

// send posts a form and returns the body of a 200 reply.
func send(ctx context.Context, hc *http.Client, endpoint, token string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
