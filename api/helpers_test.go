package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"SlackSandbox/config"
	"SlackSandbox/store"
	"SlackSandbox/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type slackCall struct {
	Method string
	Auth   string
	Params url.Values
}

// fakeSlack answers every Web API method with a canned body and records
// what it was sent.
type fakeSlack struct {
	*httptest.Server

	mu      sync.Mutex
	calls   []slackCall
	replies map[string]string
}

func newFakeSlack(t *testing.T) *fakeSlack {
	t.Helper()
	fs := &fakeSlack{replies: map[string]string{}}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		params, err := url.ParseQuery(string(body))
		assert.NoError(t, err)

		method := strings.TrimPrefix(r.URL.Path, "/")
		fs.mu.Lock()
		fs.calls = append(fs.calls, slackCall{Method: method, Auth: r.Header.Get("Authorization"), Params: params})
		reply, ok := fs.replies[method]
		fs.mu.Unlock()
		if !ok {
			reply = `{"ok":true}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeSlack) reply(method, body string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.replies[method] = body
}

func (fs *fakeSlack) recorded() []slackCall {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]slackCall(nil), fs.calls...)
}

type testEnv struct {
	slack  *fakeSlack
	store  *store.MemoryStore
	router http.Handler
}

func newTestEnv(t *testing.T, fallbackToken string, opts ...Option) *testEnv {
	t.Helper()
	slack := newFakeSlack(t)
	cfg := config.Config{
		Port:         3000,
		BaseURL:      "http://localhost:3000",
		ClientID:     "cid",
		ClientSecret: "csecret",
		BotToken:     fallbackToken,
		APIURL:       slack.URL,
		AuthorizeURL: "https://slack.test/oauth/v2/authorize",
	}
	ms := store.NewMemoryStore()

	r := chi.NewRouter()
	NewHandler(cfg, ms, utils.DiscardLogger(), opts...).Register(r)
	return &testEnv{slack: slack, store: ms, router: r}
}

func (e *testEnv) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

var errConnectionReset = errors.New("read tcp: connection reset by peer")

// brokenClient fails every call without a Slack reply body.
type brokenClient struct {
	token string
}

func (b *brokenClient) ListConversations(context.Context) (json.RawMessage, error) {
	return nil, errConnectionReset
}

func (b *brokenClient) PostMessage(context.Context, *string, *string) (json.RawMessage, error) {
	return nil, errConnectionReset
}

func (b *brokenClient) ScheduleMessage(context.Context, *string, *string, *float64) (json.RawMessage, error) {
	return nil, errConnectionReset
}

func (b *brokenClient) ListScheduledMessages(context.Context) (json.RawMessage, error) {
	return nil, errConnectionReset
}

func (b *brokenClient) ConversationHistory(context.Context, *string, *float64) (json.RawMessage, error) {
	return nil, errConnectionReset
}

func (b *brokenClient) UpdateMessage(context.Context, *string, *string, *string) (json.RawMessage, error) {
	return nil, errConnectionReset
}

func (b *brokenClient) DeleteMessage(context.Context, *string, *string) (json.RawMessage, error) {
	return nil, errConnectionReset
}

// brokenFactory records the tokens it was asked to build clients for.
type brokenFactory struct {
	mu     sync.Mutex
	tokens []string
}

func (f *brokenFactory) build(token string) WebAPI {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	return &brokenClient{token: token}
}

func (f *brokenFactory) built() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}
