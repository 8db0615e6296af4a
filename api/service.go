package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"SlackSandbox/config"
	"SlackSandbox/slackapi"
	"SlackSandbox/store"

	"github.com/inconshreveable/log15"
)

// WebAPI is the subset of Slack Web API methods the gateway forwards to.
type WebAPI interface {
	ListConversations(ctx context.Context) (json.RawMessage, error)
	PostMessage(ctx context.Context, channel, text *string) (json.RawMessage, error)
	ScheduleMessage(ctx context.Context, channel, text *string, postAt *float64) (json.RawMessage, error)
	ListScheduledMessages(ctx context.Context) (json.RawMessage, error)
	ConversationHistory(ctx context.Context, channel *string, limit *float64) (json.RawMessage, error)
	UpdateMessage(ctx context.Context, channel, ts, text *string) (json.RawMessage, error)
	DeleteMessage(ctx context.Context, channel, ts *string) (json.RawMessage, error)
}

// ClientFactory builds a Web API client for a bot token.
type ClientFactory func(token string) WebAPI

type Handler struct {
	store     store.Store
	tokens    *store.Resolver
	oauth     slackapi.OAuthApp
	newClient ClientFactory
	log       log15.Logger
	pages     *pages
}

type Option func(*Handler)

// WithClientFactory replaces how Web API clients are built for a token.
func WithClientFactory(f ClientFactory) Option {
	return func(h *Handler) {
		h.newClient = f
	}
}

func NewHandler(cfg config.Config, st store.Store, log log15.Logger, opts ...Option) *Handler {
	h := &Handler{
		store:  st,
		tokens: store.NewResolver(st, cfg.BotToken, log),
		oauth: slackapi.OAuthApp{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURI:  cfg.RedirectURI(),
			AuthorizeURL: cfg.AuthorizeURL,
			APIURL:       cfg.APIURL,
		},
		log:   log.New("component", "gateway"),
		pages: loadPages(),
	}
	h.newClient = func(token string) WebAPI {
		return slackapi.New(token, slackapi.WithAPIURL(cfg.APIURL))
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InstallURL is the Slack authorize link for this app.
func (h *Handler) InstallURL() string {
	return h.oauth.InstallURL()
}

// client resolves a token and builds a Web API client. It fails before any
// network call when no token is available.
func (h *Handler) client(ctx context.Context) (WebAPI, error) {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	return h.newClient(token), nil
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, route string, err error) {
	body := errorBody{Error: err.Error()}
	var apiErr *slackapi.APIError
	if errors.As(err, &apiErr) {
		body.Detail = apiErr.Detail
	}
	h.log.Error("request failed", "route", route, "err", err)

	payload, mErr := json.Marshal(body)
	if mErr != nil {
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, status, payload)
}
