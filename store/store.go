package store

import (
	"context"
	"errors"

	"github.com/inconshreveable/log15"
)

var ErrTokenNotFound = errors.New("Slack bot token not found. Install the app or set SLACK_BOT_TOKEN.")

// TokenRecord is the single persisted installation. A nil Team is left out
// of the encoded record; an empty one is kept as {}.
type TokenRecord struct {
	BotToken   *string        `json:"bot_token"`
	Team       map[string]any `json:"team"`
	AuthedUser map[string]any `json:"authed_user"`
}

// LoadResult is what Load hands back. Load never fails: Err records why the
// record is empty (missing or malformed data) so callers can log it.
type LoadResult struct {
	Record TokenRecord
	Err    error
}

// Store persists exactly one TokenRecord. Save overwrites it whole.
type Store interface {
	Save(ctx context.Context, record TokenRecord) error
	Load(ctx context.Context) LoadResult
}

// Resolver picks the bot token to use for a Web API call.
type Resolver struct {
	store    Store
	fallback string
	log      log15.Logger
}

func NewResolver(s Store, fallback string, log log15.Logger) *Resolver {
	return &Resolver{store: s, fallback: fallback, log: log.New("component", "resolver")}
}

// Token returns the stored bot token, then the configured fallback.
func (r *Resolver) Token(ctx context.Context) (string, error) {
	res := r.store.Load(ctx)
	if res.Err != nil {
		r.log.Debug("token store empty", "err", res.Err)
	}

	token := r.fallback
	if stored := res.Record.Token(); stored != "" {
		token = stored
	}

	if token == "" {
		r.log.Info("Using Slack token", "token", "MISSING")
		return "", ErrTokenNotFound
	}
	r.log.Info("Using Slack token", "token", "FOUND")
	return token, nil
}
