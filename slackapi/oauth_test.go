package slackapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthApp_InstallURL(t *testing.T) {
	app := OAuthApp{ClientID: "123.456", RedirectURI: "https://sandbox.example.com/slack/oauth/callback"}

	raw := app.InstallURL()
	require.True(t, strings.HasPrefix(raw, DefaultAuthorizeURL+"?"))

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "123.456", q.Get("client_id"))
	assert.Equal(t, "chat:write,channels:read,channels:history,chat:write.public", q.Get("scope"))
	assert.Equal(t, "https://sandbox.example.com/slack/oauth/callback", q.Get("redirect_uri"))
	assert.Empty(t, q.Get("state"))
}

func TestOAuthApp_Exchange(t *testing.T) {
	srv, got := fakeSlack(t, http.StatusOK, `{"ok":true,"access_token":"xoxb-1","team":{"id":"T1"}}`)
	app := OAuthApp{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:3000/slack/oauth/callback",
		APIURL:       srv.URL,
	}

	ex, err := app.Exchange(context.Background(), "the-code")
	require.NoError(t, err)

	assert.True(t, ex.OK())
	assert.Equal(t, "/oauth.v2.access", got.path)
	assert.Empty(t, got.auth)
	assert.Equal(t, url.Values{
		"client_id":     {"cid"},
		"client_secret": {"secret"},
		"code":          {"the-code"},
		"redirect_uri":  {"http://localhost:3000/slack/oauth/callback"},
	}, got.params)
	assert.Equal(t, map[string]any{"id": "T1"}, ex.Object("team"))
	assert.Nil(t, ex.Object("authed_user"))
}

func TestOAuthApp_ExchangeUndecodable(t *testing.T) {
	srv, _ := fakeSlack(t, http.StatusOK, `<html>nope</html>`)

	_, err := OAuthApp{APIURL: srv.URL}.Exchange(context.Background(), "c")
	assert.Error(t, err)
}

func TestOAuthExchange_BotToken(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{
			name: "top level access_token",
			data: map[string]any{"access_token": "xoxb-1", "bot": map[string]any{"bot_access_token": "xoxb-2"}},
			want: "xoxb-1",
		},
		{
			name: "nested bot token",
			data: map[string]any{"bot": map[string]any{"bot_access_token": "xoxb-2"}},
			want: "xoxb-2",
		},
		{
			name: "empty access_token falls through",
			data: map[string]any{"access_token": "", "bot": map[string]any{"bot_access_token": "xoxb-2"}},
			want: "xoxb-2",
		},
		{
			name: "bot is not an object",
			data: map[string]any{"bot": "xoxb-3"},
			want: "",
		},
		{
			name: "neither present",
			data: map[string]any{"ok": true},
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OAuthExchange{Data: tc.data}.BotToken())
		})
	}
}
