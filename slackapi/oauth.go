package slackapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const DefaultAuthorizeURL = "https://slack.com/oauth/v2/authorize"

// BotScopes are requested on every install.
var BotScopes = []string{"chat:write", "channels:read", "channels:history", "chat:write.public"}

// OAuthApp holds the Slack app credentials used by the install flow.
type OAuthApp struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthorizeURL string
	APIURL       string
	HTTPClient   *http.Client
}

// InstallURL is the authorize link a user follows to install the app.
// No state parameter is sent.
func (a OAuthApp) InstallURL() string {
	authorize := a.AuthorizeURL
	if authorize == "" {
		authorize = DefaultAuthorizeURL
	}
	q := url.Values{
		"client_id":    {a.ClientID},
		"scope":        {strings.Join(BotScopes, ",")},
		"redirect_uri": {a.RedirectURI},
	}
	return authorize + "?" + q.Encode()
}

// OAuthExchange is the decoded oauth.v2.access reply alongside its raw body.
type OAuthExchange struct {
	Raw  []byte
	Data map[string]any
}

// Exchange trades an authorization code for tokens. An ok=false reply is
// not an error here; the caller decides how to report it.
func (a OAuthApp) Exchange(ctx context.Context, code string) (OAuthExchange, error) {
	hc := a.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	apiURL := a.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	form := url.Values{
		"client_id":     {a.ClientID},
		"client_secret": {a.ClientSecret},
		"code":          {code},
		"redirect_uri":  {a.RedirectURI},
	}

	body, err := send(ctx, hc, apiURL+"oauth.v2.access", "", form)
	if err != nil {
		return OAuthExchange{}, fmt.Errorf("oauth.v2.access: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return OAuthExchange{}, fmt.Errorf("decode oauth response: %w", err)
	}
	return OAuthExchange{Raw: body, Data: data}, nil
}

func (e OAuthExchange) OK() bool {
	ok, _ := e.Data["ok"].(bool)
	return ok
}

// BotToken returns the first bot token found: access_token, then
// bot.bot_access_token.
func (e OAuthExchange) BotToken() string {
	lookups := []func(map[string]any) (string, bool){
		func(d map[string]any) (string, bool) { return stringField(d, "access_token") },
		func(d map[string]any) (string, bool) {
			bot, ok := d["bot"].(map[string]any)
			if !ok {
				return "", false
			}
			return stringField(bot, "bot_access_token")
		},
	}
	for _, lookup := range lookups {
		if token, ok := lookup(e.Data); ok {
			return token
		}
	}
	return ""
}

// Object returns a nested JSON object, or nil when absent or not an object.
func (e OAuthExchange) Object(key string) map[string]any {
	obj, _ := e.Data[key].(map[string]any)
	return obj
}

func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
