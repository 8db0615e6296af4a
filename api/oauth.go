package api

import (
	"encoding/json"
	"net/http"

	"SlackSandbox/store"
)

func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, http.StatusOK, "home", homeData{
		InstallURL: h.oauth.InstallURL(),
		Endpoints:  endpointList,
	})
}

// HandleSlackInstall sends the browser to Slack's authorize page.
func (h *Handler) HandleSlackInstall(w http.ResponseWriter, r *http.Request) {
	redirect := h.oauth.InstallURL()
	h.log.Debug("Redirecting to Slack OAuth URL", "url", redirect)
	http.Redirect(w, r, redirect, http.StatusFound)
}

// HandleSlackOAuthCallback exchanges the code and replaces the stored
// installation. There is no state parameter to check.
func (h *Handler) HandleSlackOAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		h.log.Warn("Missing authorization code in request")
		http.Error(w, missingCodeMessage, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	exchange, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		h.log.Error("oauth callback error", "err", err)
		http.Error(w, oauthExchangeFailure, http.StatusInternalServerError)
		return
	}

	if !exchange.OK() {
		h.log.Error("Slack OAuth returned error", "error", exchange.Data["error"])
		http.Error(w, oauthFailedMessage+string(exchange.Raw), http.StatusInternalServerError)
		return
	}

	record := store.NewRecord(exchange.BotToken(), exchange.Object("team"), exchange.Object("authed_user"))
	if err := h.store.Save(ctx, record); err != nil {
		h.log.Crit("Failed to save token record", "err", err)
		http.Error(w, oauthExchangeFailure, http.StatusInternalServerError)
		return
	}

	pretty, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		h.log.Error("Failed to encode token record", "err", err)
		http.Error(w, oauthExchangeFailure, http.StatusInternalServerError)
		return
	}

	h.log.Info("Slack OAuth installation successful", "team", record.Team["id"], "bot_token", record.Token() != "")
	h.pages.render(w, http.StatusOK, "installed", installedData{Record: string(pretty)})
}
