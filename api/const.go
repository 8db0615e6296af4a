package api

import "SlackSandbox/config"

const (
	slackInstallEndpoint  = "/slack/install"
	slackCallbackEndpoint = config.CallbackPath

	defaultHistoryLimit = 50

	missingCodeMessage    = "Missing code parameter."
	oauthFailedMessage    = "OAuth failed: "
	oauthExchangeFailure  = "OAuth exchange failed. Check server logs."
	invalidRequestMessage = "Invalid request body"
)
