package store

import "encoding/json"

// NewRecord builds the record persisted after an OAuth exchange. An empty
// botToken is stored as null.
func NewRecord(botToken string, team, authedUser map[string]any) TokenRecord {
	record := TokenRecord{Team: team, AuthedUser: authedUser}
	if botToken != "" {
		record.BotToken = &botToken
	}
	return record
}

// Token returns the bot token or "".
func (r TokenRecord) Token() string {
	if r.BotToken == nil {
		return ""
	}
	return *r.BotToken
}

func (r TokenRecord) MarshalJSON() ([]byte, error) {
	type wire struct {
		BotToken   *string         `json:"bot_token"`
		Team       *map[string]any `json:"team,omitempty"`
		AuthedUser map[string]any  `json:"authed_user"`
	}
	w := wire{BotToken: r.BotToken, AuthedUser: r.AuthedUser}
	if r.Team != nil {
		w.Team = &r.Team
	}
	return json.Marshal(w)
}
