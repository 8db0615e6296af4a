package slackapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

const conversationsListLimit = 200

// Optional arguments are pointers; a nil argument is left out of the call.

func (c *Client) ListConversations(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "conversations.list", url.Values{
		"limit": {strconv.Itoa(conversationsListLimit)},
	})
}

func (c *Client) PostMessage(ctx context.Context, channel, text *string) (json.RawMessage, error) {
	params := url.Values{}
	setString(params, "channel", channel)
	setString(params, "text", text)
	return c.Call(ctx, "chat.postMessage", params)
}

func (c *Client) ScheduleMessage(ctx context.Context, channel, text *string, postAt *float64) (json.RawMessage, error) {
	params := url.Values{}
	setString(params, "channel", channel)
	setString(params, "text", text)
	setNumber(params, "post_at", postAt)
	return c.Call(ctx, "chat.scheduleMessage", params)
}

func (c *Client) ListScheduledMessages(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "chat.scheduledMessages.list", url.Values{})
}

func (c *Client) ConversationHistory(ctx context.Context, channel *string, limit *float64) (json.RawMessage, error) {
	params := url.Values{}
	setString(params, "channel", channel)
	setNumber(params, "limit", limit)
	return c.Call(ctx, "conversations.history", params)
}

func (c *Client) UpdateMessage(ctx context.Context, channel, ts, text *string) (json.RawMessage, error) {
	params := url.Values{}
	setString(params, "channel", channel)
	setString(params, "ts", ts)
	setString(params, "text", text)
	return c.Call(ctx, "chat.update", params)
}

func (c *Client) DeleteMessage(ctx context.Context, channel, ts *string) (json.RawMessage, error) {
	params := url.Values{}
	setString(params, "channel", channel)
	setString(params, "ts", ts)
	return c.Call(ctx, "chat.delete", params)
}

func setString(params url.Values, key string, s *string) {
	if s == nil {
		return
	}
	params.Set(key, *s)
}

func setNumber(params url.Values, key string, n *float64) {
	if n == nil {
		return
	}
	params.Set(key, strconv.FormatFloat(*n, 'f', -1, 64))
}
