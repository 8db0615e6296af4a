package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// proxy runs one forwarded Web API call and writes its reply as-is.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request, route string, call func(ctx context.Context, c WebAPI) (json.RawMessage, error)) {
	ctx := r.Context()
	c, err := h.client(ctx)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, route, err)
		return
	}
	body, err := call(ctx, c)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, route, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

// proxyWithBody is proxy for routes that read a request body first.
func (h *Handler) proxyWithBody(w http.ResponseWriter, r *http.Request, route string, call func(ctx context.Context, c WebAPI, f requestFields) (json.RawMessage, error)) {
	fields, err := parseBody(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, route, fmt.Errorf("%s: %w", invalidRequestMessage, err))
		return
	}
	h.proxy(w, r, route, func(ctx context.Context, c WebAPI) (json.RawMessage, error) {
		return call(ctx, c, fields)
	})
}

func (h *Handler) HandleListChannels(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, "channels", func(ctx context.Context, c WebAPI) (json.RawMessage, error) {
		return c.ListConversations(ctx)
	})
}

// HandleSendMessage expects {channel, text}.
func (h *Handler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	h.proxyWithBody(w, r, "send-message", func(ctx context.Context, c WebAPI, f requestFields) (json.RawMessage, error) {
		return c.PostMessage(ctx, f.Text("channel"), f.Text("text"))
	})
}

// HandleScheduleMessage expects {channel, text, post_at}; post_at is unix
// seconds and is not checked against the current time.
func (h *Handler) HandleScheduleMessage(w http.ResponseWriter, r *http.Request) {
	h.proxyWithBody(w, r, "schedule-message", func(ctx context.Context, c WebAPI, f requestFields) (json.RawMessage, error) {
		return c.ScheduleMessage(ctx, f.Text("channel"), f.Text("text"), f.Number("post_at"))
	})
}

func (h *Handler) HandleListScheduled(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, "scheduled", func(ctx context.Context, c WebAPI) (json.RawMessage, error) {
		return c.ListScheduledMessages(ctx)
	})
}

// HandleMessages reads ?channel=&limit=. limit defaults to 50.
func (h *Handler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var channel *string
	if q.Has("channel") {
		c := q.Get("channel")
		channel = &c
	}

	limit := float64(defaultHistoryLimit)
	limitPtr := &limit
	if q.Has("limit") {
		limitPtr = toNumber(q.Get("limit"))
	}

	h.proxy(w, r, "messages", func(ctx context.Context, c WebAPI) (json.RawMessage, error) {
		return c.ConversationHistory(ctx, channel, limitPtr)
	})
}

// HandleUpdateMessage expects {channel, ts, text}.
func (h *Handler) HandleUpdateMessage(w http.ResponseWriter, r *http.Request) {
	h.proxyWithBody(w, r, "update-message", func(ctx context.Context, c WebAPI, f requestFields) (json.RawMessage, error) {
		return c.UpdateMessage(ctx, f.Text("channel"), f.Text("ts"), f.Text("text"))
	})
}

// HandleDeleteMessage expects {channel, ts}.
func (h *Handler) HandleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	h.proxyWithBody(w, r, "delete-message", func(ctx context.Context, c WebAPI, f requestFields) (json.RawMessage, error) {
		return c.DeleteMessage(ctx, f.Text("channel"), f.Text("ts"))
	})
}
