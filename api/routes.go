package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register mounts the install flow and the proxy routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleHome)
	r.Get(slackInstallEndpoint, h.HandleSlackInstall)
	r.Get(slackCallbackEndpoint, h.HandleSlackOAuthCallback)

	r.Route("/api", func(r chi.Router) {
		r.Get("/channels", h.HandleListChannels)
		r.Post("/send-message", h.HandleSendMessage)
		r.Post("/schedule-message", h.HandleScheduleMessage)
		r.Get("/scheduled", h.HandleListScheduled)
		r.Get("/messages", h.HandleMessages)
		r.Post("/update-message", h.HandleUpdateMessage)
		r.Post("/delete-message", h.HandleDeleteMessage)
	})
}

func HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
