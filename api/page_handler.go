package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newPageHandler() pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// AboutPage is the static about document
type AboutPage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// about serves the static about page content.
func (h pageHandler) about() http.HandlerFunc {
	page := AboutPage{
		Title: "About Me",
		Body:  "A personal blog about whatever happens to be interesting this week.",
	}
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, page)
	}
}
