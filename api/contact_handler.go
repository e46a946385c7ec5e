package api

import (
	"encoding/json"
	"net/http"

	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	contact   services.Contact
}

func newContactHandler(contact services.Contact) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		contact:   contact,
	}
}

// contactForm serves the contact form's field list.
func (h contactHandler) contactForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, services.ContactMessage{})
	}
}

// sendMessage validates and forwards one contact-form submission.
// @Summary Send contact message
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - invalid phone number"
// @Failure 502 {object} ErrorResponse "Bad Gateway - delivery failed"
// @Router /contact [post]
func (h contactHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg services.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.Malformed("contact message"))
			return
		}

		if err := h.contact.Send(r.Context(), msg); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message sent",
		})
	}
}
