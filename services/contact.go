package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Mailer dispatches one formatted message to the blog owner. Implementations
// are fire-and-forget transports: no retry, no persistence of failures.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// ContactMessage is a contact-form submission. Phone is optional.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// ValidatePhoneNumber accepts strings made only of decimal digits and '+'.
// It runs before any network activity.
func ValidatePhoneNumber(phone string) error {
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			continue
		}
		return errs.NewInvalidPhoneNumberError(phone)
	}
	return nil
}

// FormatBody renders the message the owner receives. The phone line is
// omitted entirely when no phone number was given.
func (m ContactMessage) FormatBody() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Email: %s\n", m.Email)
	if m.Phone != "" {
		fmt.Fprintf(&b, "Phone Number: %s\n", m.Phone)
	}
	fmt.Fprintf(&b, "Message: %s\n", m.Message)
	return b.String()
}

// Contact validates and forwards contact-form submissions to the blog owner.
type Contact struct {
	logger zerolog.Logger
	mailer Mailer
}

func NewContact(mailer Mailer) Contact {
	logger := log.With().Str("serviceName", "contact").Logger()
	return Contact{
		logger: logger,
		mailer: mailer,
	}
}

const contactSubject = "Fan Mail"

// Send validates the submission and dispatches it once. A transport failure
// is reported to the caller and the message is simply lost.
func (s Contact) Send(ctx context.Context, msg ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" {
		return errs.BadRequest("name is required")
	}
	if strings.TrimSpace(msg.Email) == "" {
		return errs.BadRequest("email is required")
	}
	if strings.TrimSpace(msg.Message) == "" {
		return errs.BadRequest("message is required")
	}
	if err := ValidatePhoneNumber(msg.Phone); err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, contactSubject, msg.FormatBody()); err != nil {
		s.logger.Error().Err(err).Msg("contact message delivery failed")
		return errs.NewDeliveryFailedError(err)
	}

	s.logger.Info().Str("from", msg.Email).Msg("contact message delivered")
	return nil
}
