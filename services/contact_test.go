package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/services"
)

// recordingMailer captures the last message instead of delivering it.
type recordingMailer struct {
	subject string
	body    string
	calls   int
	err     error
}

func (m *recordingMailer) Send(ctx context.Context, subject, body string) error {
	m.calls++
	m.subject = subject
	m.body = body
	return m.err
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{phone: "+1234", ok: true},
		{phone: "0123456789", ok: true},
		{phone: "", ok: true}, // phone is optional
		{phone: "12a4", ok: false},
		{phone: "+12 34", ok: false},
		{phone: "(555)1234", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			c := qt.New(t)
			err := services.ValidatePhoneNumber(tt.phone)
			if tt.ok {
				c.Assert(err, qt.IsNil)
			} else {
				c.Assert(err, qt.ErrorIs, errs.ErrInvalidPhoneNumber)
			}
		})
	}
}

func TestContactMessageFormatBody(t *testing.T) {
	c := qt.New(t)

	withPhone := services.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Phone:   "+1234",
		Message: "Loved the last post.",
	}
	body := withPhone.FormatBody()
	c.Assert(strings.Contains(body, "Name: Ada\n"), qt.IsTrue)
	c.Assert(strings.Contains(body, "Phone Number: +1234\n"), qt.IsTrue)

	withoutPhone := withPhone
	withoutPhone.Phone = ""
	body = withoutPhone.FormatBody()
	c.Assert(strings.Contains(body, "Phone Number"), qt.IsFalse)
	c.Assert(strings.Contains(body, "Message: Loved the last post.\n"), qt.IsTrue)
}

func TestContactSend(t *testing.T) {
	c := qt.New(t)
	mailer := &recordingMailer{}
	contact := services.NewContact(mailer)
	ctx := context.Background()

	err := contact.Send(ctx, services.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello there.",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(mailer.calls, qt.Equals, 1)
	c.Assert(mailer.subject, qt.Equals, "Fan Mail")
	c.Assert(strings.Contains(mailer.body, "Phone Number"), qt.IsFalse)
}

func TestContactSendInvalidPhoneSkipsTransport(t *testing.T) {
	c := qt.New(t)
	mailer := &recordingMailer{}
	contact := services.NewContact(mailer)

	err := contact.Send(context.Background(), services.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Phone:   "12a4",
		Message: "Hello there.",
	})
	c.Assert(err, qt.ErrorIs, errs.ErrInvalidPhoneNumber)
	c.Assert(mailer.calls, qt.Equals, 0)
}

func TestContactSendDeliveryFailure(t *testing.T) {
	c := qt.New(t)
	mailer := &recordingMailer{err: errors.New("connection refused")}
	contact := services.NewContact(mailer)

	err := contact.Send(context.Background(), services.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello there.",
	})
	c.Assert(err, qt.ErrorIs, errs.ErrDeliveryFailed)
	// One attempt, no retry.
	c.Assert(mailer.calls, qt.Equals, 1)
}
