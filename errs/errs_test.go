package errs_test

import (
	"errors"
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rpupo63/personal-blog-backend/errs"
)

func TestBlogErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *errs.ApiErr
		wraps  error
		status int
	}{
		{name: "duplicate email", err: errs.NewDuplicateEmailError("a@b.c"), wraps: errs.ErrDuplicateEmail, status: http.StatusConflict},
		{name: "duplicate title", err: errs.NewDuplicateTitleError("Hello"), wraps: errs.ErrDuplicateTitle, status: http.StatusConflict},
		{name: "unknown email", err: errs.NewUnknownEmailError(), wraps: errs.ErrUnknownEmail, status: http.StatusUnauthorized},
		{name: "invalid credential", err: errs.NewInvalidCredentialError(), wraps: errs.ErrInvalidCredential, status: http.StatusUnauthorized},
		{name: "empty text", err: errs.NewEmptyTextError(), wraps: errs.ErrEmptyText, status: http.StatusBadRequest},
		{name: "invalid phone", err: errs.NewInvalidPhoneNumberError("12a4"), wraps: errs.ErrInvalidPhoneNumber, status: http.StatusBadRequest},
		{name: "delivery failed", err: errs.NewDeliveryFailedError(errors.New("boom")), wraps: errs.ErrDeliveryFailed, status: http.StatusBadGateway},
		{name: "forbidden", err: errs.Forbidden, wraps: errs.ErrForbidden, status: http.StatusForbidden},
		{name: "not found", err: errs.NewNotFound("blog post"), wraps: errs.ErrNotFound, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			c.Assert(tt.err.StatusCode, qt.Equals, tt.status)
			c.Assert(errors.Is(tt.err, tt.wraps), qt.IsTrue)
		})
	}
}

func TestErrorCheckers(t *testing.T) {
	c := qt.New(t)

	c.Assert(errs.IsDuplicateEmail(errs.NewDuplicateEmailError("a@b.c")), qt.IsTrue)
	c.Assert(errs.IsDuplicateTitle(errs.NewDuplicateTitleError("Hello")), qt.IsTrue)
	c.Assert(errs.IsDeliveryFailed(errs.NewDeliveryFailedError(errors.New("boom"))), qt.IsTrue)
	c.Assert(errs.IsForbidden(errs.Forbidden), qt.IsTrue)
	c.Assert(errs.IsNotFound(errs.NewNotFound("blog post")), qt.IsTrue)

	c.Assert(errs.IsDuplicateEmail(errs.NewDuplicateTitleError("Hello")), qt.IsFalse)
	c.Assert(errs.IsForbidden(errors.New("boom")), qt.IsFalse)
}

func TestNewDatabaseErrorMapsUniqueViolations(t *testing.T) {
	c := qt.New(t)

	pgStyle := errs.NewDatabaseError("create user", "user", errors.New(`duplicate key value violates unique constraint "idx_users_email"`))
	c.Assert(pgStyle.StatusCode, qt.Equals, http.StatusConflict)
	c.Assert(errors.Is(pgStyle, errs.ErrAlreadyExists), qt.IsTrue)

	sqliteStyle := errs.NewDatabaseError("create blog post", "blog_post", errors.New("UNIQUE constraint failed: blog_posts.title"))
	c.Assert(sqliteStyle.StatusCode, qt.Equals, http.StatusConflict)
	c.Assert(errors.Is(sqliteStyle, errs.ErrAlreadyExists), qt.IsTrue)

	generic := errs.NewDatabaseError("find user", "user", errors.New("disk I/O error"))
	c.Assert(generic.StatusCode, qt.Equals, http.StatusInternalServerError)
}
