package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Accounts owns the user lifecycle: registration and credential checks.
// Session establishment stays in the HTTP layer; Accounts only answers who a
// set of credentials belongs to.
type Accounts struct {
	logger   zerolog.Logger
	userRepo *database.UserRepo
}

func NewAccounts(userRepo *database.UserRepo) Accounts {
	logger := log.With().Str("serviceName", "accounts").Logger()
	return Accounts{
		logger:   logger,
		userRepo: userRepo,
	}
}

// Register creates a new user from a display name, an email and a plaintext
// password. The email must be unused; the password is stored only as a bcrypt
// hash. The first user ever registered becomes the administrator by holding
// id 1.
func (s Accounts) Register(ctx context.Context, name, email, password string) (auth.Identity, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return auth.Anonymous, errs.BadRequest("name is required")
	}
	if email == "" {
		return auth.Anonymous, errs.BadRequest("email is required")
	}
	if password == "" {
		return auth.Anonymous, errs.BadRequest("password is required")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return auth.Anonymous, errs.NewDatabaseError("find user", "user", err)
	}
	if existing != nil {
		return auth.Anonymous, errs.NewDuplicateEmailError(email)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return auth.Anonymous, errs.NewInternalErrorWithCause("hashing password", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if err := s.userRepo.Add(ctx, user); err != nil {
		// The unique index on email backstops the check above under
		// concurrent registration; a lost race surfaces the same way.
		dbErr := errs.NewDatabaseError("create user", "user", err)
		if errors.Is(dbErr, errs.ErrAlreadyExists) {
			return auth.Anonymous, errs.NewDuplicateEmailError(email)
		}
		return auth.Anonymous, dbErr
	}

	s.logger.Info().Uint("userId", user.ID).Msg("registered new user")
	return auth.Authenticated(user.ID, user.Name, user.Email), nil
}

// Authenticate resolves credentials to an identity. An unregistered email and
// a wrong password fail differently so the pages can say which field to fix.
func (s Accounts) Authenticate(ctx context.Context, email, password string) (auth.Identity, error) {
	email = strings.TrimSpace(email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return auth.Anonymous, errs.NewDatabaseError("find user", "user", err)
	}
	if user == nil {
		return auth.Anonymous, errs.NewUnknownEmailError()
	}

	if !auth.CheckPassword(user.Password, password) {
		return auth.Anonymous, errs.NewInvalidCredentialError()
	}

	return auth.Authenticated(user.ID, user.Name, user.Email), nil
}
