package auth

import "fmt"

// Identity is the resolved caller of a request. Anonymous callers are a
// first-class value, not a nil pointer or a missing context key: handlers
// always get a usable Identity and branch on Authenticated.
type Identity struct {
	Authenticated bool
	UserID        uint
	Name          string
	Email         string
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// Authenticated builds the identity of a logged-in user.
func Authenticated(userID uint, name, email string) Identity {
	return Identity{
		Authenticated: true,
		UserID:        userID,
		Name:          name,
		Email:         email,
	}
}

// AdminUserID is the id sequential assignment hands to the first registrant.
const AdminUserID = 1

// IsAdministrator reports whether the identity may mutate blog content. Only
// the first-ever-registered user qualifies; anonymous callers never do.
func (i Identity) IsAdministrator() bool {
	return i.Authenticated && i.UserID == AdminUserID
}

func (i Identity) String() string {
	if !i.Authenticated {
		return "anonymous"
	}
	return fmt.Sprintf("user %d (%s)", i.UserID, i.Email)
}
