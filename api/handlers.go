package api

import (
	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, sessions auth.Sessions, mailer services.Mailer) *routeHandlers {
	return &routeHandlers{
		postHandler:    newPostHandler(services.NewContent(database)),
		accountHandler: newAccountHandler(services.NewAccounts(database.UserRepo()), sessions),
		contactHandler: newContactHandler(services.NewContact(mailer)),
		pageHandler:    newPageHandler(),
	}
}
