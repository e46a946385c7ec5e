package api

import (
	"github.com/go-chi/chi/v5"
)

// setupBlogRoutes wires the blog's route contract. Identity resolution runs
// on every route; authorization happens in the handlers and services, so an
// anonymous caller reaching an admin route gets a 403, not a missing route.
func setupBlogRoutes(r chi.Router, handlers *routeHandlers, sessions sessionMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(sessions.resolveIdentity)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public reading endpoints
		r.Get("/", handlers.postHandler.listPosts())
		r.Get("/post/{id}", handlers.postHandler.getPost())
		r.Get("/about", handlers.pageHandler.about())

		// Commenting (any logged-in user)
		r.Post("/post/{id}", handlers.postHandler.addComment())

		// Administrator content surface
		r.Get("/new-post", handlers.postHandler.newPostForm())
		r.Post("/new-post", handlers.postHandler.createPost())
		r.Get("/edit-post/{id}", handlers.postHandler.editPostForm())
		r.Post("/edit-post/{id}", handlers.postHandler.editPost())
		r.Get("/delete/{id}", handlers.postHandler.deletePost())

		// Accounts and sessions
		r.Get("/register", handlers.accountHandler.registerForm())
		r.Post("/register", handlers.accountHandler.register())
		r.Get("/login", handlers.accountHandler.loginForm())
		r.Post("/login", handlers.accountHandler.login())
		r.Get("/logout", handlers.accountHandler.logout())

		// Contact form
		r.Get("/contact", handlers.contactHandler.contactForm())
		r.Post("/contact", handlers.contactHandler.sendMessage())
	})
}
