package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
	"github.com/rpupo63/personal-blog-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   services.Content
}

func newPostHandler(content services.Content) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// PostView represents a blog post with its display-formatted date
type PostView struct {
	models.BlogPost
	DisplayDate string `json:"displayDate"`
}

// PostCollection represents the front page's list of posts
type PostCollection struct {
	Posts []PostView `json:"posts"`
	Total int        `json:"total,omitempty"`
}

func newPostView(post models.BlogPost) PostView {
	return PostView{BlogPost: post, DisplayDate: post.DisplayDate()}
}

// parsePostID reads the {id} route parameter. Anything that cannot name an
// existing post, including unparsable ids, is reported as not found.
func parsePostID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewNotFound("blog post")
	}
	return uint(id), nil
}

// listPosts serves the front page: every post in publication order.
// @Summary List blog posts
// @Produce json
// @Success 200 {object} PostCollection "List of blog posts"
// @Router / [get]
func (h postHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.content.ListPosts(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		views := make([]PostView, 0, len(posts))
		for _, post := range posts {
			views = append(views, newPostView(*post))
		}

		h.responder.WriteJSON(w, PostCollection{
			Posts: views,
			Total: len(views),
		})
	}
}

// getPost serves a single post with its comments.
// @Summary Get blog post
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} PostView "Post with comments"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /post/{id} [get]
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.content.GetPost(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, newPostView(*post))
	}
}

// newPostForm serves the blank create-post form data. Administrator only,
// matching the page it backs.
func (h postHandler) newPostForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !identityFromCtx(r.Context()).IsAdministrator() {
			h.responder.WriteError(w, errs.Forbidden)
			return
		}
		h.responder.WriteJSON(w, services.PostFields{})
	}
}

// createPost creates a new blog post.
// @Summary Create blog post
// @Accept json
// @Produce json
// @Success 201 {object} PostView "Created post"
// @Failure 403 {object} ErrorResponse "Forbidden - not the administrator"
// @Failure 409 {object} ErrorResponse "Conflict - duplicate title"
// @Router /new-post [post]
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields services.PostFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.Malformed("post"))
			return
		}

		post, err := h.content.CreatePost(r.Context(), fields, identityFromCtx(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newPostView(*post))
	}
}

// editPostForm serves the current field values of the post being edited.
func (h postHandler) editPostForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !identityFromCtx(r.Context()).IsAdministrator() {
			h.responder.WriteError(w, errs.Forbidden)
			return
		}

		id, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.content.GetPost(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, services.PostFields{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Body:     post.Body,
			ImgURL:   post.ImgURL,
		})
	}
}

// editPost overwrites a post's mutable fields.
// @Summary Edit blog post
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} PostView "Updated post"
// @Failure 403 {object} ErrorResponse "Forbidden - not the administrator"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /edit-post/{id} [post]
func (h postHandler) editPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var fields services.PostFields
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.Malformed("post"))
			return
		}

		post, err := h.content.EditPost(r.Context(), id, fields, identityFromCtx(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, newPostView(*post))
	}
}

// deletePost removes a post and cascades over its comments.
// @Summary Delete blog post
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 403 {object} ErrorResponse "Forbidden - not the administrator"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /delete/{id} [get]
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.content.DeletePost(r.Context(), id, identityFromCtx(r.Context())); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "post deleted successfully",
		})
	}
}

// CommentRequest is the body of a comment submission
type CommentRequest struct {
	Text string `json:"text"`
}

// addComment attaches a comment to a post on behalf of the logged-in caller.
// @Summary Add comment
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Success 201 {object} models.Comment "Created comment"
// @Failure 403 {object} ErrorResponse "Forbidden - not logged in"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /post/{id} [post]
func (h postHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.Malformed("comment"))
			return
		}

		comment, err := h.content.AddComment(r.Context(), id, req.Text, identityFromCtx(r.Context()))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, comment)
	}
}
