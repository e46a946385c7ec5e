package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/models"
	"github.com/rs/zerolog/log"
)

// feedPost is one entry of the remote JSON document the blog can seed its
// posts from.
type feedPost struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
}

// ImportFeed fetches a remote JSON document of posts and inserts any whose
// titles are not already present, authored by the administrator. It refuses
// to import until an administrator account exists, so no post is ever left
// pointing at an absent author row. Import is best effort; callers log the
// returned error and move on.
func ImportFeed(ctx context.Context, url string, db database.Database) (int, error) {
	admin, err := db.UserRepo().FindByID(ctx, auth.AdminUserID)
	if err != nil {
		return 0, fmt.Errorf("look up administrator: %w", err)
	}
	if admin == nil {
		return 0, fmt.Errorf("no administrator registered yet")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build feed request: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read feed body: %w", err)
	}

	var entries []feedPost
	if err := json.Unmarshal(bodyBytes, &entries); err != nil {
		return 0, fmt.Errorf("decode feed: %w", err)
	}

	imported := 0
	for _, entry := range entries {
		if entry.Title == "" {
			continue
		}
		existing, err := db.BlogPostRepo().FindByTitle(ctx, entry.Title)
		if err != nil {
			return imported, fmt.Errorf("check feed post title: %w", err)
		}
		if existing != nil {
			continue
		}

		post := &models.BlogPost{
			AuthorID: admin.ID,
			Title:    entry.Title,
			Subtitle: entry.Subtitle,
			Date:     time.Now(),
			Body:     entry.Body,
			ImgURL:   entry.ImgURL,
		}
		if err := db.BlogPostRepo().Add(ctx, post); err != nil {
			return imported, fmt.Errorf("insert feed post: %w", err)
		}
		imported++
	}

	if imported > 0 {
		log.Info().Int("imported", imported).Str("url", url).Msg("imported posts from feed")
	}
	return imported, nil
}
