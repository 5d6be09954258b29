package web

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/waseemraja21/personal-blog-website/internal/blog"
)

const feedSize = 20

func (s *Server) RSS(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Posts.ListAll(r.Context())
	if err != nil {
		s.serverError(w, "list posts for feed", err)
		return
	}
	siteURL := s.Config.Site.BaseURL

	feed := &feeds.Feed{
		Title:       s.Content.Title,
		Link:        &feeds.Link{Href: siteURL},
		Description: s.Content.Home,
		Created:     time.Now(),
	}

	// Newest first, most recent feedSize posts only.
	for _, post := range recentPosts(posts, feedSize) {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          post.ID,
			Title:       post.Title,
			Link:        &feeds.Link{Href: siteURL + "/posts/" + post.ID},
			Description: excerpt(post.Content),
			Created:     post.CreatedAt(),
			Content:     string(renderMarkdown(post.Content)),
		})
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if err := feed.WriteRss(w); err != nil {
		log.Printf("RSS error: %v", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
	}
}

func recentPosts(posts []blog.Post, n int) []blog.Post {
	out := make([]blog.Post, 0, n)
	for i := len(posts) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, posts[i])
	}
	return out
}
