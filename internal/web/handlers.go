package web

import (
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kyokomi/emoji/v2"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/waseemraja21/personal-blog-website/internal/blog"
)

func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Posts.ListAll(r.Context())
	if err != nil {
		s.serverError(w, "list posts", err)
		return
	}
	s.render(w, "home", map[string]any{
		"StartingContent": s.Content.Home,
		"Posts":           posts,
	})
}

func (s *Server) ComposeForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "compose", nil)
}

func (s *Server) ComposeSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	title, content := parseComposeForm(r.PostForm)
	if _, err := s.Posts.Create(r.Context(), title, content); err != nil {
		s.serverError(w, "create post", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) PostDetail(w http.ResponseWriter, r *http.Request) {
	post, err := s.Posts.GetByID(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) || errors.Is(err, blog.ErrInvalidID) {
			http.NotFound(w, r)
			return
		}
		s.serverError(w, "get post", err)
		return
	}
	s.render(w, "post", map[string]any{
		"Title":       post.Title,
		"Content":     post.Content,
		"ContentHTML": renderMarkdown(post.Content),
		"CreatedAt":   post.CreatedAt(),
		"ReadTime":    post.ReadTime(),
	})
}

func (s *Server) About(w http.ResponseWriter, r *http.Request) {
	s.render(w, "about", map[string]any{"Content": s.Content.About})
}

func (s *Server) Contact(w http.ResponseWriter, r *http.Request) {
	s.render(w, "contact", map[string]any{"Content": s.Content.Contact})
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := s.Posts.Ping(r.Context()); err != nil {
		log.Printf("ERROR: health check: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("unavailable\n"))
		return
	}
	_, _ = w.Write([]byte("ok\n"))
}

// parseComposeForm maps the untyped form values onto the post fields.
// Missing fields become empty strings; nothing is trimmed or rejected.
func parseComposeForm(form url.Values) (title, content string) {
	return form.Get("postTitle"), form.Get("postBody")
}

func (s *Server) render(w http.ResponseWriter, page string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.Renderer.Render(w, page, data)
	if err == nil {
		return
	}
	var renderErr *RenderError
	if errors.As(err, &renderErr) || errors.Is(err, ErrTemplateNotFound) {
		s.serverError(w, "render "+page, err)
		return
	}
	// The page was complete; the client went away while it was written.
	log.Printf("write %s: %v", page, err)
}

func (s *Server) serverError(w http.ResponseWriter, op string, err error) {
	log.Printf("ERROR: %s: %v", op, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// renderMarkdown turns a post body into HTML. Raw HTML in the body is
// dropped by goldmark rather than passed through.
func renderMarkdown(input string) template.HTML {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	var b strings.Builder
	if err := markdown.Convert([]byte(emoji.Sprint(input)), &b); err != nil {
		log.Printf("markdown error: %v", err)
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(b.String())
}
