package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	s.setupMiddlewares(r)

	// 页面
	r.Get("/", s.Home)
	r.Get("/compose", s.ComposeForm)
	r.Post("/compose", s.ComposeSubmit)
	r.Get("/posts/{postId}", s.PostDetail)
	r.Get("/about", s.About)
	r.Get("/contact", s.Contact)

	r.Get("/feed", s.RSS)
	r.Get("/sitemap.xml", s.Sitemap)
	r.Get("/healthz", s.Healthz)

	// 静态资源（CSS/图片等）
	r.NotFound(s.publicFiles().ServeHTTP)

	return r
}

func (s *Server) setupMiddlewares(r *chi.Mux) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
}

// publicFiles serves the public directory at the web root. Directory
// listings and non-GET requests get a 404.
func (s *Server) publicFiles() http.Handler {
	files := http.FileServer(http.Dir(s.Config.Server.PublicDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
