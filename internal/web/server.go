package web

import (
	"github.com/pkg/errors"

	"github.com/waseemraja21/personal-blog-website/internal/blog"
	"github.com/waseemraja21/personal-blog-website/internal/config"
)

type Server struct {
	Config   *config.Config
	Posts    *blog.Repository
	Content  blog.SiteContent
	Renderer *Renderer
}

func NewServer(cfg *config.Config, posts *blog.Repository) (*Server, error) {
	renderer, err := NewRenderer(cfg.Content.Title)
	if err != nil {
		return nil, errors.Wrap(err, "load templates")
	}
	return &Server{
		Config:   cfg,
		Posts:    posts,
		Content:  cfg.Content,
		Renderer: renderer,
	}, nil
}
