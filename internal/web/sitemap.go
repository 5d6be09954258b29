package web

import (
	"bytes"
	"encoding/xml"
	"net/http"
)

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type URLSet struct {
	XMLName xml.Name `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []URL    `xml:"url"`
}

func (s *Server) Sitemap(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Posts.ListAll(r.Context())
	if err != nil {
		s.serverError(w, "list posts for sitemap", err)
		return
	}
	baseURL := s.Config.Site.BaseURL

	urls := []URL{
		{Loc: baseURL + "/", ChangeFreq: "daily", Priority: "1.0"},
		{Loc: baseURL + "/about", Priority: "0.5"},
		{Loc: baseURL + "/contact", Priority: "0.5"},
	}
	for _, post := range posts {
		u := URL{
			Loc:        baseURL + "/posts/" + post.ID,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		}
		if created := post.CreatedAt(); !created.IsZero() {
			u.LastMod = created.Format("2006-01-02")
		}
		urls = append(urls, u)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(URLSet{URLs: urls}); err != nil {
		s.serverError(w, "encode sitemap", err)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	_, _ = buf.WriteTo(w)
}
