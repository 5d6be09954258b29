package web

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/waseemraja21/personal-blog-website/internal/blog"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer("Test Journal")
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRendererKnowsEveryPage(t *testing.T) {
	r := newTestRenderer(t)
	for _, page := range []string{"home", "compose", "post", "about", "contact"} {
		if _, ok := r.pages[page]; !ok {
			t.Fatalf("missing page %s", page)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	var buf bytes.Buffer
	err := newTestRenderer(t).Render(&buf, "archive", nil)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("expected no output")
	}
}

func TestRenderMissingBinding(t *testing.T) {
	r := newTestRenderer(t)
	cases := map[string]map[string]any{
		"home":  {"StartingContent": "hi"},
		"post":  {"Content": "body"},
		"about": nil,
	}
	for page, data := range cases {
		var buf bytes.Buffer
		err := r.Render(&buf, page, data)
		var renderErr *RenderError
		if !errors.As(err, &renderErr) {
			t.Fatalf("%s: expected RenderError, got %v", page, err)
		}
		if renderErr.Page != page {
			t.Fatalf("%s: unexpected page %q", page, renderErr.Page)
		}
		if buf.Len() != 0 {
			t.Fatalf("%s: expected no partial output, got %d bytes", page, buf.Len())
		}
	}
}

func TestRenderComposeWithoutData(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestRenderer(t).Render(&buf, "compose", nil); err != nil {
		t.Fatalf("render compose: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `name="postTitle"`) || !strings.Contains(out, "<title>Compose - Test Journal</title>") {
		t.Fatalf("unexpected compose page:\n%s", out)
	}
}

func TestRenderHomeListsPosts(t *testing.T) {
	posts := []blog.Post{
		{ID: blog.NewID(), Title: "One", Content: strings.Repeat("x", 150)},
		{ID: blog.NewID(), Title: "Two", Content: "short"},
	}
	var buf bytes.Buffer
	err := newTestRenderer(t).Render(&buf, "home", map[string]any{
		"StartingContent": "Welcome",
		"Posts":           posts,
	})
	if err != nil {
		t.Fatalf("render home: %v", err)
	}
	out := buf.String()
	for _, p := range posts {
		if !strings.Contains(out, `href="/posts/`+p.ID+`"`) {
			t.Fatalf("missing link to %s", p.ID)
		}
	}
	if strings.Contains(out, strings.Repeat("x", 101)) {
		t.Fatal("expected long content to be cut on the home page")
	}
	if !strings.Contains(out, strings.Repeat("x", 100)+"...") {
		t.Fatal("expected excerpt with ellipsis")
	}
}

func TestExcerpt(t *testing.T) {
	if got := excerpt("short"); got != "short" {
		t.Fatalf("unexpected excerpt %q", got)
	}
	long := strings.Repeat("é", 120)
	if got := excerpt(long); got != strings.Repeat("é", 100)+"..." {
		t.Fatalf("expected rune-safe cut, got %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := renderMarkdown("   "); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	got := string(renderMarkdown("line one\nline two"))
	if !strings.Contains(got, "<br>") {
		t.Fatalf("expected hard line break, got %q", got)
	}
}
