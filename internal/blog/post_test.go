package blog

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestPostCreatedAtFromID(t *testing.T) {
	before := time.Now().Add(-time.Second)
	p := Post{ID: NewID()}
	got := p.CreatedAt()
	if got.Before(before) || got.After(time.Now().Add(time.Second)) {
		t.Fatalf("created time %v not near now", got)
	}
	if !(Post{ID: "bogus"}).CreatedAt().IsZero() {
		t.Fatal("expected zero time for malformed id")
	}
}

func TestPostReadTime(t *testing.T) {
	if got := (Post{Content: "short"}).ReadTime(); got != "1 min read" {
		t.Fatalf("unexpected read time %q", got)
	}
	long := Post{Content: strings.Repeat("a", 3500)}
	if got := long.ReadTime(); got != "3 min read" {
		t.Fatalf("unexpected read time %q", got)
	}
}

func TestSplitDatabaseURL(t *testing.T) {
	cases := []struct {
		in, scheme, rest string
		ok               bool
	}{
		{"mongodb://127.0.0.1:27017/blogDB", "mongodb", "127.0.0.1:27017/blogDB", true},
		{"sqlite://data/blog.db", "sqlite", "data/blog.db", true},
		{"MYSQL://u:p@tcp(db:3306)/blog", "mysql", "u:p@tcp(db:3306)/blog", true},
		{"file:///tmp/posts.json", "file", "/tmp/posts.json", true},
		{"redis://localhost", "", "", false},
		{"data/blog.db", "", "", false},
		{"sqlite://", "", "", false},
	}
	for _, tc := range cases {
		scheme, rest, err := SplitDatabaseURL(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("%s: unexpected error state %v", tc.in, err)
		}
		if scheme != tc.scheme || rest != tc.rest {
			t.Fatalf("%s: got %q %q", tc.in, scheme, rest)
		}
	}
}

func TestOpenFileAndSQLite(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	for _, dsn := range []string{"file://" + dir + "/posts.json", "sqlite://" + dir + "/blog.db"} {
		s, err := Open(ctx, dsn)
		if err != nil {
			t.Fatalf("open %s: %v", dsn, err)
		}
		if err := s.Ping(ctx); err != nil {
			t.Fatalf("ping %s: %v", dsn, err)
		}
		_ = s.Close()
	}

	if _, err := Open(ctx, "redis://localhost"); err == nil {
		t.Fatal("expected unsupported scheme error")
	}
}

func TestMongoDatabaseName(t *testing.T) {
	cases := map[string]string{
		"mongodb://127.0.0.1:27017/blogDB":           "blogDB",
		"mongodb://127.0.0.1:27017":                  "blogDB",
		"mongodb://u:p@host/journal?authSource=admin": "journal",
	}
	for uri, want := range cases {
		if got := mongoDatabase(uri); got != want {
			t.Fatalf("%s: expected %q, got %q", uri, want, got)
		}
	}
}

func TestSiteContentWithDefaults(t *testing.T) {
	c := SiteContent{About: "custom"}.WithDefaults()
	def := DefaultSiteContent()
	if c.About != "custom" || c.Home != def.Home || c.Contact != def.Contact || c.Title != def.Title {
		t.Fatalf("unexpected content %+v", c)
	}
}
