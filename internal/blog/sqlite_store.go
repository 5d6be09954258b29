package blog

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	// 确保数据库文件所在的目录存在
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite")
	}

	pragmas := []string{
		// WAL keeps readers unblocked while compose writes.
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "exec %q", p)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) init(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL
	);
	`
	_, err := s.db.ExecContext(ctx, query)
	return errors.Wrap(err, "create posts table")
}

func (s *SQLiteStore) Insert(ctx context.Context, post Post) (string, error) {
	id := NewID()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO posts (id, title, content) VALUES (?, ?, ?)",
		id, post.Title, post.Content)
	if err != nil {
		return "", errors.Wrap(err, "insert post")
	}
	return id, nil
}

// FindAll orders by id, which sorts by creation time for ObjectID-style ids.
func (s *SQLiteStore) FindAll(ctx context.Context) ([]Post, error) {
	return scanPosts(s.db.QueryContext(ctx, "SELECT id, title, content FROM posts ORDER BY id"))
}

func (s *SQLiteStore) FindByID(ctx context.Context, id string) (Post, error) {
	return scanPost(s.db.QueryRowContext(ctx, "SELECT id, title, content FROM posts WHERE id = ?", id))
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Helpers shared by the database/sql backends.

func scanPosts(rows *sql.Rows, err error) ([]Post, error) {
	if err != nil {
		return nil, errors.Wrap(err, "query posts")
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content); err != nil {
			return nil, errors.Wrap(err, "scan post")
		}
		posts = append(posts, p)
	}
	return posts, errors.Wrap(rows.Err(), "iterate posts")
}

func scanPost(row *sql.Row) (Post, error) {
	var p Post
	if err := row.Scan(&p.ID, &p.Title, &p.Content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, errors.Wrap(err, "scan post")
	}
	return p, nil
}
