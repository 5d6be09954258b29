package blog

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore takes a go-sql-driver DSN such as
// "user:pass@tcp(127.0.0.1:3306)/blog".
func NewMySQLStore(ctx context.Context, dsn string) (*MySQLStore, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse mysql dsn")
	}
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping mysql")
	}

	s := &MySQLStore{db: db}
	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *MySQLStore) init(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS posts (
		id CHAR(24) NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		content MEDIUMTEXT NOT NULL
	) DEFAULT CHARSET=utf8mb4
	`
	_, err := s.db.ExecContext(ctx, query)
	return errors.Wrap(err, "create posts table")
}

func (s *MySQLStore) Insert(ctx context.Context, post Post) (string, error) {
	id := NewID()
	ins, err := s.db.PrepareContext(ctx, "insert into posts(id, title, content) values (?, ?, ?)")
	if err != nil {
		return "", errors.Wrap(err, "prepare insert")
	}
	defer ins.Close()

	if _, err := ins.ExecContext(ctx, id, post.Title, post.Content); err != nil {
		return "", errors.Wrap(err, "insert post")
	}
	return id, nil
}

func (s *MySQLStore) FindAll(ctx context.Context) ([]Post, error) {
	return scanPosts(s.db.QueryContext(ctx, "select id, title, content from posts order by id"))
}

func (s *MySQLStore) FindByID(ctx context.Context, id string) (Post, error) {
	return scanPost(s.db.QueryRowContext(ctx, "select id, title, content from posts where id = ? limit 1", id))
}

func (s *MySQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *MySQLStore) Close() error {
	return s.db.Close()
}
