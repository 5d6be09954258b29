package blog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse postgres dsn")
	}
	cfg.MaxConns = 10
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	s := &PostgresStore{pool: pool}
	if err := s.init(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS posts (
		id CHAR(24) PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL
	)`)
	return errors.Wrap(err, "create posts table")
}

func (s *PostgresStore) Insert(ctx context.Context, post Post) (string, error) {
	id := NewID()
	_, err := s.pool.Exec(ctx,
		"INSERT INTO posts (id, title, content) VALUES ($1, $2, $3)",
		id, post.Title, post.Content)
	if err != nil {
		return "", errors.Wrap(err, "insert post")
	}
	return id, nil
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]Post, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, title, content FROM posts ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "query posts")
	}
	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Post, error) {
		var p Post
		err := row.Scan(&p.ID, &p.Title, &p.Content)
		return p, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan posts")
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (Post, error) {
	var p Post
	err := s.pool.QueryRow(ctx, "SELECT id, title, content FROM posts WHERE id = $1", id).
		Scan(&p.ID, &p.Title, &p.Content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, errors.Wrap(err, "scan post")
	}
	return p, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
