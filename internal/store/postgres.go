package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/verilens/verilens/internal/db"
	"github.com/verilens/verilens/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS website_comments (
	id             BIGSERIAL PRIMARY KEY,
	domain         TEXT NOT NULL,
	commenter_name TEXT NOT NULL,
	comment        TEXT NOT NULL,
	rating         DOUBLE PRECISION NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_website_comments_domain ON website_comments(domain);
CREATE INDEX IF NOT EXISTS idx_website_comments_domain_created ON website_comments(domain, created_at DESC);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) CreateComment(ctx context.Context, c model.Comment) (*model.Comment, error) {
	now := time.Now().UTC()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: begin tx")
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO website_comments (domain, commenter_name, comment, rating, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.Domain, c.CommenterName, c.Comment, c.Rating, now,
	).Scan(&c.ID)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert comment")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, eris.Wrap(err, "postgres: commit comment")
	}

	c.CreatedAt = now
	return &c, nil
}

func (s *PostgresStore) ListComments(ctx context.Context, domain string) ([]model.Comment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, domain, commenter_name, comment, rating, created_at
		 FROM website_comments WHERE domain = $1
		 ORDER BY created_at DESC, id DESC`,
		domain,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: list comments for %s", domain)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Domain, &c.CommenterName, &c.Comment, &c.Rating, &c.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan comment")
		}
		comments = append(comments, c)
	}
	return comments, eris.Wrap(rows.Err(), "postgres: list comments iterate")
}
