package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/verilens/verilens/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS website_comments (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	domain         TEXT NOT NULL,
	commenter_name TEXT NOT NULL,
	comment        TEXT NOT NULL,
	rating         REAL NOT NULL,
	created_at     DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_website_comments_domain ON website_comments(domain);
CREATE INDEX IF NOT EXISTS idx_website_comments_domain_created ON website_comments(domain, created_at DESC);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.db.PingContext(ctx), "sqlite: ping")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateComment(ctx context.Context, c model.Comment) (*model.Comment, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO website_comments (domain, commenter_name, comment, rating, created_at)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		c.Domain, c.CommenterName, c.Comment, c.Rating, now,
	).Scan(&c.ID)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert comment")
	}

	if err := tx.Commit(); err != nil {
		return nil, eris.Wrap(err, "sqlite: commit comment")
	}

	c.CreatedAt = now
	return &c, nil
}

func (s *SQLiteStore) ListComments(ctx context.Context, domain string) ([]model.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, domain, commenter_name, comment, rating, created_at
		 FROM website_comments WHERE domain = ?
		 ORDER BY created_at DESC, id DESC`,
		domain,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: list comments for %s", domain)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Domain, &c.CommenterName, &c.Comment, &c.Rating, &c.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan comment")
		}
		comments = append(comments, c)
	}
	return comments, eris.Wrap(rows.Err(), "sqlite: list comments iterate")
}
