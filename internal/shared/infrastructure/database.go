package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DBOptions paramètres de connexion PostgreSQL
type DBOptions struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ConnString construit la chaîne de connexion lib/pq
func (o DBOptions) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.User, o.Password, o.Name, o.SSLMode)
}

// OpenDatabase ouvre et vérifie une connexion PostgreSQL
func OpenDatabase(ctx context.Context, opts DBOptions) (*sql.DB, error) {
	db, err := sql.Open("postgres", opts.ConnString())
	if err != nil {
		return nil, err
	}

	// Pool de connexions
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %s@%s: %w", opts.Name, opts.Host, err)
	}
	return db, nil
}
