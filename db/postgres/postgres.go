package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// PostgresDB holds the pool backing the kv_store table.
type PostgresDB struct {
	Conn *sql.DB
	URL  string
}

func NewPostgresDB(url string) *PostgresDB {
	return &PostgresDB{URL: url}
}

// Connect opens the pool and pings it within ctx. A failed ping closes the pool.
func (p *PostgresDB) Connect(ctx context.Context) error {
	conn, err := sql.Open("postgres", p.URL)
	if err != nil {
		return err
	}
	conn.SetMaxOpenConns(5)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(30 * time.Minute)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return err
	}
	p.Conn = conn
	return nil
}

// Disconnect closes the pool. sql.DB.Close does not block on ctx.
func (p *PostgresDB) Disconnect(_ context.Context) error {
	if p.Conn == nil {
		return nil
	}
	err := p.Conn.Close()
	p.Conn = nil
	return err
}
