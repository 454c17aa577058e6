package db

import "context"

type DBType string

const (
	Memory   DBType = "memory"
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
	Redis    DBType = "redis"
)

// DB is a connection to one of the supported store backends. Both calls are
// bounded by the caller's context.
type DB interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
}
