package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisDB struct {
	Client   *redis.Client
	Addr     string
	Password string
}

func NewRedisDB(addr, password string) *RedisDB {
	return &RedisDB{Addr: addr, Password: password}
}

func (r *RedisDB) Connect(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return err
	}
	r.Client = client
	return nil
}

func (r *RedisDB) Disconnect(_ context.Context) error {
	if r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
