package db

import (
	"context"
	"testing"

	"transportledger/config"
)

func TestOpenStore_Memory(t *testing.T) {
	for _, dbType := range []string{"", "memory"} {
		store, closeFn, err := OpenStore(context.Background(), &config.Config{DBType: dbType})
		if err != nil {
			t.Fatalf("OpenStore(%q) error = %v", dbType, err)
		}
		ctx := context.Background()
		if err := store.Set(ctx, "k", "v"); err != nil {
			t.Fatal(err)
		}
		if v, ok, err := store.Get(ctx, "k"); err != nil || !ok || v != "v" {
			t.Errorf("Get() = %q, %v, %v", v, ok, err)
		}
		closeFn()
	}
}

func TestOpenStore_Unsupported(t *testing.T) {
	if _, _, err := OpenStore(context.Background(), &config.Config{DBType: "sqlite"}); err == nil {
		t.Error("expected an error for an unsupported DB_TYPE")
	}
}

func TestRunMigrations_RequiresURL(t *testing.T) {
	if err := RunMigrations(""); err == nil {
		t.Error("expected an error without a database URL")
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("embedded %d migration files, want 2", len(entries))
	}
}

func TestOpenStore_ConnectHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, dbType := range []string{"mongo", "redis"} {
		cfg := &config.Config{DBType: dbType, MongoURL: "mongodb://127.0.0.1:1", RedisAddr: "127.0.0.1:1"}
		if _, _, err := OpenStore(ctx, cfg); err == nil {
			t.Errorf("OpenStore(%s) with a cancelled context succeeded", dbType)
		}
	}
}
