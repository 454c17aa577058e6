package repository

import (
	"context"
	"encoding/json"
	"log"
)

// Keys of the flat key-value layout.
const (
	TransportBillsKey = "transport_bills"
	OwnerDataKey      = "owner_data"
	ProfileDataKey    = "profile_data"
	BankDataKey       = "bank_data"
	ProfileImageKey   = "profile_image_base64"
)

// KVStore is a durable string key-value store. Set overwrites the whole value
// in a single write.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// SaveCollection serializes records and overwrites the named entry.
func SaveCollection[T any](ctx context.Context, store KVStore, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return store.Set(ctx, name, string(raw))
}

// LoadCollection returns the stored records. A missing or unparseable entry
// reads as an empty collection; only store failures are returned.
func LoadCollection[T any](ctx context.Context, store KVStore, name string) ([]T, error) {
	raw, found, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("[Store] collection %q is not valid JSON, treating as empty: %v", name, err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// loadObject reads a JSON object entry; missing or corrupt entries yield nil.
func loadObject[T any](ctx context.Context, store KVStore, key string) (*T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" || raw == "null" {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("[Store] entry %q is not valid JSON, ignoring: %v", key, err)
		return nil, nil
	}
	return &v, nil
}

func saveObject[T any](ctx context.Context, store KVStore, key string, v *T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}
