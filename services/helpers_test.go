package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"transportledger/repository"
)

var errStoreDown = errors.New("store unavailable")

// flakyStore wraps a memory store and fails reads or writes of chosen keys.
type flakyStore struct {
	*repository.MemoryStore

	mu      sync.Mutex
	failGet map[string]bool
	failSet map[string]bool
	sets    []string
}

func newFlakyStore() *flakyStore {
	return &flakyStore{
		MemoryStore: repository.NewMemoryStore(),
		failGet:     map[string]bool{},
		failSet:     map[string]bool{},
	}
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	fail := s.failGet[key]
	s.mu.Unlock()
	if fail {
		return "", false, errStoreDown
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	fail := s.failSet[key]
	if !fail {
		s.sets = append(s.sets, key)
	}
	s.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *flakyStore) writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sets...)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestLedger(t *testing.T) (*LedgerService, *flakyStore) {
	t.Helper()
	store := newFlakyStore()
	svc := NewLedgerService(repository.NewLedgerRepo(store))
	svc.NewID = sequentialIDs()
	return svc, store
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
