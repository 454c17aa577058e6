package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSecureStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	sec, err := NewSecureStore(mem, "s3cret")
	if err != nil {
		t.Fatalf("NewSecureStore() error = %v", err)
	}

	const image = "data:image/png;base64,iVBORw0KGgo="
	if err := sec.Set(ctx, ProfileImageKey, image); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	raw, _, _ := mem.Get(ctx, ProfileImageKey)
	if strings.Contains(raw, "iVBORw0KGgo") {
		t.Error("underlying store holds the plaintext")
	}

	got, found, err := sec.Get(ctx, ProfileImageKey)
	if err != nil || !found {
		t.Fatalf("Get() = %q, %v, %v", got, found, err)
	}
	if got != image {
		t.Errorf("Get() = %q, want %q", got, image)
	}
}

func TestSecureStore_WrongSecret(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	a, _ := NewSecureStore(mem, "first")
	b, _ := NewSecureStore(mem, "second")

	if err := a.Set(ctx, ProfileImageKey, "data:image/png;base64,AAAA"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	_, _, err := b.Get(ctx, ProfileImageKey)
	if !errors.Is(err, ErrUndecryptable) {
		t.Errorf("Get() error = %v, want ErrUndecryptable", err)
	}
}

func TestSecureStore_EmptySecret(t *testing.T) {
	if _, err := NewSecureStore(NewMemoryStore(), ""); err == nil {
		t.Error("NewSecureStore(\"\") error = nil, want error")
	}
}

func TestSettingsRepo_UndecryptableImageReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	_ = mem.Set(ctx, ProfileImageKey, "not base64 !!")
	sec, _ := NewSecureStore(mem, "key")
	repo := NewSettingsRepo(mem, sec)

	got, err := repo.GetProfileImage(ctx)
	if err != nil {
		t.Fatalf("GetProfileImage() error = %v", err)
	}
	if got != "" {
		t.Errorf("GetProfileImage() = %q, want empty", got)
	}
}

func TestSettingsRepo_CorruptProfileReadsAsNil(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	_ = mem.Set(ctx, ProfileDataKey, "{broken")
	repo := NewSettingsRepo(mem, nil)

	p, err := repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if p != nil {
		t.Errorf("GetProfile() = %+v, want nil", p)
	}
}
