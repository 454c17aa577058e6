package repository

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// ErrUndecryptable marks a stored value that fails authentication or decoding.
var ErrUndecryptable = errors.New("secure value cannot be decrypted")

// SecureStore encrypts values with XChaCha20-Poly1305 before handing them to
// the underlying store. The stored form is base64(nonce || ciphertext).
type SecureStore struct {
	Store KVStore
	aead  cipher.AEAD
}

func NewSecureStore(store KVStore, secret string) (*SecureStore, error) {
	if secret == "" {
		return nil, errors.New("secure store secret is empty")
	}
	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("transportledger secure store"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &SecureStore{Store: store, aead: aead}, nil
}

func (s *SecureStore) Get(ctx context.Context, key string) (string, bool, error) {
	raw, found, err := s.Store.Get(ctx, key)
	if err != nil || !found {
		return "", found, err
	}
	sealed, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", false, fmt.Errorf("%w: decode %q: %v", ErrUndecryptable, key, err)
	}
	ns := s.aead.NonceSize()
	if len(sealed) < ns {
		return "", false, fmt.Errorf("%w: %q is too short", ErrUndecryptable, key)
	}
	plain, err := s.aead.Open(nil, sealed[:ns], sealed[ns:], []byte(key))
	if err != nil {
		return "", false, fmt.Errorf("%w: %q: %v", ErrUndecryptable, key, err)
	}
	return string(plain), true, nil
}

func (s *SecureStore) Set(ctx context.Context, key, value string) error {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(value)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(value), []byte(key))
	return s.Store.Set(ctx, key, base64.StdEncoding.EncodeToString(sealed))
}
