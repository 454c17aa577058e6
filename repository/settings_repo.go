package repository

import (
	"context"
	"errors"
	"log"

	"transportledger/models"
)

// SettingsRepository stores the profile and bank settings and the profile image.
type SettingsRepository interface {
	GetProfile(ctx context.Context) (*models.ProfileData, error)
	SaveProfile(ctx context.Context, p *models.ProfileData) error
	GetBank(ctx context.Context) (*models.BankData, error)
	SaveBank(ctx context.Context, b *models.BankData) error
	GetProfileImage(ctx context.Context) (string, error)
	SaveProfileImage(ctx context.Context, dataURL string) error
}

// SettingsRepo keeps plain settings in Store and the image in Secret,
// which is normally a SecureStore over the same backend.
type SettingsRepo struct {
	Store  KVStore
	Secret KVStore
}

func NewSettingsRepo(store, secret KVStore) *SettingsRepo {
	if secret == nil {
		secret = store
	}
	return &SettingsRepo{Store: store, Secret: secret}
}

func (r *SettingsRepo) GetProfile(ctx context.Context) (*models.ProfileData, error) {
	return loadObject[models.ProfileData](ctx, r.Store, ProfileDataKey)
}

func (r *SettingsRepo) SaveProfile(ctx context.Context, p *models.ProfileData) error {
	return saveObject(ctx, r.Store, ProfileDataKey, p)
}

func (r *SettingsRepo) GetBank(ctx context.Context) (*models.BankData, error) {
	return loadObject[models.BankData](ctx, r.Store, BankDataKey)
}

func (r *SettingsRepo) SaveBank(ctx context.Context, b *models.BankData) error {
	return saveObject(ctx, r.Store, BankDataKey, b)
}

// GetProfileImage returns "" when no image is stored. An entry that cannot be
// decrypted is reported as absent.
func (r *SettingsRepo) GetProfileImage(ctx context.Context) (string, error) {
	v, found, err := r.Secret.Get(ctx, ProfileImageKey)
	if err != nil {
		if errors.Is(err, ErrUndecryptable) {
			log.Printf("[Store] profile image unreadable, treating as absent: %v", err)
			return "", nil
		}
		return "", err
	}
	if !found {
		return "", nil
	}
	return v, nil
}

func (r *SettingsRepo) SaveProfileImage(ctx context.Context, dataURL string) error {
	return r.Secret.Set(ctx, ProfileImageKey, dataURL)
}
