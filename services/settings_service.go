package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"transportledger/models"
	"transportledger/repository"
)

type SettingsService struct {
	Repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

// GetProfile returns nil when no profile has been saved.
func (s *SettingsService) GetProfile(ctx context.Context) (*models.ProfileData, error) {
	p, err := s.Repo.GetProfile(ctx)
	if err != nil {
		return nil, persistenceErr("load profile", err)
	}
	return p, nil
}

func (s *SettingsService) SaveProfile(ctx context.Context, p *models.ProfileData) error {
	if p == nil {
		return fmt.Errorf("%w: profile is required", ErrValidation)
	}
	if err := s.Repo.SaveProfile(ctx, p); err != nil {
		return persistenceErr("save profile", err)
	}
	return nil
}

func (s *SettingsService) GetBank(ctx context.Context) (*models.BankData, error) {
	b, err := s.Repo.GetBank(ctx)
	if err != nil {
		return nil, persistenceErr("load bank details", err)
	}
	return b, nil
}

func (s *SettingsService) SaveBank(ctx context.Context, b *models.BankData) error {
	if b == nil {
		return fmt.Errorf("%w: bank details are required", ErrValidation)
	}
	if err := s.Repo.SaveBank(ctx, b); err != nil {
		return persistenceErr("save bank details", err)
	}
	return nil
}

func (s *SettingsService) GetProfileImage(ctx context.Context) (string, error) {
	img, err := s.Repo.GetProfileImage(ctx)
	if err != nil {
		return "", persistenceErr("load profile image", err)
	}
	return img, nil
}

// SaveProfileImage accepts a base64 image data URL such as
// "data:image/png;base64,iVBORw0...".
func (s *SettingsService) SaveProfileImage(ctx context.Context, dataURL string) error {
	if err := ValidateImageDataURL(dataURL); err != nil {
		return err
	}
	if err := s.Repo.SaveProfileImage(ctx, dataURL); err != nil {
		return persistenceErr("save profile image", err)
	}
	return nil
}

func ValidateImageDataURL(dataURL string) error {
	const prefix = "data:image/"
	if !strings.HasPrefix(dataURL, prefix) {
		return fmt.Errorf("%w: profile image must be a data:image URL", ErrValidation)
	}
	mediaType, payload, ok := strings.Cut(dataURL[len(prefix):], ";base64,")
	if !ok || mediaType == "" || strings.ContainsAny(mediaType, ";,") {
		return fmt.Errorf("%w: profile image must be base64 encoded", ErrValidation)
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil || payload == "" {
		return fmt.Errorf("%w: profile image payload is not valid base64", ErrValidation)
	}
	return nil
}
