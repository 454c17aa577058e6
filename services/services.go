package services

import (
	"log"
	"time"

	"transportledger/repository"
)

// Services wires every service onto one key-value store.
type Services struct {
	LedgerRepo   *repository.LedgerRepo
	SettingsRepo *repository.SettingsRepo

	Ledger   *LedgerService
	Transfer *TransferService
	Settings *SettingsService
	Reports  *ReportService
}

// New builds the services over store. With a non-empty secureKey the profile
// image is encrypted at rest; otherwise it is stored as plain text.
func New(store repository.KVStore, secureKey string, fyStartMonth time.Month, uploader Uploader) (*Services, error) {
	var secret repository.KVStore
	if secureKey != "" {
		secure, err := repository.NewSecureStore(store, secureKey)
		if err != nil {
			return nil, err
		}
		secret = secure
	} else {
		log.Println("[Config] SECURE_STORE_KEY not set, profile image is stored unencrypted")
	}

	s := &Services{
		LedgerRepo:   repository.NewLedgerRepo(store),
		SettingsRepo: repository.NewSettingsRepo(store, secret),
	}
	s.Ledger = NewLedgerService(s.LedgerRepo)
	s.Settings = NewSettingsService(s.SettingsRepo)
	s.Transfer = NewTransferService(s.Ledger, s.SettingsRepo, uploader)
	s.Reports = NewReportService(s.Ledger, fyStartMonth)
	return s, nil
}
