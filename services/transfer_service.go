package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"transportledger/metrics"
	"transportledger/models"
	"transportledger/repository"
)

// Uploader stores a backup object and returns where it can be found.
type Uploader interface {
	Upload(ctx context.Context, data []byte, key, contentType string) (string, error)
}

// TransferService exports and imports the whole dataset as one JSON document.
type TransferService struct {
	Ledger   *LedgerService
	Settings repository.SettingsRepository
	Uploader Uploader
}

func NewTransferService(ledger *LedgerService, settings repository.SettingsRepository, uploader Uploader) *TransferService {
	return &TransferService{Ledger: ledger, Settings: settings, Uploader: uploader}
}

// Snapshot collects both collections and the settings.
func (s *TransferService) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	owners, err := s.Ledger.GetAllOwnerData(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := s.Ledger.GetAllTransportBills(ctx)
	if err != nil {
		return nil, err
	}
	snap := &models.Snapshot{OwnerData: owners, TransportBills: bills}

	if snap.ProfileData, err = s.Settings.GetProfile(ctx); err != nil {
		return nil, persistenceErr("load profile", err)
	}
	if snap.BankData, err = s.Settings.GetBank(ctx); err != nil {
		return nil, persistenceErr("load bank details", err)
	}
	image, err := s.Settings.GetProfileImage(ctx)
	if err != nil {
		return nil, persistenceErr("load profile image", err)
	}
	if image != "" {
		snap.ProfileImage = &image
	}
	return snap, nil
}

// ExportSnapshot returns the dataset as JSON indented by two spaces.
func (s *TransferService) ExportSnapshot(ctx context.Context) (_ []byte, err error) {
	defer func() { metrics.ObserveLedgerOp("export", err) }()
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

// ImportSnapshot replaces both collections, and any settings present, with
// the contents of data. The document is fully checked before anything is
// written: malformed JSON is ErrParse, a missing array or an empty dataset is
// ErrValidation.
func (s *TransferService) ImportSnapshot(ctx context.Context, data []byte) (_ *models.Snapshot, err error) {
	defer func() { metrics.ObserveLedgerOp("import", err) }()

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	if err := s.Ledger.ReplaceAll(ctx, snap.OwnerData, snap.TransportBills); err != nil {
		return nil, err
	}
	if snap.ProfileData != nil {
		if err := s.Settings.SaveProfile(ctx, snap.ProfileData); err != nil {
			return nil, persistenceErr("save profile", err)
		}
	}
	if snap.BankData != nil {
		if err := s.Settings.SaveBank(ctx, snap.BankData); err != nil {
			return nil, persistenceErr("save bank details", err)
		}
	}
	if snap.ProfileImage != nil && *snap.ProfileImage != "" {
		if err := s.Settings.SaveProfileImage(ctx, *snap.ProfileImage); err != nil {
			return nil, persistenceErr("save profile image", err)
		}
	}
	log.Printf("[Transfer] imported %d owner records and %d transport bills", len(snap.OwnerData), len(snap.TransportBills))
	return snap, nil
}

func decodeSnapshot(data []byte) (*models.Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for _, key := range []string{repository.OwnerDataKey, repository.TransportBillsKey} {
		raw, ok := fields[key]
		if !ok || !isArray(raw) {
			return nil, fmt.Errorf("%w: %s must be an array", ErrValidation, key)
		}
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(snap.OwnerData) == 0 && len(snap.TransportBills) == 0 {
		return nil, fmt.Errorf("%w: snapshot contains no records", ErrValidation)
	}
	if dup := duplicateKey(snap.OwnerData, func(o models.OwnerRecord) string { return o.RecordID }); dup != "" {
		return nil, fmt.Errorf("%w: owner record %q appears more than once", ErrValidation, dup)
	}
	if dup := duplicateKey(snap.TransportBills, func(b models.TransportBill) string { return b.BillNumber }); dup != "" {
		return nil, fmt.Errorf("%w: transport bill %q appears more than once", ErrValidation, dup)
	}
	return &snap, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func duplicateKey[T any](items []T, key func(T) string) string {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		k := key(it)
		if seen[k] {
			return k
		}
		seen[k] = true
	}
	return ""
}

// Backup uploads an export and returns its location.
func (s *TransferService) Backup(ctx context.Context, now time.Time) (_ string, err error) {
	if s.Uploader == nil {
		return "", fmt.Errorf("%w: backup storage is not configured", ErrValidation)
	}
	data, err := s.ExportSnapshot(ctx)
	if err != nil {
		return "", err
	}
	defer func() { metrics.ObserveLedgerOp("backup", err) }()
	key := fmt.Sprintf("backups/transportledger_%s.json", now.UTC().Format("20060102T150405Z"))
	location, err := s.Uploader.Upload(ctx, data, key, "application/json")
	if err != nil {
		return "", persistenceErr("upload backup", err)
	}
	log.Printf("[Transfer] backup uploaded to %s", location)
	return location, nil
}
