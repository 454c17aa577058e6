package repository

import (
	"context"

	"transportledger/models"
)

// PDFRepository gathers what an invoice needs: the record plus the company settings.
type PDFRepository struct {
	LedgerRepo   LedgerRepository
	SettingsRepo SettingsRepository
}

func NewPDFRepository(ledgerRepo LedgerRepository, settingsRepo SettingsRepository) *PDFRepository {
	return &PDFRepository{
		LedgerRepo:   ledgerRepo,
		SettingsRepo: settingsRepo,
	}
}

// GetTransportBillForPDF returns nil when no bill has the number.
func (r *PDFRepository) GetTransportBillForPDF(ctx context.Context, billNumber string) (*models.TransportBill, error) {
	bills, err := r.LedgerRepo.LoadTransportBills(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		if bills[i].BillNumber == billNumber {
			return &bills[i], nil
		}
	}
	return nil, nil
}

// GetOwnerRecordForPDF returns nil when no owner record has the id.
func (r *PDFRepository) GetOwnerRecordForPDF(ctx context.Context, recordID string) (*models.OwnerRecord, error) {
	records, err := r.LedgerRepo.LoadOwnerData(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].RecordID == recordID {
			return &records[i], nil
		}
	}
	return nil, nil
}

// GetSettingsForPDF returns profile, bank and logo; any of them may be empty.
func (r *PDFRepository) GetSettingsForPDF(ctx context.Context) (*models.ProfileData, *models.BankData, string, error) {
	profile, err := r.SettingsRepo.GetProfile(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	bank, err := r.SettingsRepo.GetBank(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	image, err := r.SettingsRepo.GetProfileImage(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	return profile, bank, image, nil
}
