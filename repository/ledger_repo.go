package repository

import (
	"context"

	"transportledger/models"
)

// LedgerRepository reads and writes the two ledger collections as whole arrays.
type LedgerRepository interface {
	LoadTransportBills(ctx context.Context) ([]models.TransportBill, error)
	SaveTransportBills(ctx context.Context, bills []models.TransportBill) error
	LoadOwnerData(ctx context.Context) ([]models.OwnerRecord, error)
	SaveOwnerData(ctx context.Context, records []models.OwnerRecord) error
}

type LedgerRepo struct {
	Store KVStore
}

func NewLedgerRepo(store KVStore) *LedgerRepo {
	return &LedgerRepo{Store: store}
}

func (r *LedgerRepo) LoadTransportBills(ctx context.Context) ([]models.TransportBill, error) {
	return LoadCollection[models.TransportBill](ctx, r.Store, TransportBillsKey)
}

func (r *LedgerRepo) SaveTransportBills(ctx context.Context, bills []models.TransportBill) error {
	return SaveCollection(ctx, r.Store, TransportBillsKey, bills)
}

func (r *LedgerRepo) LoadOwnerData(ctx context.Context) ([]models.OwnerRecord, error) {
	return LoadCollection[models.OwnerRecord](ctx, r.Store, OwnerDataKey)
}

func (r *LedgerRepo) SaveOwnerData(ctx context.Context, records []models.OwnerRecord) error {
	return SaveCollection(ctx, r.Store, OwnerDataKey, records)
}
