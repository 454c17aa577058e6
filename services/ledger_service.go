package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"transportledger/metrics"
	"transportledger/models"
	"transportledger/query"
	"transportledger/repository"
	"transportledger/utils"
)

// LedgerService keeps the transport bill and owner record collections in step.
// Every record added to one side gets a skeleton mirror on the other side with
// the same syncId; updates copy the shared fields across and deletes cascade.
//
// The two collections are written one after the other. A failure between the
// writes leaves the first write in place and is reported, not rolled back.
type LedgerService struct {
	Repo  repository.LedgerRepository
	NewID func() string

	mu sync.Mutex
}

func NewLedgerService(repo repository.LedgerRepository) *LedgerService {
	return &LedgerService{Repo: repo, NewID: utils.GenerateID}
}

func persistenceErr(action string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, action, err)
}

func (s *LedgerService) loadBills(ctx context.Context) ([]models.TransportBill, error) {
	bills, err := s.Repo.LoadTransportBills(ctx)
	if err != nil {
		return nil, persistenceErr("load transport bills", err)
	}
	return bills, nil
}

func (s *LedgerService) loadOwners(ctx context.Context) ([]models.OwnerRecord, error) {
	owners, err := s.Repo.LoadOwnerData(ctx)
	if err != nil {
		return nil, persistenceErr("load owner data", err)
	}
	return owners, nil
}

func (s *LedgerService) saveBills(ctx context.Context, bills []models.TransportBill) error {
	if err := s.Repo.SaveTransportBills(ctx, bills); err != nil {
		return persistenceErr("save transport bills", err)
	}
	return nil
}

func (s *LedgerService) saveOwners(ctx context.Context, owners []models.OwnerRecord) error {
	if err := s.Repo.SaveOwnerData(ctx, owners); err != nil {
		return persistenceErr("save owner data", err)
	}
	return nil
}

func indexOfBill(bills []models.TransportBill, billNumber string) int {
	for i := range bills {
		if bills[i].BillNumber == billNumber {
			return i
		}
	}
	return -1
}

func indexOfOwner(owners []models.OwnerRecord, recordID string) int {
	for i := range owners {
		if owners[i].RecordID == recordID {
			return i
		}
	}
	return -1
}

// ============ TRANSPORT BILLS ============

func (s *LedgerService) GetAllTransportBills(ctx context.Context) ([]models.TransportBill, error) {
	return s.loadBills(ctx)
}

func (s *LedgerService) GetTransportBill(ctx context.Context, billNumber string) (*models.TransportBill, error) {
	bills, err := s.loadBills(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfBill(bills, billNumber)
	if i < 0 {
		return nil, fmt.Errorf("%w: transport bill %q", ErrNotFound, billNumber)
	}
	return &bills[i], nil
}

// AddTransportBill stores a new bill under fresh uniqueId and syncId values and
// creates the matching owner record skeleton.
func (s *LedgerService) AddTransportBill(ctx context.Context, bill models.TransportBill) (_ *models.TransportBill, err error) {
	defer func() { metrics.ObserveLedgerOp("add_transport_bill", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	bill.Normalize()
	if err := bill.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	bills, err := s.loadBills(ctx)
	if err != nil {
		return nil, err
	}
	if indexOfBill(bills, bill.BillNumber) >= 0 {
		return nil, fmt.Errorf("%w: transport bill %q already exists", ErrValidation, bill.BillNumber)
	}
	owners, err := s.loadOwners(ctx)
	if err != nil {
		return nil, err
	}
	if indexOfOwner(owners, bill.BillNumber) >= 0 {
		return nil, fmt.Errorf("%w: owner record %q already exists", ErrValidation, bill.BillNumber)
	}

	bill.UniqueID = s.NewID()
	bill.SyncID = s.NewID()
	if err := s.saveBills(ctx, append(bills, bill)); err != nil {
		return nil, err
	}

	owners, err = s.loadOwners(ctx)
	if err != nil {
		log.Printf("[Ledger] bill %s saved without owner mirror: %v", bill.BillNumber, err)
		return nil, err
	}
	if !hasOwnerSync(owners, bill.SyncID) {
		owners = append(owners, ownerSkeleton(bill, s.NewID()))
		if err := s.saveOwners(ctx, owners); err != nil {
			log.Printf("[Ledger] bill %s saved without owner mirror: %v", bill.BillNumber, err)
			return nil, err
		}
	}
	return &bill, nil
}

// UpdateTransportBill replaces the stored bill with the same bill number and
// copies the shared fields onto its owner record. The stored uniqueId and
// syncId are kept.
func (s *LedgerService) UpdateTransportBill(ctx context.Context, bill models.TransportBill) (_ *models.TransportBill, err error) {
	defer func() { metrics.ObserveLedgerOp("update_transport_bill", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	bill.Normalize()
	if err := bill.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	bills, err := s.loadBills(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfBill(bills, bill.BillNumber)
	if i < 0 {
		return nil, fmt.Errorf("%w: transport bill %q", ErrNotFound, bill.BillNumber)
	}
	syncID := bills[i].SyncID
	bill.UniqueID = bills[i].UniqueID
	bill.SyncID = syncID
	bills[i] = bill
	if err := s.saveBills(ctx, bills); err != nil {
		return nil, err
	}

	if syncID == "" {
		return &bill, nil
	}
	owners, err := s.loadOwners(ctx)
	if err != nil {
		log.Printf("[Ledger] bill %s updated, owner mirror not refreshed: %v", bill.BillNumber, err)
		return nil, err
	}
	if j := indexOfOwnerSync(owners, syncID); j >= 0 {
		copyBillShared(&owners[j], bill)
		if err := s.saveOwners(ctx, owners); err != nil {
			log.Printf("[Ledger] bill %s updated, owner mirror not refreshed: %v", bill.BillNumber, err)
			return nil, err
		}
	}
	return &bill, nil
}

// DeleteTransportBill removes the bill and every owner record sharing its syncId.
func (s *LedgerService) DeleteTransportBill(ctx context.Context, billNumber string) (err error) {
	defer func() { metrics.ObserveLedgerOp("delete_transport_bill", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.loadBills(ctx)
	if err != nil {
		return err
	}
	i := indexOfBill(bills, billNumber)
	if i < 0 {
		return fmt.Errorf("%w: transport bill %q", ErrNotFound, billNumber)
	}
	syncID := bills[i].SyncID
	bills = append(bills[:i:i], bills[i+1:]...)
	if err := s.saveBills(ctx, bills); err != nil {
		return err
	}

	if syncID == "" {
		return nil
	}
	owners, err := s.loadOwners(ctx)
	if err != nil {
		log.Printf("[Ledger] bill %s deleted, owner mirror left behind: %v", billNumber, err)
		return err
	}
	kept := owners[:0:0]
	for _, o := range owners {
		if o.SyncID != syncID {
			kept = append(kept, o)
		}
	}
	if err := s.saveOwners(ctx, kept); err != nil {
		log.Printf("[Ledger] bill %s deleted, owner mirror left behind: %v", billNumber, err)
		return err
	}
	return nil
}

func (s *LedgerService) DeleteAllTransportBills(ctx context.Context) (err error) {
	defer func() { metrics.ObserveLedgerOp("delete_all_transport_bills", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveBills(ctx, nil)
}

// QueryTransportBills filters, sorts and pages the stored bills.
func (s *LedgerService) QueryTransportBills(ctx context.Context, f query.Filter, page, size int) (query.Page[models.TransportBill], error) {
	bills, err := s.loadBills(ctx)
	if err != nil {
		return query.Page[models.TransportBill]{}, err
	}
	return query.Paginate(query.Apply(bills, f), page, size), nil
}

// ============ OWNER DATA ============

func (s *LedgerService) GetAllOwnerData(ctx context.Context) ([]models.OwnerRecord, error) {
	return s.loadOwners(ctx)
}

func (s *LedgerService) GetOwnerData(ctx context.Context, recordID string) (*models.OwnerRecord, error) {
	owners, err := s.loadOwners(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfOwner(owners, recordID)
	if i < 0 {
		return nil, fmt.Errorf("%w: owner record %q", ErrNotFound, recordID)
	}
	return &owners[i], nil
}

// AddOwnerData stores a new owner record and creates the matching transport
// bill skeleton.
func (s *LedgerService) AddOwnerData(ctx context.Context, rec models.OwnerRecord) (_ *models.OwnerRecord, err error) {
	defer func() { metrics.ObserveLedgerOp("add_owner_data", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	owners, err := s.loadOwners(ctx)
	if err != nil {
		return nil, err
	}
	if indexOfOwner(owners, rec.RecordID) >= 0 {
		return nil, fmt.Errorf("%w: owner record %q already exists", ErrValidation, rec.RecordID)
	}
	bills, err := s.loadBills(ctx)
	if err != nil {
		return nil, err
	}
	if indexOfBill(bills, rec.RecordID) >= 0 {
		return nil, fmt.Errorf("%w: transport bill %q already exists", ErrValidation, rec.RecordID)
	}

	rec.UniqueID = s.NewID()
	rec.SyncID = s.NewID()
	if err := s.saveOwners(ctx, append(owners, rec)); err != nil {
		return nil, err
	}

	bills, err = s.loadBills(ctx)
	if err != nil {
		log.Printf("[Ledger] owner record %s saved without bill mirror: %v", rec.RecordID, err)
		return nil, err
	}
	if !hasBillSync(bills, rec.SyncID) {
		bills = append(bills, billSkeleton(rec, s.NewID()))
		if err := s.saveBills(ctx, bills); err != nil {
			log.Printf("[Ledger] owner record %s saved without bill mirror: %v", rec.RecordID, err)
			return nil, err
		}
	}
	return &rec, nil
}

func (s *LedgerService) UpdateOwnerData(ctx context.Context, rec models.OwnerRecord) (_ *models.OwnerRecord, err error) {
	defer func() { metrics.ObserveLedgerOp("update_owner_data", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	owners, err := s.loadOwners(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfOwner(owners, rec.RecordID)
	if i < 0 {
		return nil, fmt.Errorf("%w: owner record %q", ErrNotFound, rec.RecordID)
	}
	syncID := owners[i].SyncID
	rec.UniqueID = owners[i].UniqueID
	rec.SyncID = syncID
	owners[i] = rec
	if err := s.saveOwners(ctx, owners); err != nil {
		return nil, err
	}

	if syncID == "" {
		return &rec, nil
	}
	bills, err := s.loadBills(ctx)
	if err != nil {
		log.Printf("[Ledger] owner record %s updated, bill mirror not refreshed: %v", rec.RecordID, err)
		return nil, err
	}
	if j := indexOfBillSync(bills, syncID); j >= 0 {
		copyOwnerShared(&bills[j], rec)
		if err := s.saveBills(ctx, bills); err != nil {
			log.Printf("[Ledger] owner record %s updated, bill mirror not refreshed: %v", rec.RecordID, err)
			return nil, err
		}
	}
	return &rec, nil
}

func (s *LedgerService) DeleteOwnerData(ctx context.Context, recordID string) (err error) {
	defer func() { metrics.ObserveLedgerOp("delete_owner_data", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()

	owners, err := s.loadOwners(ctx)
	if err != nil {
		return err
	}
	i := indexOfOwner(owners, recordID)
	if i < 0 {
		return fmt.Errorf("%w: owner record %q", ErrNotFound, recordID)
	}
	syncID := owners[i].SyncID
	owners = append(owners[:i:i], owners[i+1:]...)
	if err := s.saveOwners(ctx, owners); err != nil {
		return err
	}

	if syncID == "" {
		return nil
	}
	bills, err := s.loadBills(ctx)
	if err != nil {
		log.Printf("[Ledger] owner record %s deleted, bill mirror left behind: %v", recordID, err)
		return err
	}
	kept := bills[:0:0]
	for _, b := range bills {
		if b.SyncID != syncID {
			kept = append(kept, b)
		}
	}
	if err := s.saveBills(ctx, kept); err != nil {
		log.Printf("[Ledger] owner record %s deleted, bill mirror left behind: %v", recordID, err)
		return err
	}
	return nil
}

func (s *LedgerService) DeleteAllOwnerData(ctx context.Context) (err error) {
	defer func() { metrics.ObserveLedgerOp("delete_all_owner_data", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveOwners(ctx, nil)
}

func (s *LedgerService) QueryOwnerData(ctx context.Context, f query.Filter, page, size int) (query.Page[models.OwnerRecord], error) {
	owners, err := s.loadOwners(ctx)
	if err != nil {
		return query.Page[models.OwnerRecord]{}, err
	}
	return query.Paginate(query.Apply(owners, f), page, size), nil
}

// ============ BOTH LEDGERS ============

// ClearAllData empties both collections. Settings are left alone.
func (s *LedgerService) ClearAllData(ctx context.Context) (err error) {
	defer func() { metrics.ObserveLedgerOp("clear_all_data", err) }()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveOwners(ctx, nil); err != nil {
		return err
	}
	return s.saveBills(ctx, nil)
}

// ReplaceAll overwrites both collections, owner data first.
func (s *LedgerService) ReplaceAll(ctx context.Context, owners []models.OwnerRecord, bills []models.TransportBill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveOwners(ctx, owners); err != nil {
		return err
	}
	if err := s.saveBills(ctx, bills); err != nil {
		log.Printf("[Ledger] owner data replaced but transport bills were not: %v", err)
		return err
	}
	return nil
}

// ConsistencyReport lists records without a mirror and syncIds used more than
// once within a collection.
type ConsistencyReport struct {
	OrphanTransportBills []string `json:"orphanTransportBills"`
	OrphanOwnerRecords   []string `json:"orphanOwnerRecords"`
	DuplicateSyncIDs     []string `json:"duplicateSyncIds"`
}

func (r ConsistencyReport) Consistent() bool {
	return len(r.OrphanTransportBills) == 0 && len(r.OrphanOwnerRecords) == 0 && len(r.DuplicateSyncIDs) == 0
}

// CheckConsistency inspects both collections without changing them.
func (s *LedgerService) CheckConsistency(ctx context.Context) (*ConsistencyReport, error) {
	bills, err := s.loadBills(ctx)
	if err != nil {
		return nil, err
	}
	owners, err := s.loadOwners(ctx)
	if err != nil {
		return nil, err
	}

	report := &ConsistencyReport{
		OrphanTransportBills: []string{},
		OrphanOwnerRecords:   []string{},
		DuplicateSyncIDs:     []string{},
	}
	billSyncs := map[string]int{}
	ownerSyncs := map[string]int{}
	for _, b := range bills {
		billSyncs[b.SyncID]++
	}
	for _, o := range owners {
		ownerSyncs[o.SyncID]++
	}

	seen := map[string]bool{}
	for _, b := range bills {
		if b.SyncID == "" || ownerSyncs[b.SyncID] == 0 {
			report.OrphanTransportBills = append(report.OrphanTransportBills, b.BillNumber)
		}
		if b.SyncID != "" && billSyncs[b.SyncID] > 1 && !seen[b.SyncID] {
			seen[b.SyncID] = true
			report.DuplicateSyncIDs = append(report.DuplicateSyncIDs, b.SyncID)
		}
	}
	for _, o := range owners {
		if o.SyncID == "" || billSyncs[o.SyncID] == 0 {
			report.OrphanOwnerRecords = append(report.OrphanOwnerRecords, o.RecordID)
		}
		if o.SyncID != "" && ownerSyncs[o.SyncID] > 1 && !seen[o.SyncID] {
			seen[o.SyncID] = true
			report.DuplicateSyncIDs = append(report.DuplicateSyncIDs, o.SyncID)
		}
	}
	return report, nil
}
