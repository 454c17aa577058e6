package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"transportledger/models"
	"transportledger/query"
	"transportledger/repository"
)

func TestLedger_TransportBillLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLedger(t)

	added, err := svc.AddTransportBill(ctx, models.TransportBill{
		BillNumber: "T1",
		Date:       day("2024-05-01"),
		Total:      5000,
		Status:     "pending",
		VehicleNo:  "MH12AB1234",
		From:       "Pune",
		To:         "Mumbai",
		SRNumber:   1,
		LRNumber:   1,
	})
	if err != nil {
		t.Fatalf("AddTransportBill() error = %v", err)
	}
	if added.SyncID == "" || added.UniqueID == "" || added.SyncID == added.UniqueID {
		t.Fatalf("ids not assigned: uniqueId=%q syncId=%q", added.UniqueID, added.SyncID)
	}

	owners, err := svc.GetAllOwnerData(ctx)
	if err != nil {
		t.Fatalf("GetAllOwnerData() error = %v", err)
	}
	if len(owners) != 1 {
		t.Fatalf("owner records = %d, want 1", len(owners))
	}
	o := owners[0]
	if o.SyncID != added.SyncID || o.RecordID != "T1" || o.VehicleNo != "MH12AB1234" ||
		o.TotalLorryHireRs != 0 || o.Status != models.StatusPending ||
		o.From != "Pune" || o.To != "Mumbai" || o.SRNumber != 1 || o.LRNumber != 1 ||
		!o.Date.Equal(day("2024-05-01")) {
		t.Errorf("owner mirror = %+v", o)
	}

	updated := *added
	updated.Status = "delivered"
	if _, err := svc.UpdateTransportBill(ctx, updated); err != nil {
		t.Fatalf("UpdateTransportBill() error = %v", err)
	}
	mirror, err := svc.GetOwnerData(ctx, "T1")
	if err != nil {
		t.Fatalf("GetOwnerData() error = %v", err)
	}
	if mirror.Status != models.StatusDelivered {
		t.Errorf("mirror status = %q, want delivered", mirror.Status)
	}

	if err := svc.DeleteTransportBill(ctx, "T1"); err != nil {
		t.Fatalf("DeleteTransportBill() error = %v", err)
	}
	bills, _ := svc.GetAllTransportBills(ctx)
	owners, _ = svc.GetAllOwnerData(ctx)
	if len(bills) != 0 || len(owners) != 0 {
		t.Errorf("after delete: %d bills, %d owner records", len(bills), len(owners))
	}
}

func TestLedger_AddOwnerCreatesBillSkeleton(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLedger(t)

	rec, err := svc.AddOwnerData(ctx, models.OwnerRecord{
		RecordID:         "O7",
		Date:             day("2024-07-10"),
		VehicleNo:        "GJ01XY9999",
		From:             "Surat",
		To:               "Delhi",
		SRNumber:         4,
		LRNumber:         9,
		TotalLorryHireRs: 22000,
		BrokerName:       "Sai Roadlines",
		Status:           "In-Transit",
	})
	if err != nil {
		t.Fatalf("AddOwnerData() error = %v", err)
	}
	if rec.Status != models.StatusInTransit {
		t.Errorf("status = %q, want canonical in-transit", rec.Status)
	}

	bills, _ := svc.GetAllTransportBills(ctx)
	if len(bills) != 1 {
		t.Fatalf("bills = %d, want 1", len(bills))
	}
	b := bills[0]
	want := models.TransportBill{
		BillNumber: "O7",
		UniqueID:   b.UniqueID,
		SyncID:     rec.SyncID,
		Date:       rec.Date,
		LRDate:     b.LRDate,
		From:       "Surat",
		To:         "Delhi",
		VehicleNo:  "GJ01XY9999",
		SRNumber:   4,
		LRNumber:   9,
		Status:     models.StatusPending,
	}
	if !reflect.DeepEqual(b, want) {
		t.Errorf("bill skeleton = %+v, want %+v", b, want)
	}
	if b.LRDate == nil || !b.LRDate.Equal(rec.Date) {
		t.Errorf("lrDate = %v, want %v", b.LRDate, rec.Date)
	}
}

func TestLedger_UpdatePropagatesOnlySharedFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLedger(t)

	bill, err := svc.AddTransportBill(ctx, models.TransportBill{BillNumber: "B1", Date: day("2024-05-01"), From: "Pune", To: "Goa"})
	if err != nil {
		t.Fatal(err)
	}
	owner, _ := svc.GetOwnerData(ctx, "B1")
	owner.OwnerNameAndAddress = "Ramesh Patil"
	owner.TotalLorryHireRs = 18000
	if _, err := svc.UpdateOwnerData(ctx, *owner); err != nil {
		t.Fatalf("UpdateOwnerData() error = %v", err)
	}

	changed := *bill
	changed.Date = day("2024-05-03")
	changed.From = "Nashik"
	changed.To = "Nagpur"
	changed.VehicleNo = "MH15ZZ0001"
	changed.SRNumber = 11
	changed.LRNumber = 12
	changed.Status = models.StatusCompleted
	changed.Total = 99999
	changed.MS = "Acme Traders"
	if _, err := svc.UpdateTransportBill(ctx, changed); err != nil {
		t.Fatalf("UpdateTransportBill() error = %v", err)
	}

	got, _ := svc.GetOwnerData(ctx, "B1")
	want := *owner
	want.Date = changed.Date
	want.From = "Nashik"
	want.To = "Nagpur"
	want.VehicleNo = "MH15ZZ0001"
	want.SRNumber = 11
	want.LRNumber = 12
	want.Status = models.StatusCompleted
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("owner after update = %+v\nwant %+v", *got, want)
	}

	// and the other direction
	got.BalanceAmount = 500
	got.Status = models.StatusCancelled
	got.To = "Pune"
	if _, err := svc.UpdateOwnerData(ctx, *got); err != nil {
		t.Fatal(err)
	}
	b, _ := svc.GetTransportBill(ctx, "B1")
	if b.Status != models.StatusCancelled || b.To != "Pune" || b.Total != 99999 || b.MS != "Acme Traders" {
		t.Errorf("bill after owner update = %+v", b)
	}
}

func TestLedger_UpdateKeepsIdentifiers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLedger(t)

	bill, _ := svc.AddTransportBill(ctx, models.TransportBill{BillNumber: "B1", Date: day("2024-05-01")})
	changed := *bill
	changed.UniqueID = "forged"
	changed.SyncID = "forged"
	got, err := svc.UpdateTransportBill(ctx, changed)
	if err != nil {
		t.Fatal(err)
	}
	if got.UniqueID != bill.UniqueID || got.SyncID != bill.SyncID {
		t.Errorf("ids changed to %q/%q", got.UniqueID, got.SyncID)
	}
	if o, _ := svc.GetOwnerData(ctx, "B1"); o.SyncID != bill.SyncID {
		t.Errorf("mirror syncId = %q, want %q", o.SyncID, bill.SyncID)
	}
}

func TestLedger_DeleteOwnerCascades(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLedger(t)

	for _, n := range []string{"A", "B", "C"} {
		if _, err := svc.AddOwnerData(ctx, models.OwnerRecord{RecordID: n, Date: day("2024-06-01")}); err != nil {
			t.Fatal(err)
		}
	}
	if err := svc.DeleteOwnerData(ctx, "B"); err != nil {
		t.Fatalf("DeleteOwnerData() error = %v", err)
	}
	bills, _ := svc.GetAllTransportBills(ctx)
	owners, _ := svc.GetAllOwnerData(ctx)
	var billNos, ownerIDs []string
	for _, b := range bills {
		billNos = append(billNos, b.BillNumber)
	}
	for _, o := range owners {
		ownerIDs = append(ownerIDs, o.RecordID)
	}
	if !reflect.DeepEqual(billNos, []string{"A", "C"}) || !reflect.DeepEqual(ownerIDs, []string{"A", "C"}) {
		t.Errorf("bills %v, owners %v; want [A C] for both", billNos, ownerIDs)
	}
}

func TestLedger_Errors(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestLedger(t)
	if _, err := svc.AddTransportBill(ctx, models.TransportBill{BillNumber: "T1", Date: day("2024-05-01")}); err != nil {
		t.Fatal(err)
	}
	writesBefore := len(store.writes())

	testCases := []struct {
		name string
		run  func() error
		want error
	}{
		{
			name: "duplicate bill number",
			run: func() error {
				_, err := svc.AddTransportBill(ctx, models.TransportBill{BillNumber: " T1 ", Date: day("2024-05-02")})
				return err
			},
			want: ErrValidation,
		},
		{
			name: "owner id taken by a bill mirror",
			run: func() error {
				_, err := svc.AddOwnerData(ctx, models.OwnerRecord{RecordID: "T1", Date: day("2024-05-02")})
				return err
			},
			want: ErrValidation,
		},
		{
			name: "missing bill number",
			run: func() error {
				_, err := svc.AddTransportBill(ctx, models.TransportBill{Date: day("2024-05-02")})
				return err
			},
			want: ErrValidation,
		},
		{
			name: "missing date",
			run: func() error {
				_, err := svc.AddOwnerData(ctx, models.OwnerRecord{RecordID: "X"})
				return err
			},
			want: ErrValidation,
		},
		{
			name: "unknown status",
			run: func() error {
				_, err := svc.AddTransportBill(ctx, models.TransportBill{BillNumber: "T9", Date: day("2024-05-02"), Status: "lost"})
				return err
			},
			want: ErrValidation,
		},
		{
			name: "update unknown bill",
			run: func() error {
				_, err := svc.UpdateTransportBill(ctx, models.TransportBill{BillNumber: "nope", Date: day("2024-05-02")})
				return err
			},
			want: ErrNotFound,
		},
		{
			name: "delete unknown owner record",
			run:  func() error { return svc.DeleteOwnerData(ctx, "nope") },
			want: ErrNotFound,
		},
		{
			name: "get unknown bill",
			run: func() error {
				_, err := svc.GetTransportBill(ctx, "nope")
				return err
			},
			want: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}
	if got := len(store.writes()); got != writesBefore {
		t.Errorf("failed operations wrote %d times", got-writesBefore)
	}
}

func TestLedger_PersistenceFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("load failure", func(t *testing.T) {
		svc, store := newTestLedger(t)
		store.failGet[repository.TransportBillsKey] = true
		_, err := svc.GetAllTransportBills(ctx)
		if !errors.Is(err, ErrPersistence) || !errors.Is(err, errStoreDown) {
			t.Errorf("error = %v, want persistence failure", err)
		}
	})

	t.Run("mirror write failure leaves an orphan", func(t *testing.T) {
		svc, store := newTestLedger(t)
		store.failSet[repository.OwnerDataKey] = true
		_, err := svc.AddTransportBill(ctx, models.TransportBill{BillNumber: "T1", Date: day("2024-05-01")})
		if KindOf(err) != KindPersistence {
			t.Fatalf("error = %v, want persistence failure", err)
		}
		delete(store.failSet, repository.OwnerDataKey)

		report, err := svc.CheckConsistency(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(report.OrphanTransportBills, []string{"T1"}) || report.Consistent() {
			t.Errorf("report = %+v, want T1 orphaned", report)
		}
	})
}

func TestLedger_CorruptCollectionReadsEmpty(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestLedger(t)
	if err := store.Set(ctx, repository.TransportBillsKey, "{not json"); err != nil {
		t.Fatal(err)
	}
	bills, err := svc.GetAllTransportBills(ctx)
	if err != nil || len(bills) != 0 {
		t.Errorf("GetAllTransportBills() = %v, %v; want empty", bills, err)
	}
	if _, err := svc.AddTransportBill(ctx, models.TransportBill{BillNumber: "T1", Date: day("2024-05-01")}); err != nil {
		t.Errorf("AddTransportBill() over corrupt data error = %v", err)
	}
}

func TestLedger_DeleteAllAndClear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLedger(t)
	for _, n := range []string{"A", "B"} {
		if _, err := svc.AddTransportBill(ctx, models.TransportBill{BillNumber: n, Date: day("2024-06-01")}); err != nil {
			t.Fatal(err)
		}
	}

	if err := svc.DeleteAllTransportBills(ctx); err != nil {
		t.Fatal(err)
	}
	bills, _ := svc.GetAllTransportBills(ctx)
	owners, _ := svc.GetAllOwnerData(ctx)
	if len(bills) != 0 || len(owners) != 2 {
		t.Errorf("after DeleteAllTransportBills: %d bills, %d owners", len(bills), len(owners))
	}

	if err := svc.ClearAllData(ctx); err != nil {
		t.Fatal(err)
	}
	owners, _ = svc.GetAllOwnerData(ctx)
	if len(owners) != 0 {
		t.Errorf("after ClearAllData: %d owners", len(owners))
	}
}

func TestLedger_Query(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLedger(t)
	for i, n := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		bill := models.TransportBill{BillNumber: n, Date: day("2024-06-01").AddDate(0, 0, i), Total: float64(100 * (i + 1))}
		if _, err := svc.AddTransportBill(ctx, bill); err != nil {
			t.Fatal(err)
		}
	}
	page, err := svc.QueryTransportBills(ctx, query.Filter{Sort: query.SortAmountDesc}, 2, query.DefaultPageSize)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, b := range page.Items {
		got = append(got, b.BillNumber)
	}
	if !reflect.DeepEqual(got, []string{"B", "A"}) || page.TotalPages != 2 || page.Total != 12 {
		t.Errorf("page 2 = %v (pages %d, total %d)", got, page.TotalPages, page.Total)
	}

	owners, err := svc.QueryOwnerData(ctx, query.Filter{Search: "k"}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if owners.Total != 1 || owners.Items[0].RecordID != "K" {
		t.Errorf("owner search = %+v", owners)
	}
}

func TestLedger_CheckConsistency(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestLedger(t)
	if _, err := svc.AddTransportBill(ctx, models.TransportBill{BillNumber: "A", Date: day("2024-06-01")}); err != nil {
		t.Fatal(err)
	}
	report, err := svc.CheckConsistency(ctx)
	if err != nil || !report.Consistent() {
		t.Fatalf("fresh ledger report = %+v, %v", report, err)
	}

	bills, _ := svc.GetAllTransportBills(ctx)
	dup := models.TransportBill{BillNumber: "A2", SyncID: bills[0].SyncID, Date: day("2024-06-02")}
	loose := models.OwnerRecord{RecordID: "Z", Date: day("2024-06-03")}
	repo := repository.NewLedgerRepo(store)
	if err := repo.SaveTransportBills(ctx, append(bills, dup)); err != nil {
		t.Fatal(err)
	}
	owners, _ := svc.GetAllOwnerData(ctx)
	if err := repo.SaveOwnerData(ctx, append(owners, loose)); err != nil {
		t.Fatal(err)
	}

	report, err = svc.CheckConsistency(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := &ConsistencyReport{
		OrphanTransportBills: []string{},
		OrphanOwnerRecords:   []string{"Z"},
		DuplicateSyncIDs:     []string{bills[0].SyncID},
	}
	if !reflect.DeepEqual(report, want) {
		t.Errorf("report = %+v, want %+v", report, want)
	}
}
