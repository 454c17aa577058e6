package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"transportledger/query"
	"transportledger/report"
	"transportledger/utils"
)

// Ledger names accepted by the report and stats operations.
const (
	LedgerTransport = "transport"
	LedgerOwner     = "owner"
)

// ParseLedger accepts the short name or the collection name of a ledger.
func ParseLedger(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LedgerTransport, "transport-bills", "transport_bills":
		return LedgerTransport, nil
	case LedgerOwner, "owner-data", "owner_data":
		return LedgerOwner, nil
	}
	return "", fmt.Errorf("%w: unknown ledger %q", ErrValidation, name)
}

type ReportService struct {
	Ledger               *LedgerService
	FiscalYearStartMonth time.Month
}

func NewReportService(ledger *LedgerService, fyStartMonth time.Month) *ReportService {
	if fyStartMonth < time.January || fyStartMonth > time.December {
		fyStartMonth = time.April
	}
	return &ReportService{Ledger: ledger, FiscalYearStartMonth: fyStartMonth}
}

// GroupedReport is a filtered ledger split by one field.
type GroupedReport struct {
	Ledger  string                `json:"ledger"`
	GroupBy string                `json:"groupBy"`
	Groups  []report.GroupSummary `json:"groups"`
	Table   report.Table          `json:"-"`
}

// Report filters a ledger and groups it by groupBy. With no groupBy the table
// lists the matching records one per row.
func (s *ReportService) Report(ctx context.Context, ledger string, f query.Filter, groupBy string) (*GroupedReport, error) {
	ledger, err := ParseLedger(ledger)
	if err != nil {
		return nil, err
	}
	out := &GroupedReport{Ledger: ledger, GroupBy: groupBy}

	switch ledger {
	case LedgerTransport:
		bills, err := s.Ledger.GetAllTransportBills(ctx)
		if err != nil {
			return nil, err
		}
		bills = query.Apply(bills, f)
		groups := report.GroupBy(bills, groupBy)
		out.Groups = report.Summarize(groups)
		if groupBy == "" {
			out.Table = report.TransportBillTable("Transport Bills", bills)
		} else {
			out.Table = report.GroupTable("Transport Bills by "+groupBy, groupBy, groups)
		}
	case LedgerOwner:
		owners, err := s.Ledger.GetAllOwnerData(ctx)
		if err != nil {
			return nil, err
		}
		owners = query.Apply(owners, f)
		groups := report.GroupBy(owners, groupBy)
		out.Groups = report.Summarize(groups)
		if groupBy == "" {
			out.Table = report.OwnerRecordTable("Owner Records", owners)
		} else {
			out.Table = report.GroupTable("Owner Records by "+groupBy, groupBy, groups)
		}
	}
	return out, nil
}

// Stats is the dashboard summary of one fiscal year of a ledger.
type Stats struct {
	Ledger     string               `json:"ledger"`
	FiscalYear string               `json:"fiscalYear"`
	Status     report.StatusSummary `json:"status"`
	Top        []report.FieldCount  `json:"top"`
	TopField   string               `json:"topField"`
	Months     [12]string           `json:"months"`
	Histogram  [12]int              `json:"histogram"`
}

// FiscalYearLabel formats the fiscal year starting in startYear as "2024-25".
func FiscalYearLabel(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// CurrentFiscalYear returns the start year of the fiscal year containing now.
func (s *ReportService) CurrentFiscalYear(now time.Time) int {
	return utils.FiscalYearOf(now, s.FiscalYearStartMonth)
}

// FiscalYearFilter restricts f to the fiscal year starting in startYear,
// intersecting with any date bounds already set.
func (s *ReportService) FiscalYearFilter(f query.Filter, startYear int) query.Filter {
	start, end := utils.FiscalYear(startYear, s.FiscalYearStartMonth)
	if f.StartDate == nil || f.StartDate.Before(start) {
		f.StartDate = &start
	}
	if f.EndDate == nil || f.EndDate.After(end) {
		f.EndDate = &end
	}
	return f
}

// Stats counts statuses, the most frequent values of topField and records per
// month for the fiscal year starting in fyStartYear.
func (s *ReportService) Stats(ctx context.Context, ledger string, fyStartYear int, topField string, n int) (*Stats, error) {
	ledger, err := ParseLedger(ledger)
	if err != nil {
		return nil, err
	}
	if topField == "" {
		topField = "vehicleNo"
	}
	f := s.FiscalYearFilter(query.Filter{}, fyStartYear)
	start := *f.StartDate

	out := &Stats{Ledger: ledger, FiscalYear: FiscalYearLabel(fyStartYear), TopField: topField}
	for i := range out.Months {
		out.Months[i] = start.AddDate(0, i, 0).Format("Jan 2006")
	}

	switch ledger {
	case LedgerTransport:
		bills, err := s.Ledger.GetAllTransportBills(ctx)
		if err != nil {
			return nil, err
		}
		bills = query.Apply(bills, f)
		out.Status = report.StatusCounts(bills)
		out.Top = report.TopByFrequency(bills, topField, n)
		out.Histogram = report.MonthlyHistogram(bills, start)
	case LedgerOwner:
		owners, err := s.Ledger.GetAllOwnerData(ctx)
		if err != nil {
			return nil, err
		}
		owners = query.Apply(owners, f)
		out.Status = report.StatusCounts(owners)
		out.Top = report.TopByFrequency(owners, topField, n)
		out.Histogram = report.MonthlyHistogram(owners, start)
	}
	return out, nil
}
