// Package query filters, searches, sorts and pages an in-memory ledger collection.
package query

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Record is implemented by both ledger record types.
type Record interface {
	RecordDate() time.Time
	AmountValue() float64
	StatusValue() string
	SearchFields() []string
}

type SortKey string

const (
	SortNone       SortKey = ""
	SortDateDesc   SortKey = "date_desc"
	SortDateAsc    SortKey = "date_asc"
	SortAmountDesc SortKey = "amount_desc"
	SortAmountAsc  SortKey = "amount_asc"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortNone, SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
		return true
	}
	return false
}

// Filter holds the predicates of a query. Nil or empty fields do not exclude anything.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *float64
	MaxAmount *float64
	Status    string
	Search    string
	Sort      SortKey
}

// Apply returns the records matching every predicate of f, sorted by f.Sort.
// The input slice is never modified; ties keep their input order.
func Apply[R Record](records []R, f Filter) []R {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	status := strings.TrimSpace(f.Status)

	out := make([]R, 0, len(records))
	for _, r := range records {
		if !f.matchDate(r.RecordDate()) || !f.matchAmount(r.AmountValue()) {
			continue
		}
		if status != "" && !strings.EqualFold(strings.TrimSpace(r.StatusValue()), status) {
			continue
		}
		if q != "" && !matchSearch(r.SearchFields(), q) {
			continue
		}
		out = append(out, r)
	}

	if cmpFn := comparator[R](f.Sort); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

// A record without a date never falls inside a date range.
func (f Filter) matchDate(d time.Time) bool {
	if f.StartDate == nil && f.EndDate == nil {
		return true
	}
	if d.IsZero() {
		return false
	}
	if f.StartDate != nil && d.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && d.After(*f.EndDate) {
		return false
	}
	return true
}

func (f Filter) matchAmount(v float64) bool {
	if f.MinAmount != nil && v < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && v > *f.MaxAmount {
		return false
	}
	return true
}

func matchSearch(fields []string, q string) bool {
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func comparator[R Record](key SortKey) func(a, b R) int {
	switch key {
	case SortDateAsc:
		return func(a, b R) int { return a.RecordDate().Compare(b.RecordDate()) }
	case SortDateDesc:
		return func(a, b R) int { return b.RecordDate().Compare(a.RecordDate()) }
	case SortAmountAsc:
		return func(a, b R) int { return cmp.Compare(a.AmountValue(), b.AmountValue()) }
	case SortAmountDesc:
		return func(a, b R) int { return cmp.Compare(b.AmountValue(), a.AmountValue()) }
	}
	return nil
}
