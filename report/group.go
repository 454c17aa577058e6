package report

import (
	"github.com/shopspring/decimal"

	"transportledger/query"
)

// BlankGroup collects records whose grouping field is empty.
const BlankGroup = "(Blank)"

// AllGroup is the key of the single group produced for an empty field name.
const AllGroup = "All"

type Group[R any] struct {
	Key     string
	Records []R
}

// GroupBy partitions records by the text of one field. Groups appear in the
// order their key is first seen, and records keep their input order.
func GroupBy[R any](records []R, key string) []Group[R] {
	if key == "" {
		return []Group[R]{{Key: AllGroup, Records: append([]R(nil), records...)}}
	}
	var groups []Group[R]
	index := map[string]int{}
	for _, r := range records {
		k := FieldValue(r, key)
		if k == "" {
			k = BlankGroup
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[R]{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// Subtotal sums the amounts of records in exact decimal arithmetic.
func Subtotal[R query.Record](records []R) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(decimal.NewFromFloat(r.AmountValue()))
	}
	return sum
}

type GroupSummary struct {
	Key   string          `json:"key"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Summarize reduces each group to its record count and amount subtotal.
func Summarize[R query.Record](groups []Group[R]) []GroupSummary {
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupSummary{Key: g.Key, Count: len(g.Records), Total: Subtotal(g.Records)})
	}
	return out
}
