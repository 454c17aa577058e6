package report

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"transportledger/models"
	"transportledger/query"
)

type StatusSummary struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// StatusCounts counts records per status. Every known status has an entry;
// records with an unknown status only add to Total.
func StatusCounts[R query.Record](records []R) StatusSummary {
	s := StatusSummary{Total: len(records), Counts: map[string]int{}}
	for _, st := range models.Statuses {
		s.Counts[string(st)] = 0
	}
	for _, r := range records {
		k := strings.ToLower(strings.TrimSpace(r.StatusValue()))
		if _, ok := s.Counts[k]; ok {
			s.Counts[k]++
		}
	}
	return s
}

type FieldCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TopByFrequency returns the n most frequent non-empty values of a field.
// Equal counts keep the order in which the values were first seen.
func TopByFrequency[R any](records []R, key string, n int) []FieldCount {
	if n <= 0 {
		return []FieldCount{}
	}
	var counts []FieldCount
	index := map[string]int{}
	for _, r := range records {
		v := FieldValue(r, key)
		if v == "" {
			continue
		}
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, FieldCount{Value: v})
		}
		counts[i].Count++
	}
	slices.SortStableFunc(counts, func(a, b FieldCount) int { return cmp.Compare(b.Count, a.Count) })
	if len(counts) > n {
		counts = counts[:n]
	}
	if counts == nil {
		counts = []FieldCount{}
	}
	return counts
}

// MonthlyHistogram counts records per month over the twelve months starting
// at fyStart. Bucket 0 is the month of fyStart. Months are taken in fyStart's
// location; records outside the window or without a date are ignored.
func MonthlyHistogram[R query.Record](records []R, fyStart time.Time) [12]int {
	var buckets [12]int
	loc := fyStart.Location()
	for _, r := range records {
		d := r.RecordDate()
		if d.IsZero() {
			continue
		}
		d = d.In(loc)
		i := (d.Year()-fyStart.Year())*12 + int(d.Month()) - int(fyStart.Month())
		if i >= 0 && i < 12 {
			buckets[i]++
		}
	}
	return buckets
}
