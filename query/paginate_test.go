package query

import (
	"math"
	"reflect"
	"testing"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	testCases := []struct {
		name       string
		page, size int
		wantItems  []int
		wantPages  int
	}{
		{name: "first page", page: 1, size: 10, wantItems: items[0:10], wantPages: 3},
		{name: "last partial page", page: 3, size: 10, wantItems: items[20:23], wantPages: 3},
		{name: "past the end", page: 4, size: 10, wantItems: []int{}, wantPages: 3},
		{name: "page below one", page: 0, size: 10, wantItems: items[0:10], wantPages: 3},
		{name: "default size", page: 2, size: 0, wantItems: items[10:20], wantPages: 3},
		{name: "exact multiple", page: 1, size: 23, wantItems: items, wantPages: 1},
		{name: "largest page number", page: math.MaxInt, size: 10, wantItems: []int{}, wantPages: 3},
		{name: "large page and size", page: math.MaxInt / 2, size: math.MaxInt / 2, wantItems: []int{}, wantPages: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(items, tc.page, tc.size)
			if !reflect.DeepEqual(p.Items, tc.wantItems) {
				t.Errorf("Items = %v, want %v", p.Items, tc.wantItems)
			}
			if p.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantPages)
			}
			if p.Total != len(items) {
				t.Errorf("Total = %d, want %d", p.Total, len(items))
			}
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]string{}, 1, 10)
	if p.TotalPages != 0 || len(p.Items) != 0 {
		t.Errorf("Paginate(empty) = %+v", p)
	}
}

func TestPaginate_PagesCoverEverythingOnce(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 57} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		first := Paginate(items, 1, 7)
		var all []int
		for page := 1; page <= first.TotalPages; page++ {
			all = append(all, Paginate(items, page, 7).Items...)
		}
		if n == 0 {
			if len(all) != 0 {
				t.Errorf("n=0: got %v", all)
			}
			continue
		}
		if !reflect.DeepEqual(all, items) {
			t.Errorf("n=%d: concatenated pages = %v", n, all)
		}
	}
}
