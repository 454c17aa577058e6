package models

import "strings"

type BillStatus string

const (
	StatusPending   BillStatus = "pending"
	StatusInTransit BillStatus = "in-transit"
	StatusDelivered BillStatus = "delivered"
	StatusCompleted BillStatus = "completed"
	StatusCancelled BillStatus = "cancelled"
)

// Statuses lists every status in display order.
var Statuses = []BillStatus{
	StatusPending,
	StatusInTransit,
	StatusDelivered,
	StatusCompleted,
	StatusCancelled,
}

// ParseStatus matches s against the status list, ignoring case and surrounding spaces.
func ParseStatus(s string) (BillStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

func (s BillStatus) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}
