package models

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the fields a transport bill cannot be stored without.
func (b *TransportBill) Validate() error {
	if strings.TrimSpace(b.BillNumber) == "" {
		return errors.New("bill number is required")
	}
	if b.Date.IsZero() {
		return errors.New("date is required")
	}
	if !b.Status.Valid() {
		return fmt.Errorf("unknown status %q", b.Status)
	}
	return nil
}

// Validate checks the fields an owner record cannot be stored without.
func (o *OwnerRecord) Validate() error {
	if strings.TrimSpace(o.RecordID) == "" {
		return errors.New("record id is required")
	}
	if o.Date.IsZero() {
		return errors.New("date is required")
	}
	if !o.Status.Valid() {
		return fmt.Errorf("unknown status %q", o.Status)
	}
	return nil
}

// Normalize trims the primary key and canonicalizes the status, defaulting to pending.
func (b *TransportBill) Normalize() {
	b.BillNumber = strings.TrimSpace(b.BillNumber)
	b.Status = normalizeStatus(b.Status)
}

func (o *OwnerRecord) Normalize() {
	o.RecordID = strings.TrimSpace(o.RecordID)
	o.Status = normalizeStatus(o.Status)
}

func normalizeStatus(s BillStatus) BillStatus {
	if strings.TrimSpace(string(s)) == "" {
		return StatusPending
	}
	if st, ok := ParseStatus(string(s)); ok {
		return st
	}
	return s
}
