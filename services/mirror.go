package services

import "transportledger/models"

func hasOwnerSync(owners []models.OwnerRecord, syncID string) bool {
	return indexOfOwnerSync(owners, syncID) >= 0
}

func hasBillSync(bills []models.TransportBill, syncID string) bool {
	return indexOfBillSync(bills, syncID) >= 0
}

// The first record with a matching syncId is the mirror.
func indexOfOwnerSync(owners []models.OwnerRecord, syncID string) int {
	for i := range owners {
		if owners[i].SyncID == syncID {
			return i
		}
	}
	return -1
}

func indexOfBillSync(bills []models.TransportBill, syncID string) int {
	for i := range bills {
		if bills[i].SyncID == syncID {
			return i
		}
	}
	return -1
}

// ownerSkeleton is the owner record created alongside a new transport bill.
// It shares the bill's number, route, vehicle and counters; everything
// financial starts at zero.
func ownerSkeleton(b models.TransportBill, uniqueID string) models.OwnerRecord {
	return models.OwnerRecord{
		RecordID:  b.BillNumber,
		UniqueID:  uniqueID,
		SyncID:    b.SyncID,
		Date:      b.Date,
		VehicleNo: b.VehicleNo,
		From:      b.From,
		To:        b.To,
		SRNumber:  b.SRNumber,
		LRNumber:  b.LRNumber,
		Status:    models.StatusPending,
	}
}

func billSkeleton(o models.OwnerRecord, uniqueID string) models.TransportBill {
	date := o.Date
	return models.TransportBill{
		BillNumber: o.RecordID,
		UniqueID:   uniqueID,
		SyncID:     o.SyncID,
		Date:       o.Date,
		LRDate:     &date,
		From:       o.From,
		To:         o.To,
		VehicleNo:  o.VehicleNo,
		SRNumber:   o.SRNumber,
		LRNumber:   o.LRNumber,
		Status:     models.StatusPending,
	}
}

// copyBillShared copies the fields both ledgers hold onto the owner record.
func copyBillShared(dst *models.OwnerRecord, b models.TransportBill) {
	dst.Date = b.Date
	dst.From = b.From
	dst.To = b.To
	dst.VehicleNo = b.VehicleNo
	dst.SRNumber = b.SRNumber
	dst.LRNumber = b.LRNumber
	dst.Status = b.Status
}

func copyOwnerShared(dst *models.TransportBill, o models.OwnerRecord) {
	dst.Date = o.Date
	dst.From = o.From
	dst.To = o.To
	dst.VehicleNo = o.VehicleNo
	dst.SRNumber = o.SRNumber
	dst.LRNumber = o.LRNumber
	dst.Status = o.Status
}
