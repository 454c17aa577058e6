package models

import "time"

// TransportBill is a carrier invoice. BillNumber is user assigned and unique
// within the transport_bills collection.
type TransportBill struct {
	BillNumber         string     `json:"billNumber" bson:"billNumber"`
	UniqueID           string     `json:"uniqueId" bson:"uniqueId"`
	SyncID             string     `json:"syncId" bson:"syncId"`
	Date               time.Time  `json:"date" bson:"date"`
	MS                 string     `json:"ms" bson:"ms"`
	GSTNumber          string     `json:"gstNumber" bson:"gstNumber"`
	OtherDetail        string     `json:"otherDetail" bson:"otherDetail"`
	SRNumber           int        `json:"srNumber" bson:"srNumber"`
	LRNumber           int        `json:"lrNumber" bson:"lrNumber"`
	LRDate             *time.Time `json:"lrDate,omitempty" bson:"lrDate,omitempty"`
	From               string     `json:"from" bson:"from"`
	To                 string     `json:"to" bson:"to"`
	VehicleNo          string     `json:"vehicleNo" bson:"vehicleNo"`
	InvoiceNo          string     `json:"invoiceNo" bson:"invoiceNo"`
	ConsignorConsignee string     `json:"consignorConsignee" bson:"consignorConsignee"`
	HandlingCharges    float64    `json:"handlingCharges" bson:"handlingCharges"`
	Detention          float64    `json:"detention" bson:"detention"`
	Freight            float64    `json:"freight" bson:"freight"`
	Total              float64    `json:"total" bson:"total"`
	Status             BillStatus `json:"status" bson:"status"`
}
