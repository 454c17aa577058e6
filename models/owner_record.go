package models

import "time"

// Advance is one of the three advance payments made to a lorry owner.
type Advance struct {
	Amount            float64    `json:"amount" bson:"amount"`
	Date              *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	TransferReference string     `json:"transferReference" bson:"transferReference"`
}

// OwnerRecord is a lorry-owner hire payment. RecordID is user assigned and
// unique within the owner_data collection.
type OwnerRecord struct {
	RecordID               string     `json:"recordId" bson:"recordId"`
	UniqueID               string     `json:"uniqueId" bson:"uniqueId"`
	SyncID                 string     `json:"syncId" bson:"syncId"`
	Date                   time.Time  `json:"date" bson:"date"`
	ContactNo              string     `json:"contactNo" bson:"contactNo"`
	VehicleNo              string     `json:"vehicleNo" bson:"vehicleNo"`
	From                   string     `json:"from" bson:"from"`
	To                     string     `json:"to" bson:"to"`
	OwnerNameAndAddress    string     `json:"ownerNameAndAddress" bson:"ownerNameAndAddress"`
	PANNo                  string     `json:"panNo" bson:"panNo"`
	DriverNameAndMobile    string     `json:"driverNameAndMobile" bson:"driverNameAndMobile"`
	LicenceNo              string     `json:"licenceNo" bson:"licenceNo"`
	ChassisNo              string     `json:"chassisNo" bson:"chassisNo"`
	EngineNo               string     `json:"engineNo" bson:"engineNo"`
	InsuranceCompany       string     `json:"insuranceCompany" bson:"insuranceCompany"`
	PolicyNo               string     `json:"policyNo" bson:"policyNo"`
	PolicyDate             *time.Time `json:"policyDate,omitempty" bson:"policyDate,omitempty"`
	SRNumber               int        `json:"srNumber" bson:"srNumber"`
	LRNumber               int        `json:"lrNumber" bson:"lrNumber"`
	Packages               int        `json:"packages" bson:"packages"`
	Description            string     `json:"description" bson:"description"`
	WeightKgs              float64    `json:"weightKgs" bson:"weightKgs"`
	Remarks                string     `json:"remarks" bson:"remarks"`
	BrokerName             string     `json:"brokerName" bson:"brokerName"`
	BrokerPANNo            string     `json:"brokerPanNo" bson:"brokerPanNo"`
	LorryHireAmount        float64    `json:"lorryHireAmount" bson:"lorryHireAmount"`
	AccountNo              string     `json:"accountNo" bson:"accountNo"`
	OtherCharges           float64    `json:"otherCharges" bson:"otherCharges"`
	TotalLorryHireRs       float64    `json:"totalLorryHireRs" bson:"totalLorryHireRs"`
	Advances               [3]Advance `json:"advances" bson:"advances"`
	BalanceAmount          float64    `json:"balanceAmount" bson:"balanceAmount"`
	DeductionAmount        float64    `json:"deductionAmount" bson:"deductionAmount"`
	FinalTransferReference string     `json:"finalTransferReference" bson:"finalTransferReference"`
	FinalDate              *time.Time `json:"finalDate,omitempty" bson:"finalDate,omitempty"`
	DeliveryDate           *time.Time `json:"deliveryDate,omitempty" bson:"deliveryDate,omitempty"`
	Status                 BillStatus `json:"status" bson:"status"`
}

// TotalAdvance sums the three advance slots.
func (o OwnerRecord) TotalAdvance() float64 {
	var sum float64
	for _, a := range o.Advances {
		sum += a.Amount
	}
	return sum
}
