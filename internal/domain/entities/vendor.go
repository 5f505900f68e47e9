package entities

import "time"

// Vendor is a materials vendor. VendorID format VEND-NNN, globally scoped.
type Vendor struct {
	VendorID   string    `json:"vendor_id"`
	VendorName string    `json:"vendor_name"`
	Status     string    `json:"status"`
	CreatedOn  time.Time `json:"created_on"`
	CreatedBy  string    `json:"created_by"`
}

// Subcontractor is a trade subcontractor. SubID format Sub-NNN, globally
// scoped.
type Subcontractor struct {
	SubID        string `json:"sub_id"`
	SubName      string `json:"sub_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}
