package response

import (
	"time"

	"construction_backoffice/internal/domain/entities"
)

type VendorResponse struct {
	VendorID   string    `json:"vendor_id"`
	VendorName string    `json:"vendor_name"`
	Status     string    `json:"status"`
	CreatedOn  time.Time `json:"created_on"`
	CreatedBy  string    `json:"created_by"`
}

func FromVendor(v entities.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:   v.VendorID,
		VendorName: v.VendorName,
		Status:     v.Status,
		CreatedOn:  v.CreatedOn,
		CreatedBy:  v.CreatedBy,
	}
}

func FromVendors(vendors []entities.Vendor) []VendorResponse {
	out := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, FromVendor(v))
	}
	return out
}

type SubcontractorResponse struct {
	SubID        string `json:"sub_id"`
	SubName      string `json:"sub_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

func FromSubcontractor(s entities.Subcontractor) SubcontractorResponse {
	return SubcontractorResponse{
		SubID:        s.SubID,
		SubName:      s.SubName,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Zip:          s.Zip,
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
	}
}

func FromSubcontractors(subs []entities.Subcontractor) []SubcontractorResponse {
	out := make([]SubcontractorResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubcontractor(s))
	}
	return out
}
