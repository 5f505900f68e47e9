package request

import "construction_backoffice/internal/usecase"

type CreateVendorRequest struct {
	VendorName string `json:"vendor_name" binding:"required"`
}

type CreateSubcontractorRequest struct {
	SubName      string `json:"sub_name" binding:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

func (r CreateSubcontractorRequest) ToInput() usecase.CreateSubcontractorInput {
	return usecase.CreateSubcontractorInput{
		SubName:      r.SubName,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,
		ContactEmail: r.ContactEmail,
		Phone:        r.Phone,
	}
}
