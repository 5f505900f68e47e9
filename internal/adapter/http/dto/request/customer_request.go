package request

import "construction_backoffice/internal/usecase"

type CreateCustomerRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

func (r CreateCustomerRequest) ToInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:         r.Name,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,
		ContactEmail: r.ContactEmail,
		Phone:        r.Phone,
	}
}

// UpdateStatusRequest is the shared payload for every status transition
// endpoint (customers, projects, estimates).
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
