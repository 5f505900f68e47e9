package response

import (
	"time"

	"construction_backoffice/internal/domain/entities"
)

type CustomerResponse struct {
	CustomerID   string    `json:"customer_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	Status       string    `json:"status"`
	CreatedOn    time.Time `json:"created_on"`
	CreatedBy    string    `json:"created_by"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:   c.CustomerID,
		Name:         c.Name,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		Zip:          c.Zip,
		ContactEmail: c.ContactEmail,
		Phone:        c.Phone,
		Status:       string(c.Status),
		CreatedOn:    c.CreatedOn,
		CreatedBy:    c.CreatedBy,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}

// StatusChangeResponse reports an applied transition for any entity kind.
type StatusChangeResponse struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status"`
}
