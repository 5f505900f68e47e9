package entities

import "time"

// CustomerStatus represents the lifecycle of a customer account.
//
// Domain notes:
//   - Customers are created PENDING and activated once vetted.
//   - ARCHIVED customers can be reactivated; there is no terminal state.
type CustomerStatus string

const (
	CustomerStatusPending  CustomerStatus = "PENDING"
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
	CustomerStatusArchived CustomerStatus = "ARCHIVED"
)

// Customer is a construction customer persisted in DynamoDB.
//
// Storage model:
//   - PK: customer_id (format YYYY-NNN, allocated per calendar year)
//
// CustomerID is immutable once allocated; only Status and contact fields
// change afterwards.
type Customer struct {
	CustomerID   string         `json:"customer_id"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	Zip          string         `json:"zip"`
	ContactEmail string         `json:"contact_email"`
	Phone        string         `json:"phone"`
	Status       CustomerStatus `json:"status"`
	CreatedOn    time.Time      `json:"created_on"`
	CreatedBy    string         `json:"created_by"`
}
