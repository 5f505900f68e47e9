package entities

import "time"

// Field records are append-only rows logged against an open project.
// Their ids are wall-clock derived, not sequence allocated.

type TimeLog struct {
	TimeLogID      string    `json:"time_log_id"`
	ProjectID      string    `json:"project_id"`
	WorkDate       string    `json:"work_date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Hours          float64   `json:"hours"`
	SubmittingUser string    `json:"submitting_user"`
	ForUserEmail   string    `json:"for_user_email"`
	CreatedOn      time.Time `json:"created_on"`
}

type MaterialsReceipt struct {
	ReceiptID      string    `json:"receipt_id"`
	ProjectID      string    `json:"project_id"`
	VendorID       string    `json:"vendor_id"`
	VendorName     string    `json:"vendor_name"`
	Amount         float64   `json:"amount"`
	ReceiptDocURL  string    `json:"receipt_doc_url"`
	SubmittingUser string    `json:"submitting_user"`
	ForUserEmail   string    `json:"for_user_email"`
	CreatedOn      time.Time `json:"created_on"`
}

type SubInvoice struct {
	InvoiceID      string    `json:"invoice_id"`
	ProjectID      string    `json:"project_id"`
	ProjectName    string    `json:"project_name"`
	SubID          string    `json:"sub_id"`
	SubName        string    `json:"sub_name"`
	InvoiceAmount  float64   `json:"invoice_amount"`
	InvoiceDocURL  string    `json:"invoice_doc_url"`
	SubmittingUser string    `json:"submitting_user"`
	CreatedOn      time.Time `json:"created_on"`
}
