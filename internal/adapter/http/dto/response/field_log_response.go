package response

import (
	"time"

	"construction_backoffice/internal/domain/entities"
)

type TimeLogResponse struct {
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

func FromTimeLog(t entities.TimeLog) TimeLogResponse {
	return TimeLogResponse{
		TimeLogID:      t.TimeLogID,
		ProjectID:      t.ProjectID,
		WorkDate:       t.WorkDate,
		StartTime:      t.StartTime,
		EndTime:        t.EndTime,
		Hours:          t.Hours,
		SubmittingUser: t.SubmittingUser,
		ForUserEmail:   t.ForUserEmail,
		CreatedOn:      t.CreatedOn,
	}
}

type MaterialsReceiptResponse struct {
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

func FromMaterialsReceipt(m entities.MaterialsReceipt) MaterialsReceiptResponse {
	return MaterialsReceiptResponse{
		ReceiptID:      m.ReceiptID,
		ProjectID:      m.ProjectID,
		VendorID:       m.VendorID,
		VendorName:     m.VendorName,
		Amount:         m.Amount,
		ReceiptDocURL:  m.ReceiptDocURL,
		SubmittingUser: m.SubmittingUser,
		ForUserEmail:   m.ForUserEmail,
		CreatedOn:      m.CreatedOn,
	}
}

type SubInvoiceResponse struct {
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

func FromSubInvoice(s entities.SubInvoice) SubInvoiceResponse {
	return SubInvoiceResponse{
		InvoiceID:      s.InvoiceID,
		ProjectID:      s.ProjectID,
		ProjectName:    s.ProjectName,
		SubID:          s.SubID,
		SubName:        s.SubName,
		InvoiceAmount:  s.InvoiceAmount,
		InvoiceDocURL:  s.InvoiceDocURL,
		SubmittingUser: s.SubmittingUser,
		CreatedOn:      s.CreatedOn,
	}
}
