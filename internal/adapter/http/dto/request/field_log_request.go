package request

import "construction_backoffice/internal/usecase"

// Field log payloads omit project_id; it comes from the route path.

type TimeLogRequest struct {
	WorkDate     string  `json:"work_date" binding:"required"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Hours        float64 `json:"hours" binding:"required"`
	ForUserEmail string  `json:"for_user_email"`
}

func (r TimeLogRequest) ToInput(projectID string) usecase.TimeLogInput {
	return usecase.TimeLogInput{
		ProjectID:    projectID,
		WorkDate:     r.WorkDate,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Hours:        r.Hours,
		ForUserEmail: r.ForUserEmail,
	}
}

type MaterialsReceiptRequest struct {
	VendorID      string  `json:"vendor_id"`
	VendorName    string  `json:"vendor_name"`
	Amount        float64 `json:"amount" binding:"required"`
	ReceiptDocURL string  `json:"receipt_doc_url"`
	ForUserEmail  string  `json:"for_user_email"`
}

func (r MaterialsReceiptRequest) ToInput(projectID string) usecase.MaterialsReceiptInput {
	return usecase.MaterialsReceiptInput{
		ProjectID:     projectID,
		VendorID:      r.VendorID,
		VendorName:    r.VendorName,
		Amount:        r.Amount,
		ReceiptDocURL: r.ReceiptDocURL,
		ForUserEmail:  r.ForUserEmail,
	}
}

type SubInvoiceRequest struct {
	SubID         string  `json:"sub_id"`
	SubName       string  `json:"sub_name"`
	InvoiceAmount float64 `json:"invoice_amount" binding:"required"`
	InvoiceDocURL string  `json:"invoice_doc_url"`
}

func (r SubInvoiceRequest) ToInput(projectID string) usecase.SubInvoiceInput {
	return usecase.SubInvoiceInput{
		ProjectID:     projectID,
		SubID:         r.SubID,
		SubName:       r.SubName,
		InvoiceAmount: r.InvoiceAmount,
		InvoiceDocURL: r.InvoiceDocURL,
	}
}
