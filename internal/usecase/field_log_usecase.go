package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/domain/identifier"
	"construction_backoffice/internal/domain/workflow"
	"construction_backoffice/internal/usecase/interfaces"
)

var (
	ErrModuleNotAccessible = errors.New("project modules not accessible in current status")
	ErrInvalidHours        = errors.New("invalid hours")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// IFieldLogUseCase records field paperwork (time, materials, sub-invoices)
// against a project. Every entry is gated on module visibility: the
// project must currently be APPROVED or IN_PROGRESS, checked on every
// call.
type IFieldLogUseCase interface {
	LogTime(ctx context.Context, input TimeLogInput, actingUser string) (entities.TimeLog, error)
	LogMaterialsReceipt(ctx context.Context, input MaterialsReceiptInput, actingUser string) (entities.MaterialsReceipt, error)
	LogSubInvoice(ctx context.Context, input SubInvoiceInput, actingUser string) (entities.SubInvoice, error)
}

type TimeLogInput struct {
	ProjectID    string
	WorkDate     string
	StartTime    string
	EndTime      string
	Hours        float64
	ForUserEmail string
}

type MaterialsReceiptInput struct {
	ProjectID     string
	VendorID      string
	VendorName    string
	Amount        float64
	ReceiptDocURL string
	ForUserEmail  string
}

type SubInvoiceInput struct {
	ProjectID     string
	SubID         string
	SubName       string
	InvoiceAmount float64
	InvoiceDocURL string
}

type FieldLogUseCase struct {
	timeRepo    interfaces.ITimeLogRepository
	receiptRepo interfaces.IMaterialsReceiptRepository
	invoiceRepo interfaces.ISubInvoiceRepository
	projectRepo interfaces.IProjectRepository
	activity    interfaces.IActivityLogRepository
	now         func() time.Time
}

var _ IFieldLogUseCase = (*FieldLogUseCase)(nil)

func NewFieldLogUseCase(
	timeRepo interfaces.ITimeLogRepository,
	receiptRepo interfaces.IMaterialsReceiptRepository,
	invoiceRepo interfaces.ISubInvoiceRepository,
	projectRepo interfaces.IProjectRepository,
	activity interfaces.IActivityLogRepository,
) *FieldLogUseCase {
	return &FieldLogUseCase{
		timeRepo:    timeRepo,
		receiptRepo: receiptRepo,
		invoiceRepo: invoiceRepo,
		projectRepo: projectRepo,
		activity:    activity,
		now:         time.Now,
	}
}

// openProject loads the project and checks module visibility.
func (u *FieldLogUseCase) openProject(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ProjectID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if !workflow.ModulesEnabled(p.Status) {
		return entities.Project{}, ErrModuleNotAccessible
	}
	return p, nil
}

func (u *FieldLogUseCase) LogTime(ctx context.Context, input TimeLogInput, actingUser string) (entities.TimeLog, error) {
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.TimeLog{}, ErrMissingActingUser
	}
	if input.Hours <= 0 {
		return entities.TimeLog{}, ErrInvalidHours
	}
	p, err := u.openProject(ctx, input.ProjectID)
	if err != nil {
		return entities.TimeLog{}, err
	}

	now := u.now().UTC()
	forUser := strings.TrimSpace(input.ForUserEmail)
	if forUser == "" {
		forUser = actingUser
	}
	t := entities.TimeLog{
		TimeLogID:      identifier.TimestampID("TL", now),
		ProjectID:      p.ProjectID,
		WorkDate:       input.WorkDate,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Hours:          input.Hours,
		SubmittingUser: actingUser,
		ForUserEmail:   forUser,
		CreatedOn:      now,
	}
	return u.timeRepo.Create(ctx, t)
}

func (u *FieldLogUseCase) LogMaterialsReceipt(ctx context.Context, input MaterialsReceiptInput, actingUser string) (entities.MaterialsReceipt, error) {
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.MaterialsReceipt{}, ErrMissingActingUser
	}
	if input.Amount <= 0 {
		return entities.MaterialsReceipt{}, ErrInvalidAmount
	}
	p, err := u.openProject(ctx, input.ProjectID)
	if err != nil {
		return entities.MaterialsReceipt{}, err
	}

	now := u.now().UTC()
	forUser := strings.TrimSpace(input.ForUserEmail)
	if forUser == "" {
		forUser = actingUser
	}
	r := entities.MaterialsReceipt{
		ReceiptID:      identifier.TimestampID("MATREC-", now),
		ProjectID:      p.ProjectID,
		VendorID:       input.VendorID,
		VendorName:     input.VendorName,
		Amount:         input.Amount,
		ReceiptDocURL:  input.ReceiptDocURL,
		SubmittingUser: actingUser,
		ForUserEmail:   forUser,
		CreatedOn:      now,
	}
	created, err := u.receiptRepo.Create(ctx, r)
	if err != nil {
		return entities.MaterialsReceipt{}, err
	}

	if err := recordActivity(ctx, u.activity, u.now().UTC(),
		entities.ActionMaterialsReceiptCreated, entities.ModuleMaterials,
		created.ReceiptID, actingUser,
		map[string]any{
			"projectId":  created.ProjectID,
			"vendorId":   created.VendorID,
			"vendorName": created.VendorName,
			"amount":     created.Amount,
		}, "", ""); err != nil {
		return entities.MaterialsReceipt{}, err
	}
	return created, nil
}

func (u *FieldLogUseCase) LogSubInvoice(ctx context.Context, input SubInvoiceInput, actingUser string) (entities.SubInvoice, error) {
	actingUser = strings.TrimSpace(actingUser)
	if actingUser == "" {
		return entities.SubInvoice{}, ErrMissingActingUser
	}
	if input.InvoiceAmount <= 0 {
		return entities.SubInvoice{}, ErrInvalidAmount
	}
	p, err := u.openProject(ctx, input.ProjectID)
	if err != nil {
		return entities.SubInvoice{}, err
	}

	now := u.now().UTC()
	i := entities.SubInvoice{
		InvoiceID:      identifier.TimestampID("SUBINV-", now),
		ProjectID:      p.ProjectID,
		ProjectName:    p.ProjectName,
		SubID:          input.SubID,
		SubName:        input.SubName,
		InvoiceAmount:  input.InvoiceAmount,
		InvoiceDocURL:  input.InvoiceDocURL,
		SubmittingUser: actingUser,
		CreatedOn:      now,
	}
	return u.invoiceRepo.Create(ctx, i)
}
