package repository

import (
	"context"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultTimeLogsTableName          = "time_logs"
	defaultMaterialsReceiptsTableName = "materials_receipts"
	defaultSubInvoicesTableName       = "sub_invoices"
)

// Field-record repositories are append-only: one PutItem each, no reads,
// no updates. Their wall-clock ids make collisions unlikely; the
// conditional put still guards against clobbering an existing row.

type timeLogItem struct {
	TimeLogID      string  `dynamodbav:"time_log_id"`
	ProjectID      string  `dynamodbav:"project_id"`
	WorkDate       string  `dynamodbav:"work_date"`
	StartTime      string  `dynamodbav:"start_time"`
	EndTime        string  `dynamodbav:"end_time"`
	Hours          float64 `dynamodbav:"hours"`
	SubmittingUser string  `dynamodbav:"submitting_user"`
	ForUserEmail   string  `dynamodbav:"for_user_email"`
	CreatedOn      string  `dynamodbav:"created_on"`
}

type materialsReceiptItem struct {
	ReceiptID      string  `dynamodbav:"receipt_id"`
	ProjectID      string  `dynamodbav:"project_id"`
	VendorID       string  `dynamodbav:"vendor_id"`
	VendorName     string  `dynamodbav:"vendor_name"`
	Amount         float64 `dynamodbav:"amount"`
	ReceiptDocURL  string  `dynamodbav:"receipt_doc_url"`
	SubmittingUser string  `dynamodbav:"submitting_user"`
	ForUserEmail   string  `dynamodbav:"for_user_email"`
	CreatedOn      string  `dynamodbav:"created_on"`
}

type subInvoiceItem struct {
	InvoiceID      string  `dynamodbav:"invoice_id"`
	ProjectID      string  `dynamodbav:"project_id"`
	ProjectName    string  `dynamodbav:"project_name"`
	SubID          string  `dynamodbav:"sub_id"`
	SubName        string  `dynamodbav:"sub_name"`
	InvoiceAmount  float64 `dynamodbav:"invoice_amount"`
	InvoiceDocURL  string  `dynamodbav:"invoice_doc_url"`
	SubmittingUser string  `dynamodbav:"submitting_user"`
	CreatedOn      string  `dynamodbav:"created_on"`
}

type TimeLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeLogRepository = (*TimeLogDynamoRepository)(nil)

func NewTimeLogDynamoRepository(ddb *dynamodb.Client) *TimeLogDynamoRepository {
	return &TimeLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_LOGS_TABLE", defaultTimeLogsTableName),
	}
}

func (r *TimeLogDynamoRepository) Create(ctx context.Context, t entities.TimeLog) (entities.TimeLog, error) {
	av, err := attributevalue.MarshalMap(timeLogItem{
		TimeLogID:      t.TimeLogID,
		ProjectID:      t.ProjectID,
		WorkDate:       t.WorkDate,
		StartTime:      t.StartTime,
		EndTime:        t.EndTime,
		Hours:          t.Hours,
		SubmittingUser: t.SubmittingUser,
		ForUserEmail:   t.ForUserEmail,
		CreatedOn:      formatTime(t.CreatedOn),
	})
	if err != nil {
		return entities.TimeLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "time_log_id",
		},
	})
	if err != nil {
		return entities.TimeLog{}, conditionalPutErr(err)
	}
	return t, nil
}

type MaterialsReceiptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialsReceiptRepository = (*MaterialsReceiptDynamoRepository)(nil)

func NewMaterialsReceiptDynamoRepository(ddb *dynamodb.Client) *MaterialsReceiptDynamoRepository {
	return &MaterialsReceiptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_RECEIPTS_TABLE", defaultMaterialsReceiptsTableName),
	}
}

func (r *MaterialsReceiptDynamoRepository) Create(ctx context.Context, m entities.MaterialsReceipt) (entities.MaterialsReceipt, error) {
	av, err := attributevalue.MarshalMap(materialsReceiptItem{
		ReceiptID:      m.ReceiptID,
		ProjectID:      m.ProjectID,
		VendorID:       m.VendorID,
		VendorName:     m.VendorName,
		Amount:         m.Amount,
		ReceiptDocURL:  m.ReceiptDocURL,
		SubmittingUser: m.SubmittingUser,
		ForUserEmail:   m.ForUserEmail,
		CreatedOn:      formatTime(m.CreatedOn),
	})
	if err != nil {
		return entities.MaterialsReceipt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "receipt_id",
		},
	})
	if err != nil {
		return entities.MaterialsReceipt{}, conditionalPutErr(err)
	}
	return m, nil
}

type SubInvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubInvoiceRepository = (*SubInvoiceDynamoRepository)(nil)

func NewSubInvoiceDynamoRepository(ddb *dynamodb.Client) *SubInvoiceDynamoRepository {
	return &SubInvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUB_INVOICES_TABLE", defaultSubInvoicesTableName),
	}
}

func (r *SubInvoiceDynamoRepository) Create(ctx context.Context, i entities.SubInvoice) (entities.SubInvoice, error) {
	av, err := attributevalue.MarshalMap(subInvoiceItem{
		InvoiceID:      i.InvoiceID,
		ProjectID:      i.ProjectID,
		ProjectName:    i.ProjectName,
		SubID:          i.SubID,
		SubName:        i.SubName,
		InvoiceAmount:  i.InvoiceAmount,
		InvoiceDocURL:  i.InvoiceDocURL,
		SubmittingUser: i.SubmittingUser,
		CreatedOn:      formatTime(i.CreatedOn),
	})
	if err != nil {
		return entities.SubInvoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "invoice_id",
		},
	})
	if err != nil {
		return entities.SubInvoice{}, conditionalPutErr(err)
	}
	return i, nil
}
