package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	EstimateID            string  `dynamodbav:"estimate_id"`
	ProjectID             string  `dynamodbav:"project_id"`
	CustomerID            string  `dynamodbav:"customer_id"`
	EstimatedAmount       float64 `dynamodbav:"estimated_amount"`
	ContingencyAmount     float64 `dynamodbav:"contingency_amount"`
	ScopeItems            string  `dynamodbav:"scope_items"`
	Status                string  `dynamodbav:"status"`
	IsActive              string  `dynamodbav:"is_active"`
	PreviousVersionID     string  `dynamodbav:"previous_version_id"`
	VersionNumber         int     `dynamodbav:"version_number"`
	ApprovedDate          string  `dynamodbav:"approved_date"`
	ApprovedBy            string  `dynamodbav:"approved_by"`
	CurrentApprovedAmount float64 `dynamodbav:"current_approved_amount"`
	DateCreated           string  `dynamodbav:"date_created"`
	CreatedBy             string  `dynamodbav:"created_by"`
}

// EstimateDynamoRepository persists Estimate version rows in DynamoDB.
//
// Table requirements:
//   - PK: estimate_id (string)
//
// Rows are append-per-version: an edit creates a new row, the superseded
// row only has its is_active cell cleared. The is_active flag is stored
// as "true"/"false" strings, mirroring the sheet layout this table
// replaced.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "estimate_id",
		},
	})
	if err != nil {
		return entities.Estimate{}, conditionalPutErr(err)
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"estimate_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	var estimates []entities.Estimate
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#project_id = :project_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":project_id": &types.AttributeValueMemberS{Value: projectID},
			},
			ExpressionAttributeNames: map[string]string{
				"#project_id": "project_id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			estimates = append(estimates, fromEstimateItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return estimates, nil
}

func (r *EstimateDynamoRepository) ListIDsByProjectID(ctx context.Context, projectID string) ([]string, error) {
	var ids []string
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#id"),
			FilterExpression:     aws.String("#project_id = :project_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":project_id": &types.AttributeValueMemberS{Value: projectID},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":         "estimate_id",
				"#project_id": "project_id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			av, ok := item["estimate_id"]
			if !ok {
				continue
			}
			var s string
			if err := attributevalue.Unmarshal(av, &s); err != nil {
				continue
			}
			ids = append(ids, s)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return ids, nil
}

func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateAmount(ctx context.Context, id string, amount float64) (entities.Estimate, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #estimated_amount = :amount"
		vals := map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: strconv.FormatFloat(amount, 'f', -1, 64)},
		}
		names := map[string]string{
			"#estimated_amount": "estimated_amount",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_active = :is_active"
		vals := map[string]types.AttributeValue{
			":is_active": &types.AttributeValueMemberS{Value: strconv.FormatBool(active)},
		}
		names := map[string]string{
			"#is_active": "is_active",
		}
		return expr, vals, names
	})
	return err
}

func (r *EstimateDynamoRepository) RecordApproval(ctx context.Context, id, approvedBy string, approvedAt time.Time, amount float64) error {
	_, err := r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #approved_date = :approved_date, #approved_by = :approved_by, #current_approved_amount = :amount"
		vals := map[string]types.AttributeValue{
			":approved_date": &types.AttributeValueMemberS{Value: formatTime(approvedAt)},
			":approved_by":   &types.AttributeValueMemberS{Value: approvedBy},
			":amount":        &types.AttributeValueMemberN{Value: strconv.FormatFloat(amount, 'f', -1, 64)},
		}
		names := map[string]string{
			"#approved_date":           "approved_date",
			"#approved_by":             "approved_by",
			"#current_approved_amount": "current_approved_amount",
		}
		return expr, vals, names
	})
	return err
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"estimate_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "estimate_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		EstimateID:            e.EstimateID,
		ProjectID:             e.ProjectID,
		CustomerID:            e.CustomerID,
		EstimatedAmount:       e.EstimatedAmount,
		ContingencyAmount:     e.ContingencyAmount,
		ScopeItems:            string(e.ScopeItems),
		Status:                string(e.Status),
		IsActive:              strconv.FormatBool(e.IsActive),
		PreviousVersionID:     e.PreviousVersionID,
		VersionNumber:         e.VersionNumber,
		ApprovedDate:          formatTime(e.ApprovedDate),
		ApprovedBy:            e.ApprovedBy,
		CurrentApprovedAmount: e.CurrentApprovedAmount,
		DateCreated:           formatTime(e.DateCreated),
		CreatedBy:             e.CreatedBy,
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	var scopeItems []byte
	if it.ScopeItems != "" {
		scopeItems = []byte(it.ScopeItems)
	}
	return entities.Estimate{
		EstimateID:            it.EstimateID,
		ProjectID:             it.ProjectID,
		CustomerID:            it.CustomerID,
		EstimatedAmount:       it.EstimatedAmount,
		ContingencyAmount:     it.ContingencyAmount,
		ScopeItems:            scopeItems,
		Status:                entities.EstimateStatus(it.Status),
		IsActive:              it.IsActive == "true",
		PreviousVersionID:     it.PreviousVersionID,
		VersionNumber:         it.VersionNumber,
		ApprovedDate:          parseTime(it.ApprovedDate),
		ApprovedBy:            it.ApprovedBy,
		CurrentApprovedAmount: it.CurrentApprovedAmount,
		DateCreated:           parseTime(it.DateCreated),
		CreatedBy:             it.CreatedBy,
	}
}
