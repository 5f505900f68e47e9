package repository

import (
	"context"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVendorsTableName = "vendors"

type vendorItem struct {
	VendorID   string `dynamodbav:"vendor_id"`
	VendorName string `dynamodbav:"vendor_name"`
	Status     string `dynamodbav:"status"`
	CreatedOn  string `dynamodbav:"created_on"`
	CreatedBy  string `dynamodbav:"created_by"`
}

// VendorDynamoRepository persists Vendor entities in DynamoDB. PK: vendor_id.
type VendorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVendorRepository = (*VendorDynamoRepository)(nil)

func NewVendorDynamoRepository(ddb *dynamodb.Client) *VendorDynamoRepository {
	return &VendorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VENDORS_TABLE", defaultVendorsTableName),
	}
}

func (r *VendorDynamoRepository) Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error) {
	av, err := attributevalue.MarshalMap(vendorItem{
		VendorID:   v.VendorID,
		VendorName: v.VendorName,
		Status:     v.Status,
		CreatedOn:  formatTime(v.CreatedOn),
		CreatedBy:  v.CreatedBy,
	})
	if err != nil {
		return entities.Vendor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "vendor_id",
		},
	})
	if err != nil {
		return entities.Vendor{}, conditionalPutErr(err)
	}
	return v, nil
}

func (r *VendorDynamoRepository) List(ctx context.Context) ([]entities.Vendor, error) {
	var vendors []entities.Vendor
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []vendorItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			vendors = append(vendors, entities.Vendor{
				VendorID:   it.VendorID,
				VendorName: it.VendorName,
				Status:     it.Status,
				CreatedOn:  parseTime(it.CreatedOn),
				CreatedBy:  it.CreatedBy,
			})
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return vendors, nil
}

func (r *VendorDynamoRepository) ListIDs(ctx context.Context) ([]string, error) {
	return scanKeyValues(ctx, r.ddb, r.tableName, "vendor_id")
}
