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

const defaultSubcontractorsTableName = "subcontractors"

type subcontractorItem struct {
	SubID        string `dynamodbav:"sub_id"`
	SubName      string `dynamodbav:"sub_name"`
	Address      string `dynamodbav:"address"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	Zip          string `dynamodbav:"zip"`
	ContactEmail string `dynamodbav:"contact_email"`
	Phone        string `dynamodbav:"phone"`
}

// SubcontractorDynamoRepository persists Subcontractor entities in
// DynamoDB. PK: sub_id.
type SubcontractorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubcontractorRepository = (*SubcontractorDynamoRepository)(nil)

func NewSubcontractorDynamoRepository(ddb *dynamodb.Client) *SubcontractorDynamoRepository {
	return &SubcontractorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBCONTRACTORS_TABLE", defaultSubcontractorsTableName),
	}
}

func (r *SubcontractorDynamoRepository) Create(ctx context.Context, s entities.Subcontractor) (entities.Subcontractor, error) {
	av, err := attributevalue.MarshalMap(subcontractorItem{
		SubID:        s.SubID,
		SubName:      s.SubName,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Zip:          s.Zip,
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
	})
	if err != nil {
		return entities.Subcontractor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "sub_id",
		},
	})
	if err != nil {
		return entities.Subcontractor{}, conditionalPutErr(err)
	}
	return s, nil
}

func (r *SubcontractorDynamoRepository) List(ctx context.Context) ([]entities.Subcontractor, error) {
	var subs []entities.Subcontractor
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []subcontractorItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			subs = append(subs, entities.Subcontractor{
				SubID:        it.SubID,
				SubName:      it.SubName,
				Address:      it.Address,
				City:         it.City,
				State:        it.State,
				Zip:          it.Zip,
				ContactEmail: it.ContactEmail,
				Phone:        it.Phone,
			})
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return subs, nil
}

func (r *SubcontractorDynamoRepository) ListIDs(ctx context.Context) ([]string, error) {
	return scanKeyValues(ctx, r.ddb, r.tableName, "sub_id")
}
