package repository

import (
	"context"
	"errors"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	CustomerID   string `dynamodbav:"customer_id"`
	Name         string `dynamodbav:"customer_name"`
	Address      string `dynamodbav:"address"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	Zip          string `dynamodbav:"zip"`
	ContactEmail string `dynamodbav:"contact_email"`
	Phone        string `dynamodbav:"phone"`
	Status       string `dynamodbav:"status"`
	CreatedOn    string `dynamodbav:"created_on"`
	CreatedBy    string `dynamodbav:"created_by"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: customer_id (string)
//
// The table offers no transactions; Create is a conditional append on the
// key and ListIDs is a projected full scan used by identifier allocation.
type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "customer_id",
		},
	})
	if err != nil {
		return entities.Customer{}, conditionalPutErr(err)
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	var customers []entities.Customer
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []customerItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			customers = append(customers, fromCustomerItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return customers, nil
}

func (r *CustomerDynamoRepository) ListIDs(ctx context.Context) ([]string, error) {
	return scanKeyValues(ctx, r.ddb, r.tableName, "customer_id")
}

func (r *CustomerDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.CustomerStatus) (entities.Customer, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "customer_id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Customer{}, nil
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		CustomerID:   c.CustomerID,
		Name:         c.Name,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		Zip:          c.Zip,
		ContactEmail: c.ContactEmail,
		Phone:        c.Phone,
		Status:       string(c.Status),
		CreatedOn:    formatTime(c.CreatedOn),
		CreatedBy:    c.CreatedBy,
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		CustomerID:   it.CustomerID,
		Name:         it.Name,
		Address:      it.Address,
		City:         it.City,
		State:        it.State,
		Zip:          it.Zip,
		ContactEmail: it.ContactEmail,
		Phone:        it.Phone,
		Status:       entities.CustomerStatus(it.Status),
		CreatedOn:    parseTime(it.CreatedOn),
		CreatedBy:    it.CreatedBy,
	}
}
