package repository

import (
	"context"
	"errors"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ProjectID      string `dynamodbav:"project_id"`
	CustomerID     string `dynamodbav:"customer_id"`
	ProjectName    string `dynamodbav:"project_name"`
	Status         string `dynamodbav:"status"`
	JobID          string `dynamodbav:"job_id"`
	CreatedOn      string `dynamodbav:"created_on"`
	CreatedBy      string `dynamodbav:"created_by"`
	LastModified   string `dynamodbav:"last_modified"`
	LastModifiedBy string `dynamodbav:"last_modified_by"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: project_id (string)
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "project_id",
		},
	})
	if err != nil {
		return entities.Project{}, conditionalPutErr(err)
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	var projects []entities.Project
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []projectItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			projects = append(projects, fromProjectItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) ListIDs(ctx context.Context) ([]string, error) {
	return scanKeyValues(ctx, r.ddb, r.tableName, "project_id")
}

func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus, modifiedBy string) (entities.Project, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #last_modified = :last_modified, #last_modified_by = :last_modified_by"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":           &types.AttributeValueMemberS{Value: string(status)},
			":last_modified":    &types.AttributeValueMemberS{Value: now},
			":last_modified_by": &types.AttributeValueMemberS{Value: modifiedBy},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":               "project_id",
			"#status":           "status",
			"#last_modified":    "last_modified",
			"#last_modified_by": "last_modified_by",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ProjectID:      p.ProjectID,
		CustomerID:     p.CustomerID,
		ProjectName:    p.ProjectName,
		Status:         string(p.Status),
		JobID:          p.JobID,
		CreatedOn:      formatTime(p.CreatedOn),
		CreatedBy:      p.CreatedBy,
		LastModified:   formatTime(p.LastModified),
		LastModifiedBy: p.LastModifiedBy,
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ProjectID:      it.ProjectID,
		CustomerID:     it.CustomerID,
		ProjectName:    it.ProjectName,
		Status:         entities.ProjectStatus(it.Status),
		JobID:          it.JobID,
		CreatedOn:      parseTime(it.CreatedOn),
		CreatedBy:      it.CreatedBy,
		LastModified:   parseTime(it.LastModified),
		LastModifiedBy: it.LastModifiedBy,
	}
}
