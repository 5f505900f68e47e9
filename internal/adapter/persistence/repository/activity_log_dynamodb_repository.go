package repository

import (
	"context"
	"sort"
	"time"

	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultActivityLogTableName = "activity_log"

type activityLogItem struct {
	RecordKey      string `dynamodbav:"record_key"`
	LogID          string `dynamodbav:"log_id"`
	Timestamp      string `dynamodbav:"timestamp"`
	Action         string `dynamodbav:"action"`
	UserEmail      string `dynamodbav:"user_email"`
	ModuleType     string `dynamodbav:"module_type"`
	ReferenceID    string `dynamodbav:"reference_id"`
	Details        string `dynamodbav:"details"`
	Status         string `dynamodbav:"status"`
	PreviousStatus string `dynamodbav:"previous_status"`
}

// ActivityLogDynamoRepository persists the append-only audit trail.
//
// The advisory log_id (LOG-<millis>) may repeat across rapid concurrent
// writes, but a DynamoDB key cannot, so the item key adds nanosecond
// precision. Entries are never updated or deleted.
type ActivityLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityLogRepository = (*ActivityLogDynamoRepository)(nil)

func NewActivityLogDynamoRepository(ddb *dynamodb.Client) *ActivityLogDynamoRepository {
	return &ActivityLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITY_LOG_TABLE", defaultActivityLogTableName),
	}
}

func (r *ActivityLogDynamoRepository) Record(ctx context.Context, e entities.ActivityLogEntry) (entities.ActivityLogEntry, error) {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
		e.Timestamp = ts
	}
	it := activityLogItem{
		RecordKey:      e.LogID + "#" + ts.UTC().Format(time.RFC3339Nano),
		LogID:          e.LogID,
		Timestamp:      formatTime(ts),
		Action:         string(e.Action),
		UserEmail:      e.UserEmail,
		ModuleType:     string(e.ModuleType),
		ReferenceID:    e.ReferenceID,
		Details:        string(e.Details),
		Status:         e.Status,
		PreviousStatus: e.PreviousStatus,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ActivityLogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ActivityLogEntry{}, err
	}
	return e, nil
}

func (r *ActivityLogDynamoRepository) ListByReferenceID(ctx context.Context, referenceID string) ([]entities.ActivityLogEntry, error) {
	var entries []entities.ActivityLogEntry
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#reference_id = :reference_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":reference_id": &types.AttributeValueMemberS{Value: referenceID},
			},
			ExpressionAttributeNames: map[string]string{
				"#reference_id": "reference_id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []activityLogItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromActivityLogItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

func fromActivityLogItem(it activityLogItem) entities.ActivityLogEntry {
	var details []byte
	if it.Details != "" {
		details = []byte(it.Details)
	}
	return entities.ActivityLogEntry{
		LogID:          it.LogID,
		Timestamp:      parseTime(it.Timestamp),
		Action:         entities.ActivityAction(it.Action),
		UserEmail:      it.UserEmail,
		ModuleType:     entities.ModuleType(it.ModuleType),
		ReferenceID:    it.ReferenceID,
		Details:        details,
		Status:         it.Status,
		PreviousStatus: it.PreviousStatus,
	}
}
