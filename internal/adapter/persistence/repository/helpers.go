package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"construction_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// conditionalPutErr maps a lost conditional append to ErrDuplicateID so
// allocation code can rescan and retry.
func conditionalPutErr(err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrDuplicateID
	}
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// scanKeyValues projects a single string attribute across the whole table.
// Identifier allocation uses it to rebuild the in-scope id set; the scan
// is linear, which the small per-entity tables tolerate.
func scanKeyValues(ctx context.Context, ddb *dynamodb.Client, tableName, attr string) ([]string, error) {
	var values []string
	var startKey map[string]types.AttributeValue

	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(tableName),
			ProjectionExpression: aws.String("#attr"),
			ExpressionAttributeNames: map[string]string{
				"#attr": attr,
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			av, ok := item[attr]
			if !ok {
				continue
			}
			var s string
			if err := attributevalue.Unmarshal(av, &s); err != nil {
				continue
			}
			values = append(values, s)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return values, nil
}
