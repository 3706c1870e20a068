package store

import (
	"context"
	"errors"
	"time"

	"landmarker/internal/domain/entities"
	"landmarker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReferencesTableName = "payment_references"

type paymentReferenceItem struct {
	ID        string `dynamodbav:"id"`
	CreatedAt string `dynamodbav:"created_at"`
	Used      bool   `dynamodbav:"used"`
}

// DynamoReferenceStore persists payment references in DynamoDB so the
// exactly-once guarantee survives restarts and multi-instance deployments.
//
// Table requirements:
//   - PK: id (string)
//
// Consume atomicity rides on a conditional update of the used flag, the
// durable equivalent of the memory store's mutex-guarded compare-and-swap.
type DynamoReferenceStore struct {
	ddb       *dynamodb.Client
	tableName string
	ttl       time.Duration

	now func() time.Time
}

var _ interfaces.IReferenceStore = (*DynamoReferenceStore)(nil)

func NewDynamoReferenceStore(ddb *dynamodb.Client, ttl time.Duration) *DynamoReferenceStore {
	if ttl <= 0 {
		ttl = entities.ReferenceTTL
	}
	return &DynamoReferenceStore{
		ddb:       ddb,
		tableName: getenvDefault("REFERENCES_TABLE", defaultReferencesTableName),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *DynamoReferenceStore) Add(ctx context.Context, id string) error {
	it := paymentReferenceItem{
		ID:        id,
		CreatedAt: s.now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (s *DynamoReferenceStore) Has(ctx context.Context, id string) (bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it paymentReferenceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	if s.expired(it) {
		_ = s.deleteItem(ctx, id)
		return false, nil
	}
	return !it.Used, nil
}

func (s *DynamoReferenceStore) MarkUsed(ctx context.Context, id string) error {
	_, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET used = :true"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		// Absent record is a no-op by contract.
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil
		}
		return err
	}
	return nil
}

func (s *DynamoReferenceStore) TryConsume(ctx context.Context, id string) (bool, error) {
	cutoff := s.now().Add(-s.ttl).UTC().Format(time.RFC3339Nano)

	_, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET used = :true"),
		ConditionExpression: aws.String("attribute_exists(#id) AND used = :false AND created_at > :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":   &types.AttributeValueMemberBOOL{Value: true},
			":false":  &types.AttributeValueMemberBOOL{Value: false},
			":cutoff": &types.AttributeValueMemberS{Value: cutoff},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *DynamoReferenceStore) SweepExpired(ctx context.Context) error {
	cutoff := s.now().Add(-s.ttl).UTC().Format(time.RFC3339Nano)

	out, err := s.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(s.tableName),
		FilterExpression: aws.String("created_at <= :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cutoff": &types.AttributeValueMemberS{Value: cutoff},
		},
		ProjectionExpression: aws.String("#id"),
	})
	if err != nil {
		return err
	}

	for _, raw := range out.Items {
		var it paymentReferenceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		if err := s.deleteItem(ctx, it.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *DynamoReferenceStore) deleteItem(ctx context.Context, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (s *DynamoReferenceStore) expired(it paymentReferenceItem) bool {
	created, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		// An unparseable timestamp can never be proven fresh.
		return true
	}
	return s.now().Sub(created) > s.ttl
}
