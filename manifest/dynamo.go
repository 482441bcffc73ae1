package manifest

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoClient is the subset of the DynamoDB API a DynamoStore needs.
type DynamoClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ErrConcurrentModification is returned when two hosts race to commit the
// same run's next checkpoint version.
var ErrConcurrentModification = errors.New("manifest: concurrent modification detected")

// DynamoStore mirrors run checkpoints to DynamoDB so multiple hosts
// cooperating on one SiZ_count job can agree on the latest checkpoint
// without a shared filesystem. Table schema:
//
//	Partition key: run_id (string)
//	Sort key:      version (number), monotonically increasing per run
//
// This is optional infrastructure: a *Store backed by a local checksummed
// file remains the default, and a DynamoStore is layered on top of it for
// the multi-host coordination case, the same "local default, DynamoDB
// opt-in" shape the teacher's own DynamoDB-backed metadata store uses.
type DynamoStore struct {
	client    DynamoClient
	tableName string
}

// NewDynamoStore creates a DynamoDB-backed mirror for the given table.
func NewDynamoStore(client DynamoClient, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName}
}

// Commit writes r as the next checkpoint version for its run, using a
// conditional put so two hosts racing to commit the same version fail one
// of them with ErrConcurrentModification rather than silently clobbering
// a newer checkpoint with an older one.
func (s *DynamoStore) Commit(ctx context.Context, r *Run) error {
	current, err := s.Latest(ctx, r.RunID.String())
	if err != nil {
		return err
	}
	version := uint64(1)
	if current != nil {
		version = current.CompletedSegments + 1
	}

	r.Version = CurrentVersion
	payload := encodeRun(r)
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"run_id":  &types.AttributeValueMemberS{Value: r.RunID.String()},
			"version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", version)},
			"payload": &types.AttributeValueMemberB{Value: payload},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return ErrConcurrentModification
		}
		return fmt.Errorf("manifest: dynamodb commit: %w", err)
	}
	return nil
}

// Latest returns the highest-versioned checkpoint committed for runID, or
// nil if none has been committed yet.
func (s *DynamoStore) Latest(ctx context.Context, runID string) (*Run, error) {
	resp, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("run_id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: runID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("manifest: dynamodb query: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	payloadAttr, ok := resp.Items[0]["payload"].(*types.AttributeValueMemberB)
	if !ok {
		return nil, errors.New("manifest: invalid payload attribute in dynamodb item")
	}
	return decodeRun(payloadAttr.Value)
}
