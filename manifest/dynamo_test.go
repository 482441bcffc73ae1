package manifest

import (
	"context"
	"strconv"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// fakeDynamoClient is an in-memory stand-in for DynamoClient, keyed the same
// way the real table is: (run_id, version).
type fakeDynamoClient struct {
	items map[string]map[string]types.AttributeValue // key: run_id+"#"+version
}

func newFakeDynamoClient() *fakeDynamoClient {
	return &fakeDynamoClient{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamoClient) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	runID := in.Item["run_id"].(*types.AttributeValueMemberS).Value
	version := in.Item["version"].(*types.AttributeValueMemberN).Value
	key := runID + "#" + version
	if _, exists := f.items[key]; exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	runID := in.ExpressionAttributeValues[":id"].(*types.AttributeValueMemberS).Value
	var best map[string]types.AttributeValue
	var bestVersion int
	for _, item := range f.items {
		if item["run_id"].(*types.AttributeValueMemberS).Value != runID {
			continue
		}
		v, err := strconv.Atoi(item["version"].(*types.AttributeValueMemberN).Value)
		if err != nil {
			continue
		}
		if best == nil || v > bestVersion {
			best, bestVersion = item, v
		}
	}
	if best == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{best}}, nil
}

func TestDynamoStoreCommitAndLatest(t *testing.T) {
	client := newFakeDynamoClient()
	store := NewDynamoStore(client, "izsieve-runs")
	runID := uuid.New()

	r1 := &Run{RunID: runID, Zs: 0, Ze: 1_000_000, VX: 1616615, CompletedSegments: 1, PartialTotal: 100}
	if err := store.Commit(context.Background(), r1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	latest, err := store.Latest(context.Background(), runID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest == nil || latest.CompletedSegments != 1 || latest.PartialTotal != 100 {
		t.Fatalf("got %+v, want matching r1", latest)
	}

	r2 := &Run{RunID: runID, Zs: 0, Ze: 1_000_000, VX: 1616615, CompletedSegments: 2, PartialTotal: 200}
	if err := store.Commit(context.Background(), r2); err != nil {
		t.Fatalf("unexpected error committing second version: %v", err)
	}

	latest, err = store.Latest(context.Background(), runID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.CompletedSegments != 2 || latest.PartialTotal != 200 {
		t.Fatalf("expected second commit to be latest, got %+v", latest)
	}
}

func TestDynamoStoreLatestOnUnknownRunReturnsNil(t *testing.T) {
	store := NewDynamoStore(newFakeDynamoClient(), "izsieve-runs")
	latest, err := store.Latest(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest != nil {
		t.Fatalf("expected nil for unknown run, got %+v", latest)
	}
}
