package dyndb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPager(client DynamoDBClient) (*Pager, *[]time.Duration) {
	p := NewPager(client, "gabs-migrator-table", 100, zerolog.Nop())
	waits := &[]time.Duration{}
	p.sleep = func(d time.Duration) { *waits = append(*waits, d) }
	return p, waits
}

func TestPager_NextPage(t *testing.T) {
	t.Parallel()

	items := []Item{
		{"table_pk": &types.AttributeValueMemberS{Value: "item-0"}},
		{"table_pk": &types.AttributeValueMemberS{Value: "item-1"}},
	}
	next := Cursor{"table_pk": &types.AttributeValueMemberS{Value: "item-1"}}

	client := &MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			assert.Equal(t, int32(100), *params.Limit)
			assert.Nil(t, params.ExclusiveStartKey)
			return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: next}, nil
		},
	}

	p, waits := newTestPager(client)
	got, cursor, err := p.NextPage(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, items, got)
	assert.Equal(t, next, cursor)
	assert.Empty(t, *waits)
}

func TestPager_NextPage_ForwardsCursor(t *testing.T) {
	t.Parallel()

	start := Cursor{"table_pk": &types.AttributeValueMemberS{Value: "item-7"}}
	client := &MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			assert.Equal(t, start, Cursor(params.ExclusiveStartKey))
			return &dynamodb.ScanOutput{}, nil
		},
	}

	p, _ := newTestPager(client)
	_, cursor, err := p.NextPage(context.Background(), start)

	require.NoError(t, err)
	assert.Nil(t, cursor, "última página deve retornar cursor nil")
}

func TestPager_RetryThenSucceed(t *testing.T) {
	t.Parallel()

	calls := 0
	client := &MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			calls++
			if calls < 5 {
				return nil, errors.New("throughput exceeded")
			}
			return &dynamodb.ScanOutput{Items: []Item{
				{"table_pk": &types.AttributeValueMemberS{Value: "item-9"}},
			}}, nil
		},
	}

	p, waits := newTestPager(client)
	items, cursor, err := p.NextPage(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, cursor)
	assert.Equal(t, 5, calls)
	// Backoff exponencial: 2^1, 2^2, 2^3, 2^4 segundos.
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}, *waits)
}

func TestPager_Exhaustion(t *testing.T) {
	t.Parallel()

	calls := 0
	client := &MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			calls++
			return nil, errors.New("connection reset")
		},
	}

	p, waits := newTestPager(client)
	_, _, err := p.NextPage(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 5 attempts")
	assert.Equal(t, 5, calls)
	assert.Len(t, *waits, 4, "não deve aguardar após a última tentativa")
}

func TestPager_AttemptCounterResetsPerPage(t *testing.T) {
	t.Parallel()

	failNext := true
	client := &MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			if failNext {
				failNext = false
				return nil, errors.New("transient")
			}
			return &dynamodb.ScanOutput{}, nil
		},
	}

	p, waits := newTestPager(client)

	// Página 1: falha uma vez, depois sucesso.
	_, _, err := p.NextPage(context.Background(), nil)
	require.NoError(t, err)

	// Página 2: nova falha única também deve ser absorvida, pois o
	// contador é local a cada chamada.
	failNext = true
	_, _, err = p.NextPage(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, *waits)
}
