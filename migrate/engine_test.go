package migrate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/dynamo-redis-migrator/dyndb"
)

// fakePager serve páginas pré-montadas e registra quantas foram pedidas.
type fakePager struct {
	pages [][]dyndb.Item
	calls int
	err   error
}

func (p *fakePager) NextPage(ctx context.Context, cursor dyndb.Cursor) ([]dyndb.Item, dyndb.Cursor, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	idx := p.calls
	p.calls++
	items := p.pages[idx]
	if idx == len(p.pages)-1 {
		return items, nil, nil
	}
	return items, dyndb.Cursor{"table_pk": &types.AttributeValueMemberS{Value: "next"}}, nil
}

// fakeWriter registra as escritas recebidas.
type fakeWriter struct {
	docs    map[string]any
	failKey string
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{docs: make(map[string]any)}
}

func (w *fakeWriter) SetDocument(ctx context.Context, key string, doc any) error {
	if key == w.failKey {
		return errors.New("write refused")
	}
	w.docs[key] = doc
	return nil
}

func itemWithKeys(pk, sk string) dyndb.Item {
	return dyndb.Item{
		"table_pk": &types.AttributeValueMemberS{Value: pk},
		"sort_key": &types.AttributeValueMemberS{Value: sk},
		"payload":  &types.AttributeValueMemberN{Value: "10"},
	}
}

func newEngine(pager Pager, writer Writer) *Engine {
	return &Engine{
		Pager:  pager,
		Writer: writer,
		Schema: dyndb.KeySchema{Partition: "table_pk", Sort: "sort_key"},
		Table:  "gabs-migrator-table",
		Log:    zerolog.Nop(),
	}
}

func TestEngine_Run_AllPages(t *testing.T) {
	t.Parallel()

	// 5 itens divididos em páginas de 2: ceil(5/2) = 3 páginas.
	pager := &fakePager{pages: [][]dyndb.Item{
		{itemWithKeys("item-0", "sort-A"), itemWithKeys("item-1", "sort-A")},
		{itemWithKeys("item-2", "sort-A"), itemWithKeys("item-3", "sort-A")},
		{itemWithKeys("item-4", "sort-A")},
	}}
	writer := newFakeWriter()

	total, err := newEngine(pager, writer).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, 3, pager.calls, "deve visitar exatamente ceil(N/B) páginas")
	assert.Len(t, writer.docs, 5, "cada item processado exatamente uma vez")

	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("gabs-migrator-table:item-%d:sort-A", i)
		doc, ok := writer.docs[key]
		require.True(t, ok, "chave ausente: %s", key)
		assert.Equal(t, int64(10), doc.(map[string]any)["payload"])
	}
}

func TestEngine_Run_EmptyTable(t *testing.T) {
	t.Parallel()

	pager := &fakePager{pages: [][]dyndb.Item{{}}}
	writer := newFakeWriter()

	total, err := newEngine(pager, writer).Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, writer.docs)
}

func TestEngine_Run_MissingPartitionKeySkips(t *testing.T) {
	t.Parallel()

	noPK := dyndb.Item{"payload": &types.AttributeValueMemberS{Value: "x"}}
	emptyPK := dyndb.Item{"table_pk": &types.AttributeValueMemberS{Value: ""}}
	pager := &fakePager{pages: [][]dyndb.Item{
		{noPK, itemWithKeys("item-1", "sort-B"), emptyPK},
	}}
	writer := newFakeWriter()

	total, err := newEngine(pager, writer).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, total, "itens sem chave de partição não contam como migrados")
	assert.Len(t, writer.docs, 1)
	assert.Contains(t, writer.docs, "gabs-migrator-table:item-1:sort-B")
}

func TestEngine_Run_WriteFailureIsIsolated(t *testing.T) {
	t.Parallel()

	pager := &fakePager{pages: [][]dyndb.Item{
		{itemWithKeys("item-0", "sort-A"), itemWithKeys("item-1", "sort-A"), itemWithKeys("item-2", "sort-A")},
	}}
	writer := newFakeWriter()
	writer.failKey = "gabs-migrator-table:item-1:sort-A"

	total, err := newEngine(pager, writer).Run(context.Background())

	require.NoError(t, err, "falha de item não derruba a execução")
	assert.Equal(t, 2, total)
	assert.NotContains(t, writer.docs, "gabs-migrator-table:item-1:sort-A")
}

func TestEngine_Run_DryRun(t *testing.T) {
	t.Parallel()

	pager := &fakePager{pages: [][]dyndb.Item{
		{itemWithKeys("item-0", "sort-A"), itemWithKeys("item-1", "sort-A")},
	}}
	writer := newFakeWriter()

	engine := newEngine(pager, writer)
	engine.DryRun = true

	total, err := engine.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, total, "dry-run ainda conta os itens que seriam escritos")
	assert.Empty(t, writer.docs, "dry-run não escreve no destino")
}

func TestEngine_Run_NoSortKeySchema(t *testing.T) {
	t.Parallel()

	pager := &fakePager{pages: [][]dyndb.Item{
		{dyndb.Item{"table_pk": &types.AttributeValueMemberS{Value: "item-5"}}},
	}}
	writer := newFakeWriter()

	engine := newEngine(pager, writer)
	engine.Schema = dyndb.KeySchema{Partition: "table_pk"}

	total, err := engine.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Contains(t, writer.docs, "gabs-migrator-table:item-5")
}

func TestEngine_Run_PageFailureIsFatal(t *testing.T) {
	t.Parallel()

	pager := &fakePager{err: errors.New("scan failed after 5 attempts")}

	total, err := newEngine(pager, newFakeWriter()).Run(context.Background())

	require.Error(t, err)
	assert.Zero(t, total)
	assert.Contains(t, err.Error(), "page 1")
}

func TestEngine_Run_InvalidSchemaIsFatal(t *testing.T) {
	t.Parallel()

	engine := newEngine(&fakePager{pages: [][]dyndb.Item{{}}}, newFakeWriter())
	engine.Schema = dyndb.KeySchema{}

	_, err := engine.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, dyndb.ErrInvalidKeySchema)
}
