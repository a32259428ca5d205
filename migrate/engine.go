// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package migrate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/raywall/dynamo-redis-migrator/dyndb"
	"github.com/raywall/dynamo-redis-migrator/pkg/metrics"
	"github.com/raywall/dynamo-redis-migrator/sanitize"
)

// Pager fornece a enumeração paginada da origem. Implementado por
// dyndb.Pager.
type Pager interface {
	NextPage(ctx context.Context, cursor dyndb.Cursor) ([]dyndb.Item, dyndb.Cursor, error)
}

// Writer persiste um documento JSON por item migrado. Implementado por
// redisdoc.Client.
type Writer interface {
	SetDocument(ctx context.Context, key string, doc any) error
}

// outcome é o resultado tri-estado do processamento de um item.
type outcome int

const (
	outcomeMigrated outcome = iota
	outcomeSkipped
	outcomeFailed
)

// Engine orquestra a migração: Pager → chave + sanitização → Writer.
type Engine struct {
	Pager  Pager
	Writer Writer
	Schema dyndb.KeySchema
	// Table é o nome da tabela de origem, usado como prefixo das chaves.
	Table string
	// DryRun loga as escritas em vez de executá-las; itens continuam
	// contando como migrados.
	DryRun bool
	// MaxDepth limita a recursão da sanitização (0 = default).
	MaxDepth int

	Log     zerolog.Logger
	Metrics metrics.Provider
}

// Run executa a migração completa e retorna o total de itens migrados.
//
// Erros fatais (schema inválido, esgotamento das retentativas de uma
// página) são propagados; falhas por item apenas reduzem o total.
func (e *Engine) Run(ctx context.Context) (int, error) {
	if err := e.Schema.Validate(); err != nil {
		return 0, err
	}

	e.Log.Info().Str("table", e.Table).Bool("dry_run", e.DryRun).
		Msg("starting migration from DynamoDB to Redis")

	total := 0
	var cursor dyndb.Cursor

	for page := 1; ; page++ {
		items, next, err := e.Pager.NextPage(ctx, cursor)
		if err != nil {
			return total, fmt.Errorf("migrate: page %d: %w", page, err)
		}
		e.count(metrics.MetricPagesFetched)

		if len(items) == 0 {
			e.Log.Info().Int("page", page).Msg("no items found in the current page")
		}

		for _, item := range items {
			switch e.processItem(ctx, item) {
			case outcomeMigrated:
				total++
				e.count(metrics.MetricItemsMigrated)
			case outcomeSkipped:
				e.count(metrics.MetricItemsSkipped)
			case outcomeFailed:
				e.count(metrics.MetricItemsFailed)
			}
		}

		e.Log.Info().Int("processed", total).Msg("processed items so far")

		if next == nil {
			e.Log.Info().Msg("all items processed, no more pages to fetch")
			break
		}
		cursor = next
	}

	e.Log.Info().Int("total", total).Msg("migration completed")
	return total, nil
}

func (e *Engine) count(name string) {
	if e.Metrics != nil {
		_ = e.Metrics.Count(name, 1, nil)
	}
}

// processItem migra um único item, devolvendo o resultado tri-estado
// consumido pelo loop principal.
func (e *Engine) processItem(ctx context.Context, item dyndb.Item) outcome {
	partition, ok := keyString(item, e.Schema.Partition)
	if !ok || partition == "" {
		e.Log.Warn().Str("attribute", e.Schema.Partition).
			Msg("skipping item without partition key")
		return outcomeSkipped
	}

	var sort string
	if e.Schema.HasSort() {
		sort, _ = keyString(item, e.Schema.Sort)
	}

	key := BuildKey(e.Table, partition, sort)
	doc := sanitize.Item(item, e.MaxDepth)

	if e.DryRun {
		payload, _ := json.Marshal(doc)
		e.Log.Info().Str("key", key).RawJSON("document", payload).
			Msg("[dry-run] would write to redis key")
		return outcomeMigrated
	}

	if err := e.Writer.SetDocument(ctx, key, doc); err != nil {
		// Falha de escrita é final para o item nesta execução.
		e.Log.Error().Err(err).Str("key", key).Msg("error processing item")
		return outcomeFailed
	}

	e.Log.Debug().Str("key", key).Msg("stored JSON in redis key")
	return outcomeMigrated
}
