package redisdoc

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisAPI abstrai os comandos do go-redis usados pelo Client, permitindo
// a substituição do cliente real em testes.
type redisAPI interface {
	JSONSet(ctx context.Context, key, path string, value interface{}) *redis.StatusCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// Client escreve documentos JSON no Redis de destino.
type Client struct {
	rdb redisAPI
}

// New cria um Client a partir das opções de conexão do go-redis.
func New(opts *redis.Options) *Client {
	return &Client{rdb: redis.NewClient(opts)}
}

// NewWithAPI cria um Client sobre uma implementação arbitrária de
// redisAPI. Usado em testes.
func NewWithAPI(api redisAPI) *Client {
	return &Client{rdb: api}
}

// Ping valida a conexão com o Redis antes de iniciar a migração.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redisdoc: ping failed: %w", err)
	}
	return nil
}

// SetDocument grava o documento completo na chave informada via JSON.SET
// na raiz. A operação substitui qualquer documento anterior.
func (c *Client) SetDocument(ctx context.Context, key string, doc any) error {
	if err := c.rdb.JSONSet(ctx, key, "$", doc).Err(); err != nil {
		return fmt.Errorf("redisdoc: json set %s: %w", key, err)
	}
	return nil
}

// CountKeys retorna o número de chaves que casam com o padrão informado
// (ex: "minha-tabela:*"). A contagem é aproximada por natureza: chaves de
// outras origens com o mesmo prefixo inflam o resultado.
func (c *Client) CountKeys(ctx context.Context, pattern string) (int, error) {
	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		return 0, fmt.Errorf("redisdoc: keys %s: %w", pattern, err)
	}
	return len(keys), nil
}
