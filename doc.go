// Package migrator migra, em execução única, todos os itens de uma tabela
// DynamoDB para um Redis, persistindo cada item como um documento JSON.
//
// Visão Geral:
// A migração enumera a tabela de origem via Scan paginado, converte os
// valores tipados do DynamoDB em JSON canônico e grava um documento por
// item no Redis, com chave `{tabela}:{partição}[:{ordenação}]`. Ao final,
// compara a contagem de itens migrados com as chaves no destino.
//
// Sub-Pacotes Principais:
//
// 1. dyndb:
//   - Schema de chave da tabela (DescribeTable) e Pager sequencial com
//     retentativas limitadas e backoff exponencial por página.
//
// 2. sanitize:
//   - Conversão total (nunca falha, sempre termina) de AttributeValue em
//     valores compatíveis com JSON, com teto de profundidade.
//
// 3. migrate:
//   - Engine de orquestração com isolamento de falha por item e o
//     validador de contagem pós-migração.
//
// 4. redisdoc:
//   - Escrita de documentos RedisJSON e contagem de chaves por padrão.
//
// Binários em cmd/: migrator (a migração) e seeder (gerador de dados de
// exemplo para testes).
package migrator
