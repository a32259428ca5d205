// Package dyndb é a camada de leitura da tabela de origem no DynamoDB.
//
// Visão Geral:
// O pacote expõe duas peças usadas pela migração:
//
// 1. KeySchema:
//   - Carregado via DescribeTable, identifica o atributo de partição (HASH)
//     e, quando existir, o de ordenação (RANGE).
//   - Um schema sem atributo de partição é erro fatal de configuração.
//
// 2. Pager:
//   - Enumeração paginada e estritamente sequencial da tabela via Scan.
//   - Cada página tem até 5 tentativas com backoff exponencial (2^n
//     segundos); o contador é local à chamada e zera a cada nova página.
//   - Esgotadas as tentativas de uma página, o erro é devolvido ao chamador
//     e encerra a execução (nunca retentativa silenciosa e infinita).
//
// O cliente do SDK é abstraído pela interface DynamoDBClient, com
// MockDynamoClient disponível para testes unitários.
package dyndb
