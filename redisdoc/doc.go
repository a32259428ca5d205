// Package redisdoc é a camada de escrita do cache de destino (Redis).
//
// Cada item migrado vira um documento RedisJSON completo: a escrita usa
// JSON.SET na raiz ($), substituindo o documento inteiro — nunca um merge.
// O pacote também expõe a contagem de chaves por padrão, usada pela
// validação pós-migração.
package redisdoc
