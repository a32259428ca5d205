// Package migrate orquestra a migração de uma tabela DynamoDB para o
// Redis como documentos JSON.
//
// Visão Geral:
// O Engine consome páginas do Pager, deriva a chave de destino a partir do
// schema de chave da tabela, sanitiza cada item em um objeto JSON e o
// persiste via Writer. O processamento é single-thread e estritamente
// sequencial: uma página por vez, um item por vez.
//
// Isolamento de falhas:
//   - Falha de página (após as retentativas do Pager) é fatal e encerra a
//     execução.
//   - Falha de item (chave de partição ausente, erro de escrita) é logada
//     e o item é pulado; a execução continua sem rollback dos anteriores.
//     Não há retentativa por item dentro de uma mesma execução.
//
// Ao final, Validate compara a contagem de itens migrados com o número de
// chaves no destino — uma verificação aproximada e não-fatal.
package migrate
