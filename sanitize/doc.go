// Package sanitize converte os valores tipados do DynamoDB (AttributeValue)
// em valores compatíveis com JSON.
//
// Visão Geral:
// O DynamoDB retorna cada atributo como uma variante tipada (N, S, B, BOOL,
// NULL, SS, NS, BS, L, M). Este pacote faz o "achatamento" dessas variantes
// em tipos nativos do Go que serializam diretamente para JSON:
// nil, bool, int64, float64, string, []any e map[string]any.
//
// Garantias:
//   - Conversão total: nunca retorna erro e nunca entra em recursão infinita.
//     Acima da profundidade máxima (default 128), a subárvore restante é
//     serializada como string de depuração.
//   - Puro e determinístico para uma mesma entrada e profundidade.
//
// Observações:
//   - A ordem dos elementos de sets (SS/NS/BS) não é canônica no DynamoDB;
//     consumidores não devem depender da ordem do array resultante.
//   - Números decimais de precisão arbitrária são convertidos para int64 ou
//     float64, com possível perda de precisão para valores muito grandes.
package sanitize
