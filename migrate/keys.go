package migrate

import (
	"encoding/base64"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BuildKey monta a chave de destino no formato `{tabela}:{partição}`,
// com o sufixo `:{ordenação}` quando o valor existir.
func BuildKey(table, partition, sort string) string {
	key := table + ":" + partition
	if sort != "" {
		key += ":" + sort
	}
	return key
}

// keyString converte o valor de um atributo de chave para string. Chaves
// do DynamoDB só podem ser S, N ou B; binários são codificados em base64.
// Retorna ok=false para atributos ausentes ou de tipo inválido.
func keyString(item map[string]types.AttributeValue, attr string) (string, bool) {
	av, exists := item[attr]
	if !exists {
		return "", false
	}
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value, true
	case *types.AttributeValueMemberN:
		return v.Value, true
	case *types.AttributeValueMemberB:
		return base64.StdEncoding.EncodeToString(v.Value), true
	default:
		return "", false
	}
}
