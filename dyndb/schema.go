package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// LoadKeySchema consulta os metadados da tabela e extrai o schema de chave.
//
// Retorna ErrInvalidKeySchema (embrulhado com o nome da tabela) quando a
// tabela não declara um atributo de partição — condição fatal que deve
// abortar a migração antes de processar qualquer item.
func LoadKeySchema(ctx context.Context, client DynamoDBClient, table string) (KeySchema, error) {
	out, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return KeySchema{}, fmt.Errorf("dyndb: describe table %s: %w", table, err)
	}

	var schema KeySchema
	if out.Table != nil {
		for _, el := range out.Table.KeySchema {
			if el.AttributeName == nil {
				continue
			}
			switch el.KeyType {
			case types.KeyTypeHash:
				schema.Partition = *el.AttributeName
			case types.KeyTypeRange:
				schema.Sort = *el.AttributeName
			}
		}
	}

	if err := schema.Validate(); err != nil {
		return KeySchema{}, fmt.Errorf("table %s: %w", table, err)
	}
	return schema, nil
}
