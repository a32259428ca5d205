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
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrInvalidKeySchema – erro fatal retornado quando a tabela de origem não
// declara um atributo de partição válido.
var ErrInvalidKeySchema = errors.New("dyndb: table does not have a valid key schema")

// Item é um item bruto retornado pelo Scan, com os valores ainda tipados.
type Item = map[string]types.AttributeValue

// Cursor é o token opaco de continuação do Scan (LastEvaluatedKey).
// nil indica que não há mais páginas. Vive apenas durante a execução.
type Cursor = map[string]types.AttributeValue

// DynamoDBClient interface para abstrair o cliente DynamoDB do SDK da AWS.
//
// Apenas as operações usadas pela migração são expostas, permitindo a
// substituição (mocking) do cliente real em testes.
type DynamoDBClient interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// KeySchema descreve a chave composta (1–2 partes) da tabela de origem,
// fixa durante toda a execução.
type KeySchema struct {
	// Partition é o nome do atributo HASH. Obrigatório.
	Partition string
	// Sort é o nome do atributo RANGE. Vazio para tabelas só com HASH.
	Sort string
}

// Validate garante que o schema possui ao menos o atributo de partição.
func (s KeySchema) Validate() error {
	if s.Partition == "" {
		return ErrInvalidKeySchema
	}
	return nil
}

// HasSort indica se a tabela declara um atributo de ordenação.
func (s KeySchema) HasSort() bool {
	return s.Sort != ""
}
