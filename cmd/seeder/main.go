// O seeder carrega dados de exemplo em uma tabela DynamoDB para exercitar
// a migração. Gera itens determinísticos e diversos (todos os tipos de
// atributo) a partir do produto cartesiano de chaves de partição e
// ordenação. Ferramenta auxiliar de teste — não faz parte da migração.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/raywall/dynamo-redis-migrator/pkg/awsconf"
	"github.com/raywall/dynamo-redis-migrator/pkg/config"
	"github.com/raywall/dynamo-redis-migrator/pkg/logger"
)

var (
	sampleStrings = []string{"String A", "String B", "String C"}
	sampleNumbers = []int{10, 20, 30}
	sampleBools   = []bool{true, false}

	innerStrings = []string{"Inner Value 1", "Inner Value 2"}
	innerNumbers = []int{100, 200}

	numberSets = [][]string{{"1", "2", "3"}, {"4", "5", "6"}}
	stringSets = [][]string{{"SetValue1", "SetValue2"}, {"SetValue3"}}
	binaryData = [][]byte{[]byte("Some binary data"), []byte("Data")}
	binarySets = [][][]byte{
		{[]byte("Binary1"), []byte("Binary2")},
		{[]byte("Binary3")},
	}
)

func main() {
	_ = godotenv.Load()

	table := flag.String("dynamo-table", os.Getenv("DYNAMO_TABLE_NAME"), "tabela DynamoDB de destino")
	region := flag.String("region", os.Getenv("AWS_REGION"), "região da AWS")
	partitions := flag.Int("partitions", 25, "quantidade de chaves de partição")
	sorts := flag.Int("sorts", 10, "quantidade de chaves de ordenação por partição")
	flag.Parse()

	log := logger.Configure(config.LoggingConf{Enabled: true, Format: "console"})

	if *table == "" {
		log.Error().Msg("tabela não informada (-dynamo-table ou DYNAMO_TABLE_NAME)")
		os.Exit(1)
	}
	if *sorts > 26 {
		log.Error().Msg("máximo de 26 chaves de ordenação (sort-A..sort-Z)")
		os.Exit(1)
	}

	ctx := context.Background()
	awsCfg, err := awsconf.Load(ctx, *region)
	if err != nil {
		log.Error().Err(err).Msg("erro ao carregar configuração da AWS")
		os.Exit(1)
	}
	client := dynamodb.NewFromConfig(awsCfg)

	if err := seed(ctx, client, *table, *partitions, *sorts, log); err != nil {
		log.Error().Err(err).Msg("erro ao carregar dados de exemplo")
		os.Exit(1)
	}
}

func seed(ctx context.Context, client *dynamodb.Client, table string, partitions, sorts int, log zerolog.Logger) error {
	counter := 1
	for p := 0; p < partitions; p++ {
		for s := 0; s < sorts; s++ {
			pk := fmt.Sprintf("item-%d", p)
			sk := fmt.Sprintf("sort-%c", 'A'+s)

			item, err := buildItem(pk, sk, counter)
			if err != nil {
				return err
			}
			counter++

			if _, err := client.PutItem(ctx, &dynamodb.PutItemInput{
				TableName: aws.String(table),
				Item:      item,
			}); err != nil {
				return fmt.Errorf("put item %s/%s: %w", pk, sk, err)
			}
			log.Info().Str("table_pk", pk).Str("sort_key", sk).Msg("loaded item")
		}
	}
	return nil
}

// buildItem monta um item variado de forma determinística a partir do
// contador, cobrindo todos os tipos de atributo que a migração sanitiza.
func buildItem(pk, sk string, counter int) (map[string]types.AttributeValue, error) {
	// Atributos escalares e o mapa aninhado via attributevalue.
	scalar := map[string]any{
		"table_pk":      pk,
		"sort_key":      sk,
		"simple_string": sampleStrings[counter%len(sampleStrings)],
		"simple_number": sampleNumbers[counter%len(sampleNumbers)] * counter,
		"simple_bool":   sampleBools[counter%len(sampleBools)],
		"nested_map": map[string]any{
			"inner_key1": innerStrings[counter%len(innerStrings)],
			"inner_key2": innerNumbers[counter%len(innerNumbers)] * counter,
			"inner_key3": sampleBools[counter%len(sampleBools)],
		},
	}
	item, err := attributevalue.MarshalMap(scalar)
	if err != nil {
		return nil, fmt.Errorf("marshal item %s/%s: %w", pk, sk, err)
	}

	// Sets, binários e listas heterogêneas não têm equivalente natural em
	// Go, então são montados diretamente como AttributeValue.
	item["number_set"] = &types.AttributeValueMemberNS{Value: numberSets[counter%len(numberSets)]}
	item["string_set"] = &types.AttributeValueMemberSS{Value: stringSets[counter%len(stringSets)]}
	item["binary_data"] = &types.AttributeValueMemberB{Value: binaryData[counter%len(binaryData)]}
	item["binary_set"] = &types.AttributeValueMemberBS{Value: binarySets[counter%len(binarySets)]}
	item["complex_list"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{
		&types.AttributeValueMemberS{Value: fmt.Sprintf("ListItem%d", counter%2+1)},
		&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"key":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", 123*(counter%2+1))},
			"value": &types.AttributeValueMemberBOOL{Value: counter%2 == 0},
		}},
	}}

	return item, nil
}
