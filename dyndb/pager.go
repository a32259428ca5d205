package dyndb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
)

// maxScanAttempts é o total de tentativas por página antes do erro fatal.
const maxScanAttempts = 5

// Pager enumera a tabela de origem página a página via Scan.
//
// As páginas são buscadas de forma estritamente sequencial (uma chamada por
// vez) para evitar corrida no cursor de continuação.
type Pager struct {
	client DynamoDBClient
	table  string
	limit  int32
	log    zerolog.Logger

	// sleep é injetável em testes; default time.Sleep.
	sleep func(time.Duration)
}

// NewPager cria um Pager para a tabela informada. limit define o tamanho
// máximo de cada página (Limit do Scan).
func NewPager(client DynamoDBClient, table string, limit int32, log zerolog.Logger) *Pager {
	return &Pager{
		client: client,
		table:  table,
		limit:  limit,
		log:    log,
		sleep:  time.Sleep,
	}
}

// NextPage busca a próxima página de itens a partir do cursor informado
// (nil para a primeira página). Retorna os itens e o cursor da página
// seguinte; cursor nil indica que a enumeração terminou.
//
// Falhas transitórias são retentadas com backoff exponencial: após a
// tentativa n (n < 5) o Pager aguarda 2^n segundos. O contador de
// tentativas é local à chamada, portanto zera automaticamente a cada nova
// página. Se as 5 tentativas falharem, o último erro é devolvido e deve
// ser tratado como fatal para a execução.
func (p *Pager) NextPage(ctx context.Context, cursor Cursor) ([]Item, Cursor, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(p.table),
		Limit:     aws.Int32(p.limit),
	}
	if cursor != nil {
		input.ExclusiveStartKey = cursor
	}

	var lastErr error
	for attempt := 1; attempt <= maxScanAttempts; attempt++ {
		out, err := p.client.Scan(ctx, input)
		if err == nil {
			return out.Items, out.LastEvaluatedKey, nil
		}
		lastErr = err

		if attempt == maxScanAttempts {
			break
		}
		wait := time.Duration(1<<attempt) * time.Second
		p.log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("scan failed, retrying")
		p.sleep(wait)
	}

	return nil, nil, fmt.Errorf("dyndb: scan of %s failed after %d attempts: %w",
		p.table, maxScanAttempts, lastErr)
}
