package migrate

import (
	"context"

	"github.com/rs/zerolog"
)

// KeyCounter conta chaves no destino por padrão. Implementado por
// redisdoc.Client.
type KeyCounter interface {
	CountKeys(ctx context.Context, pattern string) (int, error)
}

// Validate reconcilia a contagem de itens migrados com o número de chaves
// `{tabela}:*` no destino. Deve ser pulada em dry-run.
//
// A verificação é aproximada: chaves de outras origens com o mesmo prefixo,
// ou chaves multi-segmento, podem gerar falsos mismatches. Por isso um
// mismatch gera apenas warning (retorno false), nunca falha a execução.
// Erros de contagem são devolvidos para o chamador logar.
func Validate(ctx context.Context, counter KeyCounter, table string, migrated int, log zerolog.Logger) (bool, error) {
	pattern := table + ":*"
	count, err := counter.CountKeys(ctx, pattern)
	if err != nil {
		return false, err
	}

	if migrated == count {
		log.Info().Int("processed", migrated).Int("redis", count).
			Msg("validation successful: all items migrated")
		return true, nil
	}

	log.Warn().Int("processed", migrated).Int("redis", count).
		Msg("validation failed: counts do not match")
	return false, nil
}
