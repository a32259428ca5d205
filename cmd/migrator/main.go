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

// O migrator copia todos os itens de uma tabela DynamoDB para um Redis
// como documentos JSON, em uma execução única (one-shot).
package main

import (
	"context"
	"flag"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/raywall/dynamo-redis-migrator/dyndb"
	"github.com/raywall/dynamo-redis-migrator/migrate"
	"github.com/raywall/dynamo-redis-migrator/pkg/awsconf"
	"github.com/raywall/dynamo-redis-migrator/pkg/config"
	"github.com/raywall/dynamo-redis-migrator/pkg/logger"
	"github.com/raywall/dynamo-redis-migrator/pkg/observability"
	"github.com/raywall/dynamo-redis-migrator/pkg/secrets"
	"github.com/raywall/dynamo-redis-migrator/redisdoc"
)

func main() {
	// Carrega .env local quando existir (ambiente de desenvolvimento).
	_ = godotenv.Load()

	configPath := flag.String("config", "", "caminho do arquivo YAML de configuração (opcional)")
	table := flag.String("dynamo-table", "", "nome ou ARN da tabela DynamoDB de origem")
	region := flag.String("region", "", "região da AWS para o DynamoDB (opcional)")
	redisHost := flag.String("redis-host", "", "host do Redis de destino")
	redisPort := flag.Int("redis-port", 0, "porta do Redis")
	redisDB := flag.Int("redis-db", 0, "database lógico do Redis")
	redisPassword := flag.String("redis-password", "", "senha do Redis (opcional)")
	batchSize := flag.Int("batch-size", 0, "tamanho de página do scan")
	dryRun := flag.Bool("dry-run", false, "simula a migração sem escrever no Redis")
	flag.Parse()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		fatal(err)
	}

	// Flags explícitas têm precedência sobre arquivo e ambiente.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dynamo-table":
			cfg.Table = *table
		case "region":
			cfg.Region = *region
		case "redis-host":
			cfg.Redis.Host = *redisHost
		case "redis-port":
			cfg.Redis.Port = *redisPort
		case "redis-db":
			cfg.Redis.DB = *redisDB
		case "redis-password":
			cfg.Redis.Password = *redisPassword
		case "batch-size":
			cfg.BatchSize = *batchSize
		case "dry-run":
			cfg.DryRun = *dryRun
		}
	})

	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	log := logger.Configure(cfg.Logging).With().
		Str("run_id", uuid.NewString()).
		Str("table", cfg.Table).
		Logger()

	ctx := context.Background()

	awsCfg, err := awsconf.Load(ctx, cfg.Region)
	if err != nil {
		log.Error().Err(err).Msg("error loading AWS configuration")
		os.Exit(1)
	}
	log.Info().Msg("successfully initialized AWS session")

	dynamoClient := dynamodb.NewFromConfig(awsCfg)

	schema, err := dyndb.LoadKeySchema(ctx, dynamoClient, cfg.Table)
	if err != nil {
		log.Error().Err(err).Msg("error connecting to DynamoDB")
		os.Exit(1)
	}
	log.Info().Str("partition", schema.Partition).Str("sort", schema.Sort).
		Msg("connected to DynamoDB table")

	password := cfg.Redis.Password
	if cfg.Redis.PasswordSecretARN != "" {
		resolver := secrets.NewResolver(secretsmanager.NewFromConfig(awsCfg))
		password, err = resolver.Resolve(ctx, cfg.Redis.PasswordSecretARN)
		if err != nil {
			log.Error().Err(err).Msg("error resolving redis password secret")
			os.Exit(1)
		}
	}

	writer := redisdoc.New(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: password,
		DB:       cfg.Redis.DB,
	})
	if err := writer.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("error connecting to Redis")
		os.Exit(1)
	}
	log.Info().Str("addr", cfg.Redis.Addr()).Int("db", cfg.Redis.DB).
		Msg("connected to Redis")

	provider, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		log.Error().Err(err).Msg("error configuring metrics provider")
		os.Exit(1)
	}

	engine := &migrate.Engine{
		Pager:   dyndb.NewPager(dynamoClient, cfg.Table, int32(cfg.BatchSize), log),
		Writer:  writer,
		Schema:  schema,
		Table:   cfg.Table,
		DryRun:  cfg.DryRun,
		Log:     log,
		Metrics: provider,
	}

	total, err := engine.Run(ctx)
	if err != nil {
		log.Error().Err(err).Int("migrated", total).Msg("error during migration")
		os.Exit(1)
	}

	if !cfg.DryRun {
		if _, err := migrate.Validate(ctx, writer, cfg.Table, total, log); err != nil {
			log.Error().Err(err).Msg("error during validation")
		}
	}

	log.Info().Int("migrated", total).Msg("migration finished")
}

func fatal(err error) {
	os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}
