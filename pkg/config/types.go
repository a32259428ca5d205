package config

import "fmt"

// Config representa a configuração resolvida de uma execução de migração.
//
// A resolução segue a precedência: arquivo YAML < variáveis de ambiente <
// flags de linha de comando (aplicadas pelo cmd).
type Config struct {
	// Table é o nome (ou ARN) da tabela DynamoDB de origem.
	Table string `yaml:"table" env:"DYNAMO_TABLE_NAME" validate:"required"`
	// Region da AWS para o DynamoDB. Vazio usa a resolução padrão do SDK.
	Region string `yaml:"region" env:"AWS_REGION"`
	// BatchSize é o limite de itens por página do Scan.
	BatchSize int `yaml:"batch_size" env:"BATCH_SIZE" envDefault:"100" validate:"gte=1"`
	// DryRun executa toda a computação, mas apenas loga as escritas.
	DryRun bool `yaml:"dry_run" env:"DRY_RUN"`

	Redis   RedisConf   `yaml:"redis"`
	Logging LoggingConf `yaml:"logging"`
	Metrics MetricsConf `yaml:"metrics"`
}

// RedisConf contém os dados de conexão com o Redis de destino.
type RedisConf struct {
	Host string `yaml:"host" env:"REDIS_HOST" envDefault:"localhost" validate:"required"`
	Port int    `yaml:"port" env:"REDIS_PORT" envDefault:"6379" validate:"gte=1,lte=65535"`
	DB   int    `yaml:"db" env:"REDIS_DB" validate:"gte=0"`
	// Password em texto plano (opcional).
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	// PasswordSecretARN, quando definido, resolve a senha via AWS Secrets
	// Manager e tem precedência sobre Password.
	PasswordSecretARN string `yaml:"password_secret_arn" env:"REDIS_PASSWORD_SECRET_ARN"`
}

// Addr retorna o endereço host:port do Redis.
func (r RedisConf) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LoggingConf controla o logger estruturado.
type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"omitempty,oneof=json console"`
}

// MetricsConf controla a emissão de métricas.
type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

// DatadogConf configura o provedor dogstatsd.
type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace" env:"DD_NAMESPACE"`
}
