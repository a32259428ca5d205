package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outro backend sem alterar a lógica de migração.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
}

// Nomes das métricas emitidas durante uma execução de migração.
const (
	MetricPagesFetched  = "migration.pages.fetched"
	MetricItemsMigrated = "migration.items.migrated"
	MetricItemsSkipped  = "migration.items.skipped"
	MetricItemsFailed   = "migration.items.failed"
)
