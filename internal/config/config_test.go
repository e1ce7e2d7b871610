package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml")
	}
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadWorkerEnricherConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *WorkerEnricherConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5433
  user: enricher
  password: secret
  dbname: catalog
  sslmode: require
temporal:
  host_port: "temporal:7233"
  enrichment_task_queue: "enrich-test"
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
enrichment:
  connector_timeout: "15s"
  max_images_per_invocation: 5
  concurrency: 4
  priority_categories: ["Notebooks", "Monitores"]
vendors:
  lenovo_requests_per_second: 0.5
  icecat_url: "http://icecat.local"
`,
			validate: func(t *testing.T, cfg *WorkerEnricherConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "enrich-test", cfg.Temporal.EnrichmentTaskQueue)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, 15*time.Second, cfg.Enrichment.ConnectorTimeout)
				assert.Equal(t, 5, cfg.Enrichment.MaxImagesPerInvocation)
				assert.Equal(t, 4, cfg.Enrichment.Concurrency)
				assert.Equal(t, []string{"Notebooks", "Monitores"}, cfg.Enrichment.PriorityCategories)
				assert.Equal(t, 0.5, cfg.Vendors.LenovoRequestsPerSecond)
				assert.Equal(t, "http://icecat.local", cfg.Vendors.IcecatURL)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
`,
			validate: func(t *testing.T, cfg *WorkerEnricherConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "catalog-enrichment", cfg.Temporal.EnrichmentTaskQueue)
				assert.Equal(t, "CATALOG_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, 20*time.Second, cfg.Enrichment.ConnectorTimeout)
				assert.Equal(t, 10*time.Second, cfg.Enrichment.ImageTimeout)
				assert.Equal(t, 10, cfg.Enrichment.MaxImagesPerInvocation)
				assert.Equal(t, 1, cfg.Enrichment.Concurrency)
				assert.Equal(t, 50, cfg.Enrichment.PendingLimit)
				assert.Equal(t, DefaultPriorityCategories, cfg.Enrichment.PriorityCategories)
				assert.Equal(t, float64(1), cfg.Vendors.LenovoRequestsPerSecond)
				assert.Equal(t, "https://world.openproductsfacts.org/api/v0", cfg.Vendors.OpenProductDataURL)
			},
		},
		{
			name:       "missing config file",
			configFile: "",
			validate: func(t *testing.T, cfg *WorkerEnricherConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
			},
		},
		{
			name: "invalid value",
			configFile: `
database:
  port: invalid
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadWorkerEnricherConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadEventBridgeConfig(t *testing.T) {
	cfg, err := LoadEventBridgeConfig(writeConfig(t, `
nats:
  url: "nats://nats:4222"
  max_deliver: 7
`), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "nats://nats:4222", cfg.NATS.URL)
	assert.Equal(t, 7, cfg.NATS.MaxDeliver)
	assert.Equal(t, "enrichment-bridge", cfg.NATS.ConsumerName)
	assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
	assert.Equal(t, "catalog-enrichment", cfg.Temporal.EnrichmentTaskQueue)
}

func TestLoadAPIConfig(t *testing.T) {
	cfg, err := LoadAPIConfig(writeConfig(t, `
server:
  port: 9090
auth:
  api_keys: ["k1", "k2"]
`), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 120, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Auth.APIKeys)
	assert.Equal(t, 50, cfg.Enrichment.PendingLimit)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TEC_ENRICHER_DATABASE_HOST", "db.internal")
	t.Setenv("TEC_ENRICHER_ENRICHMENT_CONCURRENCY", "3")

	cfg, err := LoadWorkerEnricherConfig(writeConfig(t, ""), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3, cfg.Enrichment.Concurrency)
}

func TestEnvFileOverrides(t *testing.T) {
	envDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte("TEC_ENRICHER_DATABASE_DBNAME=base\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env.worker-enricher.local"), []byte("TEC_ENRICHER_DATABASE_DBNAME=local\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("TEC_ENRICHER_DATABASE_DBNAME") })

	cfg, err := LoadWorkerEnricherConfig(writeConfig(t, ""), envDir)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Database.DBName)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "h", Port: 1, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", cfg.DSN())
}
