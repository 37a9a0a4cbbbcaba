package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", conf.Environment)
	assert.Equal(t, "5000", conf.ServerPort)
	assert.Equal(t, "memory", conf.StorageBackend)
	assert.Equal(t, "langchain", conf.LLMProvider)
	assert.Equal(t, "gemini-1.5-pro", conf.LLMModel)
	assert.Equal(t, 60*time.Second, conf.LLMTimeout)
	assert.Equal(t, 720*time.Hour, conf.SessionTTL)
	assert.Equal(t, 0, conf.RateLimitRPM)
	assert.False(t, conf.FallbackOnUpstreamError)
}

func TestLoadConfigFromEnvFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := "STORAGE_BACKEND=database\nDB_DRIVER=sqlite\nDB_PATH=/tmp/x.db\nGEMINI_API_KEY=from-file\nLLM_TIMEOUT=5s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("RATE_LIMIT_RPM", "30")

	conf, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "database", conf.StorageBackend)
	assert.Equal(t, "sqlite", conf.DBDriver)
	assert.Equal(t, "/tmp/x.db", conf.GetDBConnString())
	assert.Equal(t, "from-file", conf.LLMAPIKey)
	assert.Equal(t, 5*time.Second, conf.LLMTimeout)
	assert.Equal(t, "openai", conf.LLMProvider)
	assert.Equal(t, 30, conf.RateLimitRPM)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Environment: "development", StorageBackend: "memory", LLMProvider: "langchain"}
	}

	c := valid()
	assert.NoError(t, c.Validate())

	c = valid()
	c.StorageBackend = "s3"
	assert.Error(t, c.Validate())

	c = valid()
	c.StorageBackend = "database"
	c.DBDriver = "oracle"
	assert.Error(t, c.Validate())

	c = valid()
	c.LLMProvider = "bard"
	assert.Error(t, c.Validate())

	c = valid()
	c.Environment = "production"
	assert.Error(t, c.Validate())
	c.JWTSecret = "s"
	assert.NoError(t, c.Validate())

	c = valid()
	c.RateLimitRPM = -1
	assert.Error(t, c.Validate())
}

func TestGetDBConnString(t *testing.T) {
	c := Config{DBDriver: "postgres", DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", c.GetDBConnString())

	c.DBDriver = "mysql"
	c.DBPort = "3306"
	assert.Equal(t, "u:p@tcp(db:3306)/n?charset=utf8mb4&parseTime=True&loc=Local", c.GetDBConnString())
}

func TestInitLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitLogger("debug", dir))
	t.Cleanup(func() { InitLogger("info", "") })

	Logger.Infow("hello", "k", "v")
	_ = Logger.Sync()

	files, err := filepath.Glob(filepath.Join(dir, "app_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	assert.Error(t, InitLogger("loud", ""))
}
