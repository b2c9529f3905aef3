package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
	old := os.Args
	os.Args = []string{old[0]}
	t.Cleanup(func() { os.Args = old })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SECRET_KEY", "DATABASE_URL", "UPLOAD_FOLDER", "MAX_CONTENT_LENGTH", "ALLOWED_EXTENSIONS",
		"STATIC_DIR", "CORS_ORIGINS", "LOG_MODE", "BASE_URL", "ENABLE_HTTPS", "SERVER_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, "dev-secret-key-change-in-production", cfg.SecretKey)
	assert.Equal(t, "postgresql://localhost:5432/bucketlist_db", cfg.DatabaseDSN)
	assert.Equal(t, "uploads", cfg.UploadFolder)
	assert.Equal(t, int64(16*1024*1024), cfg.MaxContentLength)
	assert.Equal(t, []string{"png", "jpg", "jpeg", "gif", "webp"}, cfg.AllowedExtensions)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, ":5000", cfg.BaseURL)
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
}

func TestNewConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "sqlite://bucket.db")
	t.Setenv("UPLOAD_FOLDER", "/var/lib/bucket/uploads")
	t.Setenv("MAX_CONTENT_LENGTH", "1024")
	t.Setenv("ALLOWED_EXTENSIONS", " PNG, .jpg ,,heic")
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, "sqlite://bucket.db", cfg.DatabaseDSN)
	assert.Equal(t, "/var/lib/bucket/uploads", cfg.UploadFolder)
	assert.Equal(t, int64(1024), cfg.MaxContentLength)
	assert.Equal(t, []string{"png", "jpg", "heic"}, cfg.AllowedExtensions)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "https://example.com:443", cfg.ServerURL)
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на :5000
	clearEnv(t)
	t.Setenv("BASE_URL", "http://bad:8080")

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, ":5000", cfg.BaseURL)
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
}

func TestConfig_ListenOnAllInterfaces(t *testing.T) {
	cfg := &Config{BaseURL: ":8080"}
	cfg.applyDefaults()
	assert.Equal(t, ":8080", cfg.BaseURL)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)

	cfg = &Config{BaseURL: "0.0.0.0:5000"}
	cfg.applyDefaults()
	assert.Equal(t, "0.0.0.0:5000", cfg.BaseURL)
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)

	cfg = &Config{}
	cfg.applyDefaults()
	assert.Equal(t, ":5000", cfg.BaseURL)
}
