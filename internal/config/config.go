package config

import (
	"flag"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultMaxContentLength — лимит тела запроса по умолчанию (16 MiB).
const DefaultMaxContentLength int64 = 16 * 1024 * 1024

type Config struct {
	// Server-side settings
	SecretKey         string   `env:"SECRET_KEY"`
	DatabaseDSN       string   `env:"DATABASE_URL"`
	UploadFolder      string   `env:"UPLOAD_FOLDER"`
	MaxContentLength  int64    `env:"MAX_CONTENT_LENGTH"`
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envSeparator:","`
	StaticDir         string   `env:"STATIC_DIR"`
	CORSOrigins       []string `env:"CORS_ORIGINS" envSeparator:","`
	LogMode           string   `env:"LOG_MODE"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"SERVER_URL"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги переопределяют значения из env
	// Server flags
	flag.StringVar(&cfg.SecretKey, "secret-key", cfg.SecretKey, "секретный ключ приложения")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres URL или sqlite://path)")
	flag.StringVar(&cfg.UploadFolder, "upload-folder", cfg.UploadFolder, "каталог для загруженных фото")
	flag.Int64Var(&cfg.MaxContentLength, "max-content-length", cfg.MaxContentLength, "максимальный размер тела запроса, байт")
	flag.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "каталог со статикой клиента")
	flag.StringVar(&cfg.LogMode, "log-mode", cfg.LogMode, "режим логгера: dev | prod")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "полный URL сервера для клиента (по умолчанию из base-url)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет пустые поля значениями по умолчанию.
func (cfg *Config) applyDefaults() {
	if cfg.SecretKey == "" {
		cfg.SecretKey = "dev-secret-key-change-in-production"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "postgresql://localhost:5432/bucketlist_db"
	}
	if cfg.UploadFolder == "" {
		cfg.UploadFolder = "uploads"
	}
	if cfg.MaxContentLength <= 0 {
		cfg.MaxContentLength = DefaultMaxContentLength
	}
	cfg.AllowedExtensions = normalizeList(cfg.AllowedExtensions, true)
	if len(cfg.AllowedExtensions) == 0 {
		cfg.AllowedExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	cfg.CORSOrigins = normalizeList(cfg.CORSOrigins, false)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if cfg.LogMode == "" {
		cfg.LogMode = "dev"
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	// По умолчанию слушаем все интерфейсы.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = ":5000"
	}

	if cfg.ServerURL == "" {
		host := cfg.BaseURL
		host = strings.TrimPrefix(host, "0.0.0.0")
		if strings.HasPrefix(host, ":") {
			host = "localhost" + host
		}
		if cfg.EnableHTTPS {
			cfg.ServerURL = "https://" + host
		} else {
			cfg.ServerURL = "http://" + host
		}
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
}

func normalizeList(in []string, lower bool) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if lower {
			v = strings.ToLower(strings.TrimPrefix(v, "."))
		}
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
