// Package config loads service configuration from built-in defaults, an
// optional YAML file and environment variables, in that order of priority.
package config

// Catalog sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"`
}

type CatalogConfig struct {
	// Source is "file" or "postgres".
	Source string `koanf:"source"`
	// Path of the annotated JSON catalog when Source is "file".
	Path string `koanf:"path"`
	// Watch reloads the file catalog when it changes on disk.
	Watch bool `koanf:"watch"`
	// AllowReload enables POST /dev/reload-catalog.
	AllowReload bool `koanf:"allow_reload"`
}

type DatabaseConfig struct {
	URL string `koanf:"url"`
}

type RecommendConfig struct {
	DefaultCount int `koanf:"default_count"`
	MaxCount     int `koanf:"max_count"`
	// Seed fixes the sampling sequence; 0 seeds from the clock.
	Seed int64 `koanf:"seed"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Catalog: CatalogConfig{
			Source: SourceFile,
			Path:   "products_with_colors.json",
			Watch:  true,
		},
		Recommend: RecommendConfig{
			DefaultCount: 3,
			MaxCount:     50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Security: SecurityConfig{
			CORSOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
	}
}
