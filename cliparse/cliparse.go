package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/angelito/models"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"3000"`
	StoreType   string `env:"STORE_TYPE" envDefault:"json"`
	DataFile    string `env:"DATA_FILE" envDefault:"participants.json"`
	DatabaseURL string `env:"DATABASE_URL"`
	StaticDir   string `env:"STATIC_DIR"`
	AdminKey    string `env:"ADMIN_KEY"`
	PublicURL   string `env:"PUBLIC_URL"`

	// Seed imports DataFile into an empty SQL store at startup
	Seed bool
}

// LoadDotEnv loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("angelito", flag.ContinueOnError)

	// Network config
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.PublicURL, "public-url", cfg.PublicURL, "Public URL encoded in the share QR code")
	fs.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "Directory served at / (default: embedded page)")

	// Storage
	fs.StringVar(&cfg.StoreType, "t", cfg.StoreType, "Store type (json, sqlite or postgres)")
	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "Participants JSON file")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL (sqlite or postgres)")
	fs.BoolVar(&cfg.Seed, "seed", false, "Import the participants file into an empty database")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", cfg.AdminKey, "Admin key for /admin-data (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	switch cfg.StoreType {
	case models.StoreJSON:
		if cfg.DataFile == "" {
			return Config{}, errors.New("participants file required (use -f or DATA_FILE env)")
		}
	case models.StoreSQLite, models.StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	if cfg.Seed && cfg.StoreType == models.StoreJSON {
		return Config{}, errors.New("-seed only applies to sqlite or postgres stores")
	}

	return cfg, nil
}
