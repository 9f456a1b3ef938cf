package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DataSource string

const (
	DataSourcePostgres  DataSource = "postgres"
	DataSourceFirestore DataSource = "firestore"
	DataSourceMock      DataSource = "mock"
)

const (
	defaultAddr       = ":8080"
	defaultCollection = "reclamos"
	defaultDBTimeout  = 5 * time.Second
)

type Config struct {
	LogLevel            string
	LogFormat           string
	Addr                string
	DataSource          DataSource
	DatabaseURL         string
	ProjectID           string
	FirestoreCollection string
	ChartTimeZone       string
	DBTimeout           time.Duration
}

// LoadEnvFile loads variables from path into the process environment without
// overriding ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func New() *Config {
	return &Config{
		LogLevel:            os.Getenv("LOGLEVEL"),
		LogFormat:           os.Getenv("LOGFORMAT"),
		Addr:                getOrDefault("ADDR", defaultAddr),
		DataSource:          DataSource(strings.ToLower(getOrDefault("DATASOURCE", string(DataSourcePostgres)))),
		DatabaseURL:         getDatabaseURL(),
		ProjectID:           os.Getenv("PROJECTID"),
		FirestoreCollection: getOrDefault("FIRESTORECOLLECTION", defaultCollection),
		ChartTimeZone:       getOrDefault("CHARTTIMEZONE", "UTC"),
		DBTimeout:           getDuration("DBTIMEOUT", defaultDBTimeout),
	}
}

func (c *Config) Validate() error {
	switch c.DataSource {
	case DataSourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("database DSN missing: set DATABASE_URL or POSTGRES_URL")
		}
	case DataSourceFirestore:
		if c.ProjectID == "" {
			return fmt.Errorf("PROJECTID is required for the firestore data source")
		}
	case DataSourceMock:
	default:
		return fmt.Errorf("unknown DATASOURCE %q", c.DataSource)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("DBTIMEOUT must be positive")
	}
	return nil
}

// Location resolves ChartTimeZone, the zone dashboard days are counted in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ChartTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CHARTTIMEZONE %q: %w", c.ChartTimeZone, err)
	}
	return loc, nil
}

func getDatabaseURL() string {
	for _, key := range []string{"DATABASE_URL", "POSTGRES_URL"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func getOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}
