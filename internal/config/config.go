package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	ListenAddr  string
	LogLevel    string

	// DBPath is the sqlite database file. Backups copy this file verbatim.
	DBPath string

	// PDFDir receives rendered invoice documents.
	PDFDir string

	// ExportDir is the default destination for CSV exports and DB backups.
	ExportDir string
}

// Load loads configuration from environment variables and an optional .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "chalan"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		ListenAddr:  getenv("LISTEN_ADDR", "127.0.0.1:8347"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		DBPath:      getenv("DATABASE_PATH", "invoices.db"),
		PDFDir:      getenv("PDF_DIR", "pdf"),
		ExportDir:   getenv("EXPORT_DIR", "export"),
	}
}

// PDFPath returns the output path for a rendered invoice, keyed by chalan number.
func (c Config) PDFPath(filename string) string {
	return filepath.Join(c.PDFDir, filename)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
