package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Batch    BatchConfig
	OCR      OCRConfig
	AI       AIConfig
	Mapping  MappingConfig
	Ingest   IngestConfig
	Export   ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// BatchConfig holds batch orchestration configuration
type BatchConfig struct {
	// Workers is the fixed worker pool width; clamped to [1, 10].
	Workers int
}

// OCRConfig holds PDF decoding and OCR configuration
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TessdataDir   string
	Language      string
	DPI           int // default rasterization resolution; clamped to [72, 600]
	PageLimit     int // 0 means all pages
	MinTextLength int // threshold for the text-based vs scanned decision
	Engine        string
	PSM           int
	OEM           int
}

// AIConfig holds the fallback inference backend configuration
type AIConfig struct {
	Enabled     bool
	Model       string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// MappingConfig holds the CNPJ organizational mapping configuration
type MappingConfig struct {
	Path string // JSON mapping file; empty disables the lookup
}

// IngestConfig holds ingestion configuration
type IngestConfig struct {
	WatchDir string
	Debounce time.Duration
}

// ExportConfig holds report output configuration
type ExportConfig struct {
	OutputDir string
}

// OCR engine selection values.
const (
	OCREngineExec      = "exec"
	OCREngineGosseract = "gosseract"
)

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Batch: BatchConfig{
			Workers: clampInt(getEnvAsInt("BATCH_WORKERS", 3), 1, 10),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			Language:      getEnv("OCR_LANGUAGE", "por"),
			DPI:           clampInt(getEnvAsInt("OCR_DPI", 300), 72, 600),
			PageLimit:     getEnvAsInt("PAGE_LIMIT", 0),
			MinTextLength: getEnvAsInt("MIN_TEXT_LENGTH", 50),
			Engine:        getEnv("OCR_ENGINE", OCREngineExec),
			PSM:           getEnvAsInt("OCR_PSM", 4),
			OEM:           getEnvAsInt("OCR_OEM", 3),
		},
		AI: AIConfig{
			Enabled:     getEnvAsBool("AI_ENABLED", false),
			Model:       getEnv("AI_MODEL", "llama3:8b"),
			BaseURL:     getEnv("AI_BASE_URL", "http://localhost:11434"),
			Temperature: getEnvAsFloat32("AI_TEMPERATURE", 0.1),
			Timeout:     getEnvAsDuration("AI_TIMEOUT", 120*time.Second),
		},
		Mapping: MappingConfig{
			Path: getEnv("CNPJ_MAP_PATH", ""),
		},
		Ingest: IngestConfig{
			WatchDir: getEnv("WATCH_DIR", ""),
			Debounce: getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
		},
		Export: ExportConfig{
			OutputDir: getEnv("REPORT_DIR", "./reports"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.Language == "" {
		return NewAppError("CONFIG_ERROR", "OCR_LANGUAGE is required", ErrInvalidInput)
	}
	if c.OCR.Engine != OCREngineExec && c.OCR.Engine != OCREngineGosseract {
		return NewAppError("CONFIG_ERROR", "OCR_ENGINE must be exec or gosseract", ErrInvalidInput)
	}
	if c.AI.Enabled {
		if c.AI.BaseURL == "" {
			return NewAppError("CONFIG_ERROR", "AI_BASE_URL is required when AI_ENABLED", ErrInvalidInput)
		}
		if c.AI.Model == "" {
			return NewAppError("CONFIG_ERROR", "AI_MODEL is required when AI_ENABLED", ErrInvalidInput)
		}
	}
	return nil
}
