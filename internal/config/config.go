package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"subpulse/internal/record"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath    string
	LogDir      string
	RecordsPath string
	Semester    *record.SemesterRange
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory first
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	recordsPath := getEnv("RECORDS_FILE", filepath.Join(dataPath, "records.jsonl"))

	semester, err := loadSemester()
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		DataPath:    dataPath,
		LogDir:      logDir,
		RecordsPath: recordsPath,
		Semester:    semester,
	}, nil
}

// loadSemester reads the optional SEMESTER_START / SEMESTER_END dates.
func loadSemester() (*record.SemesterRange, error) {
	startStr := os.Getenv("SEMESTER_START")
	endStr := os.Getenv("SEMESTER_END")
	if startStr == "" && endStr == "" {
		return nil, nil
	}

	semester := &record.SemesterRange{}
	if startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SEMESTER_START %q: %w", startStr, err)
		}
		semester.Start = &start
	}
	if endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SEMESTER_END %q: %w", endStr, err)
		}
		semester.End = &end
	}
	return semester, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
