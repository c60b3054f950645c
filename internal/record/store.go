package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// LoadFile reads assignments from a JSONL file, one record per line.
// Invalid lines are skipped with a warning; a missing file is not an
// error and yields an empty set.
func LoadFile(path string) ([]Assignment, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer file.Close()

	var records []Assignment
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r Assignment
		if err := json.Unmarshal(line, &r); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Skipping invalid JSON line in record file")
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	return records, nil
}

// SaveFile writes assignments as JSONL, creating parent directories as
// needed. The write goes through a temp file and rename so readers never
// observe a half-written store.
func SaveFile(path string, records []Assignment) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create record directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create record file: %w", err)
	}

	writer := bufio.NewWriter(file)
	for _, r := range records {
		out, err := json.Marshal(r)
		if err != nil {
			file.Close()
			return fmt.Errorf("failed to marshal record %s: %w", r.ID, err)
		}
		writer.Write(out)
		writer.WriteByte('\n')
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush record file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close record file: %w", err)
	}

	return os.Rename(tmp, path)
}
