package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RecordLog is a JSON-array file that only ever grows. Each Append reads the
// whole array, appends one record, and rewrites the file. The mutex makes this
// read-modify-write safe across concurrent requests; without it two
// submissions racing on the same file can silently drop one record.
type RecordLog struct {
	mu   sync.Mutex
	path string
}

func NewRecordLog(path string) *RecordLog {
	return &RecordLog{path: path}
}

// Append adds rec to the end of the array.
func (l *RecordLog) Append(rec interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readLocked()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	records = append(records, raw)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record log: %w", err)
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log dir: %w", err)
		}
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record log: %w", err)
	}
	return nil
}

// Len returns the number of stored records.
func (l *RecordLog) Len() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readLocked()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (l *RecordLog) readLocked() ([]json.RawMessage, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record log: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse record log: %w", err)
	}
	return records, nil
}
