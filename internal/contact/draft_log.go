package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/umarsaeed-beep/clothing-project/internal/domain"
)

// DraftLog is the client-local fallback for contact messages the backend
// never acknowledged. Append-only; drafts are not reconciled automatically.
type DraftLog struct {
	path string
}

func NewDraftLog(path string) *DraftLog {
	return &DraftLog{path: path}
}

// Append adds one record to the end of the draft file.
func (l *DraftLog) Append(_ context.Context, rec domain.ContactRecord) error {
	drafts, err := l.read()
	if err != nil {
		return err
	}
	drafts = append(drafts, rec)

	data, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal drafts: %w", err)
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create draft dir: %w", err)
		}
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write draft file: %w", err)
	}
	return nil
}

// All returns every stored draft, oldest first.
func (l *DraftLog) All(_ context.Context) ([]domain.ContactRecord, error) {
	return l.read()
}

func (l *DraftLog) read() ([]domain.ContactRecord, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}

	var drafts []domain.ContactRecord
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, fmt.Errorf("failed to parse draft file: %w", err)
	}
	return drafts, nil
}
