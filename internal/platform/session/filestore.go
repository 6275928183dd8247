package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the signed-in operator id and the selected period id in
// two small JSON side files, so both survive restarts. A missing file reads
// back as an empty id.
type FileStore struct {
	mu         sync.Mutex
	userPath   string
	periodPath string
}

type userFile struct {
	UserID string `json:"user_id"`
}

type periodFile struct {
	PeriodID string `json:"period_id"`
}

// NewFileStore creates a store writing under dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir %s: %w", dir, err)
	}
	return &FileStore{
		userPath:   filepath.Join(dir, "user.json"),
		periodPath: filepath.Join(dir, "period.json"),
	}, nil
}

// CurrentUserID returns the signed-in operator id, or "" when nobody has
// signed in yet.
func (s *FileStore) CurrentUserID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f userFile
	if err := readJSON(s.userPath, &f); err != nil {
		return "", err
	}
	return f.UserID, nil
}

// SetCurrentUser records the signed-in operator id.
func (s *FileStore) SetCurrentUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.userPath, userFile{UserID: userID})
}

// CurrentPeriodID returns the selected period id, or "" when none is
// selected.
func (s *FileStore) CurrentPeriodID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f periodFile
	if err := readJSON(s.periodPath, &f); err != nil {
		return "", err
	}
	return f.PeriodID, nil
}

// SetCurrentPeriodID records the selected period id. An empty id clears the
// selection.
func (s *FileStore) SetCurrentPeriodID(periodID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.periodPath, periodFile{PeriodID: periodID})
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
