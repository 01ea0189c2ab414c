package graph

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"golang.org/x/oauth2"
)

// RecordFileName is the auth record file name inside the user data folder.
const RecordFileName = ".simply-outlook-mcp"

// ErrNoRecord is returned when no usable auth record is stored.
var ErrNoRecord = errors.New("auth record not available")

// AuthRecord identifies the signed-in account and carries its tokens.
type AuthRecord struct {
	Username      string        `json:"username"`
	HomeAccountID string        `json:"homeAccountId,omitempty"`
	TenantID      string        `json:"tenantId"`
	ClientID      string        `json:"clientId"`
	Authority     string        `json:"authority"`
	Token         *oauth2.Token `json:"token,omitempty"`
}

var roamingSuffix = regexp.MustCompile(`(.Roaming)*$`)

// DefaultRecordPath resolves the record file in the user data folder:
// %APPDATA% with Roaming swapped for Local on Windows, else $HOME.
func DefaultRecordPath() (string, error) {
	var folder string
	if appData := os.Getenv("APPDATA"); appData != "" {
		folder = roamingSuffix.ReplaceAllString(appData, `\Local`)
	} else {
		folder = os.Getenv("HOME")
	}
	if folder == "" {
		return "", errors.New("User data folder not defined.")
	}
	return filepath.Join(folder, RecordFileName), nil
}

// RecordStore persists the auth record as JSON.
type RecordStore struct {
	path string
	mu   sync.RWMutex
}

// NewRecordStore creates a store backed by path.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Path returns the backing file path.
func (s *RecordStore) Path() string { return s.path }

// Load reads the record. Missing or corrupt files yield ErrNoRecord.
func (s *RecordStore) Load() (*AuthRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoRecord
		}
		return nil, err
	}

	var rec AuthRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, ErrNoRecord
	}
	return &rec, nil
}

// Save writes the record with 0600 permissions.
func (s *RecordStore) Save(rec *AuthRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Remove deletes the record. A missing file is not an error.
func (s *RecordStore) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
