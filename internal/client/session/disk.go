package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv"

	"workwise/internal/apperr"
)

const (
	userKey  = "user"
	tokenKey = "token"
)

// DiskStore keeps the session in two flat files under a base directory.
type DiskStore struct {
	kv *diskv.Diskv
}

// DefaultDir is ~/.workwise, or the working directory when no home exists.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".workwise"
	}
	return filepath.Join(home, ".workwise")
}

func NewDiskStore(dir string) *DiskStore {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir()
	}
	flatTransform := func(string) []string { return []string{} }
	return &DiskStore{kv: diskv.New(diskv.Options{
		BasePath:     dir,
		TempDir:      filepath.Join(dir, ".tmp"),
		Transform:    flatTransform,
		FilePerm:     0o600,
		PathPerm:     0o700,
		CacheSizeMax: 0,
	})}
}

func (d *DiskStore) Load() (Session, bool) {
	if d.Token() == "" {
		return Session{}, false
	}
	raw, err := d.kv.Read(userKey)
	if err != nil {
		return Session{}, false
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, false
	}
	if !s.Complete() {
		return Session{}, false
	}
	return s, true
}

func (d *DiskStore) Token() string {
	raw, err := d.kv.Read(tokenKey)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func (d *DiskStore) Save(s Session, token string) error {
	if !s.Complete() || strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: incomplete session", apperr.ErrInvalidInput)
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := d.kv.Write(tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	if err := d.kv.Write(userKey, raw); err != nil {
		_ = d.kv.Erase(tokenKey)
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (d *DiskStore) Clear() error {
	for _, key := range []string{userKey, tokenKey} {
		if !d.kv.Has(key) {
			continue
		}
		if err := d.kv.Erase(key); err != nil {
			return fmt.Errorf("erase %s: %w", key, err)
		}
	}
	return nil
}
