package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/popo0015/body-tracker/internal/journal"
)

// Home is the per-user state directory holding the session token and journal.
type Home struct {
	dir string
}

// ResolveHome uses $BODYTRACK_HOME, falling back to ~/.bodytrack.
func ResolveHome() (*Home, error) {
	if dir := os.Getenv("BODYTRACK_HOME"); dir != "" {
		return &Home{dir: dir}, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Home{dir: filepath.Join(userHome, ".bodytrack")}, nil
}

func (h *Home) sessionPath() string {
	return filepath.Join(h.dir, "session")
}

// Token returns the saved session token, or "" when logged out.
func (h *Home) Token() (string, error) {
	data, err := os.ReadFile(h.sessionPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (h *Home) SaveToken(token string) error {
	if err := os.MkdirAll(h.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(h.sessionPath(), []byte(token+"\n"), 0o600)
}

func (h *Home) ClearToken() error {
	err := os.Remove(h.sessionPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (h *Home) Journal() *journal.FileStore {
	return journal.NewFileStore(filepath.Join(h.dir, "journal.json"))
}
