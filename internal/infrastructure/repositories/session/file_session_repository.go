package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depocheck/config"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

const (
	sessionDirPerm  = 0o700
	sessionFilePerm = 0o600
)

// FileSessionRepository persists the terminal client's session as YAML.
// The file is its only representation, there is no cookie to mirror.
type FileSessionRepository struct {
	path string
}

var _ repositories.SessionRepository = (*FileSessionRepository)(nil)

// NewFileSessionRepository creates a session store at the configured path.
func NewFileSessionRepository(cfg *config.Config) *FileSessionRepository {
	return &FileSessionRepository{path: cfg.Session.FilePath}
}

// Path returns the location of the session file.
func (it *FileSessionRepository) Path() string {
	return it.path
}

func (it *FileSessionRepository) Get(_ context.Context) entities.Session {
	data, err := os.ReadFile(it.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warnf("Failed to read session file %q: %v", it.path, err)
		}
		return entities.Session{}
	}

	var session entities.Session
	if err = yaml.Unmarshal(data, &session); err != nil {
		logger.Warnf("Ignoring malformed session file %q: %v", it.path, err)
		return entities.Session{}
	}
	return session
}

func (it *FileSessionRepository) Set(_ context.Context, token, username string) error {
	data, err := yaml.Marshal(entities.Session{Token: token, Username: username})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(it.path), sessionDirPerm); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err = os.WriteFile(it.path, data, sessionFilePerm); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	// WriteFile keeps the mode of an existing file
	if err = os.Chmod(it.path, sessionFilePerm); err != nil {
		return fmt.Errorf("failed to restrict session file: %w", err)
	}
	return nil
}

func (it *FileSessionRepository) Clear(_ context.Context) error {
	if err := os.Remove(it.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
