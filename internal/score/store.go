// Package score persists the all-time high score as a plain text file
// holding a single decimal integer.
package score

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jerry/internal/config"
)

// FileStore is the durable high score record.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore creates a store backed by path; a leading ~ is the home
// directory. A nil logger discards persistence warnings.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: config.ExpandPath(path), logger: logger}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored value. A missing or unparsable file yields 0.
func (s *FileStore) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("could not read high score", "path", s.path, "error", err)
		}
		return 0
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil || v < 0 {
		s.logger.Warn("ignoring malformed high score", "path", s.path, "content", fields[0])
		return 0
	}
	return v
}

// Save overwrites the file with v. Errors are logged, never returned:
// a failed save must not interrupt play.
func (s *FileStore) Save(v int) {
	if err := s.write(v); err != nil {
		s.logger.Warn("could not save high score", "path", s.path, "value", v, "error", err)
	}
}

func (s *FileStore) write(v int) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	return os.WriteFile(s.path, []byte(strconv.Itoa(v)+"\n"), 0o644)
}
