package filesystem

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"trinket/internal/application"
	"trinket/internal/config"
	"trinket/internal/domain"
	"trinket/internal/logging"
	"trinket/internal/ports"
)

const tempPattern = ".trinket-*.tmp"

// Store implements ports.SnippetRepository with one plain text file per
// snippet inside a base directory
type Store struct {
	basePath string
	log      logrus.FieldLogger

	mu      sync.Mutex
	entropy io.Reader

	// swapped in tests to simulate failures between write and rename
	rename func(oldpath, newpath string) error
	now    func() time.Time
}

// Ensure Store implements SnippetRepository
var _ ports.SnippetRepository = (*Store)(nil)

// NewStore creates a new filesystem snippet store rooted at basePath
func NewStore(basePath string, log logrus.FieldLogger) *Store {
	basePath = config.ExpandHome(basePath)
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		basePath: basePath,
		log:      log.WithField("component", "store"),
		entropy:  ulid.Monotonic(rand.Reader, 0),
		rename:   os.Rename,
		now:      time.Now,
	}
}

// BasePath returns the directory holding the snippet files
func (s *Store) BasePath() string {
	return s.basePath
}

// Initialize creates the base directory and its parents if needed and
// verifies that it is writable. Calling it again is harmless.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return application.NewIOError("initialize", s.basePath, err)
	}

	info, err := os.Stat(s.basePath)
	if err != nil {
		return application.NewIOError("initialize", s.basePath, err)
	}
	if !info.IsDir() {
		return application.NewIOError("initialize", s.basePath, fmt.Errorf("not a directory"))
	}

	probe, err := os.CreateTemp(s.basePath, tempPattern)
	if err != nil {
		return application.NewIOError("initialize", s.basePath, fmt.Errorf("directory not writable: %w", err))
	}
	if err := probe.Close(); err != nil {
		s.log.WithError(err).WithField("path", probe.Name()).Warn("failed to close probe file")
	}
	if err := os.Remove(probe.Name()); err != nil {
		s.log.WithError(err).WithField("path", probe.Name()).Warn("failed to remove probe file")
	}

	return nil
}

// Save writes content to a new snippet file. The content goes to a temporary
// file in the same directory first and is renamed into place once synced, so
// the final path is either absent or complete.
func (s *Store) Save(content string) (*domain.Snippet, error) {
	id, err := s.newID()
	if err != nil {
		return nil, application.NewIOError("save", s.basePath, err)
	}
	finalPath := filepath.Join(s.basePath, domain.FileName(id))

	f, err := os.CreateTemp(s.basePath, tempPattern)
	if err != nil {
		return nil, application.NewIOError("save", s.basePath, err)
	}
	tempPath := f.Name()

	// Clean up temp file on failure
	success := false
	defer func() {
		if !success {
			f.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return nil, application.NewIOError("save", tempPath, err)
	}
	if err := f.Sync(); err != nil {
		return nil, application.NewIOError("save", tempPath, err)
	}
	if err := f.Close(); err != nil {
		return nil, application.NewIOError("save", tempPath, err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return nil, application.NewIOError("save", tempPath, err)
	}
	if err := s.rename(tempPath, finalPath); err != nil {
		return nil, application.NewIOError("save", finalPath, err)
	}
	success = true

	snippet := &domain.Snippet{
		ID:       id,
		Content:  content,
		Preview:  domain.MakePreview(content),
		FilePath: finalPath,
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		// The content is already in place; only the metadata is missing
		s.log.WithError(err).WithField("path", finalPath).Warn("stat after save failed")
		snippet.Modified = s.now()
	} else {
		snippet.Modified = info.ModTime()
	}
	snippet.Created = createdAt(id, snippet.Modified)

	s.log.WithField("id", id).Debug("snippet saved")
	return snippet, nil
}

// LoadAll reads every snippet file in the base directory, newest first.
// Entries that cannot be read are logged and skipped; only a failure to
// list the directory itself is returned.
func (s *Store) LoadAll() ([]domain.Snippet, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, application.NewIOError("list", s.basePath, err)
	}

	snippets := make([]domain.Snippet, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		id, ok := domain.IDFromFileName(entry.Name())
		if !ok {
			continue
		}

		path := filepath.Join(s.basePath, entry.Name())
		snippet, err := s.read(id, path)
		if err != nil {
			s.log.WithError(err).WithField("path", path).Warn("skipping unreadable snippet")
			continue
		}
		snippets = append(snippets, *snippet)
	}

	domain.SortNewestFirst(snippets)
	return snippets, nil
}

// Get reads a single snippet by ID
func (s *Store) Get(id string) (*domain.Snippet, error) {
	if err := application.ValidateSnippetID(id); err != nil {
		return nil, err
	}

	path := filepath.Join(s.basePath, domain.FileName(id))
	snippet, err := s.read(id, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("snippet %s: %w", id, application.ErrNotFound)
		}
		return nil, err
	}
	return snippet, nil
}

func (s *Store) read(id, path string) (*domain.Snippet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, application.NewIOError("read", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, application.NewIOError("read", path, fmt.Errorf("not a regular file"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, application.NewIOError("read", path, err)
	}
	if !utf8.Valid(data) {
		return nil, application.NewIOError("read", path, fmt.Errorf("content is not valid UTF-8"))
	}

	content := string(data)
	return &domain.Snippet{
		ID:       id,
		Content:  content,
		Preview:  domain.MakePreview(content),
		Created:  createdAt(id, info.ModTime()),
		Modified: info.ModTime(),
		FilePath: path,
	}, nil
}

// newID generates a ULID; the monotonic entropy keeps IDs minted in the same
// millisecond strictly increasing.
func (s *Store) newID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(s.now()), s.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// createdAt returns the creation instant encoded in a ULID snippet ID, or
// fallback for IDs that are not ULIDs.
func createdAt(id string, fallback time.Time) time.Time {
	u, err := ulid.ParseStrict(id)
	if err != nil {
		return fallback
	}
	return ulid.Time(u.Time())
}
