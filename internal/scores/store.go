// Package scores persists each player's best winning score as a JSON
// object on disk.
package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"github.com/lox/tupleout/internal/fileutil"
)

// DefaultPath is the store location used when none is configured.
const DefaultPath = "high_scores.json"

// Entry is one row of the high-score table.
type Entry struct {
	Player string
	Score  int
}

// FileStore keeps best scores in a JSON file. Updates hold an advisory lock
// on a sibling ".lock" file, so concurrent processes sharing the file never
// lose a higher score.
type FileStore struct {
	path   string
	lock   *flock.Flock
	mu     sync.Mutex
	logger *log.Logger
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used to report recovered read errors.
func WithLogger(logger *log.Logger) Option {
	return func(s *FileStore) { s.logger = logger }
}

// NewFileStore returns a store backed by path. The file is not touched
// until the first read or write.
func NewFileStore(path string, opts ...Option) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	s := &FileStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("scores")
	return s
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// LoadAll returns every recorded best score. A missing or unreadable file
// yields an empty map; it is never an error.
func (s *FileStore) LoadAll() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Best returns player's recorded best score.
func (s *FileStore) Best(player string) (int, bool) {
	score, ok := s.LoadAll()[player]
	return score, ok
}

// Ranked returns every entry ordered by score descending, then name.
func (s *FileStore) Ranked() []Entry {
	all := s.LoadAll()
	out := make([]Entry, 0, len(all))
	for p, v := range all {
		out = append(out, Entry{Player: p, Score: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// RecordIfHigher stores score for player if there is no entry yet or score
// is strictly greater than the stored one. It reports whether the file was
// updated. A corrupt file is replaced.
func (s *FileStore) RecordIfHigher(player string, score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", s.path, err)
	}
	if err := s.lock.Lock(); err != nil {
		return false, fmt.Errorf("failed to lock %s: %w", s.path, err)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("Failed to release lock", "path", s.path, "error", err)
		}
	}()

	all := s.read()
	if best, ok := all[player]; ok && score <= best {
		s.logger.Debug("Score not a record", "player", player, "score", score, "best", best)
		return false, nil
	}
	all[player] = score

	if err := fileutil.WriteJSONAtomic(s.path, all, 0o644); err != nil {
		return false, fmt.Errorf("failed to save high scores: %w", err)
	}
	s.logger.Debug("Recorded high score", "player", player, "score", score)
	return true, nil
}

func (s *FileStore) read() map[string]int {
	all := map[string]int{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Failed to read high scores, starting empty", "path", s.path, "error", err)
		}
		return all
	}

	if err := json.Unmarshal(data, &all); err != nil {
		s.logger.Warn("Corrupt high score file, starting empty", "path", s.path, "error", err)
		return map[string]int{}
	}
	if all == nil {
		// a file containing "null"
		all = map[string]int{}
	}
	return all
}
