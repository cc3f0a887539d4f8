package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/chiptally/internal/fileutil"
	"github.com/lox/chiptally/internal/game"
)

// MaxSnapshotAge is how long a saved session stays resumable. Older
// snapshots are treated as abandoned and discarded rather than resumed.
const MaxSnapshotAge = 24 * time.Hour

var (
	ErrNotFound = errors.New("no saved session")
	ErrStale    = errors.New("saved session is stale")
)

// Store reads and writes session snapshots, one JSON file per game id
type Store struct {
	dir    string
	logger *log.Logger
	clock  quartz.Clock
}

// NewStore creates a store rooted at dir. A nil clock uses the wall clock.
func NewStore(dir string, logger *log.Logger, clock quartz.Clock) *Store {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Store{
		dir:    dir,
		logger: logger.WithPrefix("session"),
		clock:  clock,
	}
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes the game's snapshot atomically, stamped with the current time
func (s *Store) Save(g *game.Game) error {
	snap := FromGame(g)
	snap.SavedAt = s.clock.Now()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	return fileutil.WriteFileAtomic(s.path(snap.GameID), data, 0o644)
}

// SaveBestEffort logs and swallows save failures so a bad disk never blocks
// play; the in-memory game carries on either way.
func (s *Store) SaveBestEffort(g *game.Game) {
	if err := s.Save(g); err != nil {
		s.logger.Warn("failed to save session", "game", g.ID(), "error", err)
	}
}

// Load reads a snapshot by game id. Missing or malformed files are
// ErrNotFound; snapshots past MaxSnapshotAge are ErrStale.
func (s *Store) Load(id string) (Snapshot, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, fmt.Errorf("failed to read session: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// A corrupt snapshot is the same as no snapshot
		s.logger.Warn("discarding malformed session file", "game", id, "error", err)
		return Snapshot{}, ErrNotFound
	}
	if s.IsStale(snap) {
		return Snapshot{}, ErrStale
	}
	return snap, nil
}

// LoadLatest returns the most recently saved non-stale snapshot
func (s *Store) LoadLatest() (Snapshot, error) {
	snaps, err := s.List()
	if err != nil {
		return Snapshot{}, err
	}

	var latest Snapshot
	found := false
	for _, snap := range snaps {
		if s.IsStale(snap) {
			continue
		}
		if !found || snap.SavedAt.After(latest.SavedAt) {
			latest = snap
			found = true
		}
	}
	if !found {
		return Snapshot{}, ErrNotFound
	}
	return latest, nil
}

// List returns every readable snapshot, stale ones included, newest first.
// Unreadable files are logged and skipped.
func (s *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session dir: %w", err)
	}

	var snaps []Snapshot
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			s.logger.Warn("skipping unreadable session file", "file", e.Name(), "error", err)
			continue
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			s.logger.Warn("skipping malformed session file", "file", e.Name(), "error", err)
			continue
		}
		snaps = append(snaps, snap)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].SavedAt.After(snaps[j].SavedAt)
	})
	return snaps, nil
}

// IsStale reports whether a snapshot is past MaxSnapshotAge
func (s *Store) IsStale(snap Snapshot) bool {
	return s.clock.Now().Sub(snap.SavedAt) > MaxSnapshotAge
}

// Delete removes a saved session
func (s *Store) Delete(id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Prune deletes session files that can never be resumed, stale and
// malformed alike, and returns how many were removed. Unlike List it walks
// the directory itself, so files List would skip still get cleaned up.
func (s *Store) Prune() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read session dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable session file", "file", e.Name(), "error", err)
			continue
		}
		var snap Snapshot
		if json.Unmarshal(data, &snap) == nil && !s.IsStale(snap) {
			continue
		}
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to prune session file", "file", e.Name(), "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
