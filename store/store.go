package store

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/btree"
	"github.com/google/uuid"

	"github.com/fulldump/musicdiary/entry"
	"github.com/fulldump/musicdiary/logger"
)

var (
	// ErrStorageUnavailable means the backing file could not be read or
	// parsed while opening the store. It is fatal for the store.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageIO means the backing file could not be rewritten after a
	// mutation. The mutation is kept in memory.
	ErrStorageIO = errors.New("storage i/o failure")

	ErrClosed = errors.New("store is closed")

	// ErrIDsExhausted means no id above every assigned one fits in an int.
	ErrIDsExhausted = errors.New("entry ids exhausted")
)

const (
	DefaultIDFloor  = 1
	DefaultFileMode = os.FileMode(0644)
)

// Store keeps every entry in memory, ordered by id, and mirrors them into a
// single JSON file. A single mutex guards the entries, the id counter and the
// file writes.
type Store struct {
	filename string
	mode     os.FileMode
	floor    int
	logger   *log.Logger

	mutex   sync.Mutex
	entries *btree.BTreeG[entry.Entry]
	nextID  int
	closed  bool
}

func byID(a, b entry.Entry) bool {
	return a.ID < b.ID
}

// Open loads filename and returns a store serving its entries. The file must
// exist and hold a JSON array of entries; otherwise the returned error wraps
// ErrStorageUnavailable.
func Open(filename string, options ...Option) (*Store, error) {

	s := &Store{
		filename: filename,
		mode:     DefaultFileMode,
		floor:    DefaultIDFloor,
		logger:   logger.Discard(),
		entries:  btree.NewG(32, byID),
	}
	for _, option := range options {
		option(s)
	}

	t0 := time.Now()

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: open '%s': %w", ErrStorageUnavailable, filename, err)
	}
	defer f.Close()

	loaded, err := decodeEntries(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read '%s': %w", ErrStorageUnavailable, filename, err)
	}

	maxID := -1
	for _, e := range loaded {
		if e.ID < 0 {
			return nil, fmt.Errorf("%w: read '%s': negative id %d", ErrStorageUnavailable, filename, e.ID)
		}
		// Later entries in the file win over earlier ones with the same id.
		if _, replaced := s.entries.ReplaceOrInsert(e); replaced {
			s.logger.Warn("duplicated id in file, keeping the last one", "id", e.ID, "file", filename)
		}
		maxID = max(maxID, e.ID)
	}

	s.nextID = s.floor
	switch {
	case maxID == math.MaxInt:
		s.nextID = -1
	case maxID >= s.nextID:
		s.nextID = maxID + 1
	}

	s.logger.Info("entries loaded", "file", filename, "count", s.entries.Len(), "next_id", s.nextID, "took", time.Since(t0))

	return s, nil
}

func (s *Store) Filename() string {
	return s.filename
}

func (s *Store) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.entries.Len()
}

// List returns a copy of every entry in ascending id order.
func (s *Store) List() []entry.Entry {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.collect(nil)
}

// Search returns the entries whose title contains text, in the same order as
// List. The match is literal and case-sensitive; empty text matches all.
func (s *Store) Search(text string) []entry.Entry {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.collect(func(e entry.Entry) bool {
		return strings.Contains(e.Title, text)
	})
}

func (s *Store) Get(id int) (entry.Entry, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.entries.Get(entry.Entry{ID: id})
}

// Create stores e under a freshly assigned id, ignoring e.ID, and persists
// the whole store. On a write failure the entry stays in memory and the
// returned error wraps ErrStorageIO.
func (s *Store) Create(e entry.Entry) (entry.Entry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return entry.Entry{}, ErrClosed
	}

	// nextID is negative once math.MaxInt has been handed out.
	if s.nextID < 0 {
		return entry.Entry{}, ErrIDsExhausted
	}

	created := e.WithID(s.nextID)
	s.nextID++
	s.entries.ReplaceOrInsert(created)

	err := s.save()
	if err != nil {
		return created, err
	}

	return created, nil
}

// Update replaces the entry with id e.ID. It returns false without touching
// the file when no such entry exists.
func (s *Store) Update(e entry.Entry) (entry.Entry, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return entry.Entry{}, false, ErrClosed
	}

	if !s.entries.Has(e) {
		return entry.Entry{}, false, nil
	}

	s.entries.ReplaceOrInsert(e)

	err := s.save()
	if err != nil {
		return e, true, err
	}

	return e, true, nil
}

// Delete removes the entry with id. It returns false without touching the
// file when no such entry exists. Freed ids are never assigned again.
func (s *Store) Delete(id int) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return false, ErrClosed
	}

	_, removed := s.entries.Delete(entry.Entry{ID: id})
	if !removed {
		return false, nil
	}

	err := s.save()
	if err != nil {
		return true, err
	}

	return true, nil
}

// Close rejects further mutations. Reads keep being served from memory.
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.closed = true
	return nil
}

// collect must be called with the mutex held. A nil filter keeps everything.
func (s *Store) collect(filter func(e entry.Entry) bool) []entry.Entry {
	result := make([]entry.Entry, 0, s.entries.Len())
	s.entries.Ascend(func(e entry.Entry) bool {
		if filter == nil || filter(e) {
			result = append(result, e)
		}
		return true
	})
	return result
}

// save must be called with the mutex held. The whole store is written to a
// temporary sibling file which then replaces the backing file.
func (s *Store) save() error {

	t0 := time.Now()

	dir, base := filepath.Split(s.filename)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	err := s.writeFile(tmp)
	if err != nil {
		os.Remove(tmp)
		s.logger.Error("save entries", "file", s.filename, "err", err)
		return fmt.Errorf("%w: %w", ErrStorageIO, err)
	}

	err = os.Rename(tmp, s.filename)
	if err != nil {
		os.Remove(tmp)
		s.logger.Error("save entries", "file", s.filename, "err", err)
		return fmt.Errorf("%w: replace '%s': %w", ErrStorageIO, s.filename, err)
	}

	s.logger.Debug("entries saved", "file", s.filename, "count", s.entries.Len(), "took", time.Since(t0))

	return nil
}

func (s *Store) writeFile(filename string) error {

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, s.mode)
	if err != nil {
		return fmt.Errorf("open file for write: %w", err)
	}

	err = encodeEntries(f, s.collect(nil))
	if err != nil {
		f.Close()
		return err
	}

	err = f.Sync()
	if err != nil {
		f.Close()
		return fmt.Errorf("sync '%s': %w", filename, err)
	}

	return f.Close()
}
