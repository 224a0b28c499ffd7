package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/fulldump/musicdiary/logger"
	"github.com/fulldump/musicdiary/store"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	Filename string
	IDFloor  int

	// CreateIfMissing seeds an empty entry list when Filename does not exist.
	CreateIfMissing bool

	Logger *log.Logger
}

// Database owns the lifecycle of the entry store.
type Database struct {
	config *Config
	logger *log.Logger

	mutex   sync.RWMutex
	status  string
	entries *store.Store

	exit     chan struct{}
	stopOnce sync.Once
}

func NewDatabase(config *Config) *Database {
	l := config.Logger
	if l == nil {
		l = logger.Discard()
	}

	return &Database{
		config: config,
		logger: l,
		status: StatusOpening,
		exit:   make(chan struct{}),
	}
}

func (db *Database) GetStatus() string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	return db.status
}

// Entries returns the loaded store, nil until Load succeeds.
func (db *Database) Entries() *store.Store {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	return db.entries
}

func (db *Database) setStatus(status string) {
	db.mutex.Lock()
	db.status = status
	db.mutex.Unlock()
}

// Load opens the backing file. A failure leaves the database closing, it
// is not retried.
func (db *Database) Load() error {

	filename := db.config.Filename
	db.logger.Info("loading entries", "file", filename)

	if db.config.CreateIfMissing {
		err := seed(filename)
		if err != nil {
			db.setStatus(StatusClosing)
			return err
		}
	}

	options := []store.Option{store.WithLogger(db.logger)}
	if db.config.IDFloor > 0 {
		options = append(options, store.WithIDFloor(db.config.IDFloor))
	}

	entries, err := store.Open(filename, options...)
	if err != nil {
		db.logger.Error("open entries", "file", filename, "err", err)
		db.setStatus(StatusClosing)
		return err
	}

	db.mutex.Lock()
	db.entries = entries
	db.status = StatusOperating
	db.mutex.Unlock()

	return nil
}

// seed writes an empty JSON array to filename unless it already exists.
func seed(filename string) error {

	_, err := os.Stat(filename)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat '%s': %w", filename, err)
	}

	err = os.MkdirAll(filepath.Dir(filename), 0755)
	if err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	err = os.WriteFile(filename, []byte("[]\n"), store.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("seed '%s': %w", filename, err)
	}

	return nil
}

// Start loads the entries and blocks until Stop is called.
func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		return err
	}

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	var err error
	db.stopOnce.Do(func() {
		defer close(db.exit)

		db.setStatus(StatusClosing)

		entries := db.Entries()
		if entries == nil {
			return
		}

		db.logger.Info("closing entries", "file", entries.Filename())
		err = entries.Close()
		if err != nil {
			db.logger.Error("close entries", "err", err)
		}
	})

	return err
}
