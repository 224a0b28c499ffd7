package store

import (
	"os"

	"github.com/charmbracelet/log"
)

type Option func(s *Store)

// WithIDFloor sets the lowest id the store will ever assign. Negative
// floors are raised to zero.
func WithIDFloor(floor int) Option {
	return func(s *Store) {
		s.floor = max(floor, 0)
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFileMode sets the permissions used when the backing file is rewritten.
func WithFileMode(mode os.FileMode) Option {
	return func(s *Store) {
		s.mode = mode
	}
}
