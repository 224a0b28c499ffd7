package service

import (
	"errors"

	"github.com/fulldump/musicdiary/entry"
)

var ErrUnavailable = errors.New("entries are not available")

// Servicer is what the transport layer needs from the diary. Absence is
// reported with a false boolean, never with an error.
type Servicer interface {
	ListEntries() ([]entry.Entry, error)
	SearchEntries(title string) ([]entry.Entry, error)
	GetEntry(id int) (entry.Entry, bool, error)
	CreateEntry(e entry.Entry) (entry.Entry, error)
	UpdateEntry(e entry.Entry) (entry.Entry, bool, error)
	DeleteEntry(id int) (bool, error)
}
