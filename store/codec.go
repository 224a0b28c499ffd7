package store

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/musicdiary/entry"
)

var errNotEntries = errors.New("expected a json array of entry objects")

// decodeEntries reads a whole JSON array of entries from r. A null document
// or a null element is rejected. Repeated member names inside an entry keep
// the last value.
func decodeEntries(r io.Reader) ([]entry.Entry, error) {
	decoded := []*entry.Entry{}
	err := json.UnmarshalRead(r, &decoded, jsontext.AllowDuplicateNames(true))
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if decoded == nil {
		return nil, fmt.Errorf("%w: got null", errNotEntries)
	}

	entries := make([]entry.Entry, 0, len(decoded))
	for i, e := range decoded {
		if e == nil {
			return nil, fmt.Errorf("%w: element %d is null", errNotEntries, i)
		}
		entries = append(entries, *e)
	}
	return entries, nil
}

// encodeEntries writes entries to w as an indented JSON array.
func encodeEntries(w io.Writer, entries []entry.Entry) error {
	if entries == nil {
		entries = []entry.Entry{}
	}
	err := json.MarshalWrite(w, entries, jsontext.WithIndent("    "))
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
