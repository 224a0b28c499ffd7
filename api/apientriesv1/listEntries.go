package apientriesv1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fulldump/musicdiary/entry"
)

// listEntries returns every entry, or only those whose title contains the
// `title` query parameter when it is present.
func listEntries(ctx context.Context, r *http.Request) ([]entry.Entry, error) {

	s := GetServicer(ctx)

	query := r.URL.Query()
	if !query.Has("title") {
		return s.ListEntries()
	}

	title := query.Get("title")
	entries, err := s.SearchEntries(title)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no title contains '%s'", ErrEntryNotFound, title)
	}

	return entries, nil
}
