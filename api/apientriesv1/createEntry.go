package apientriesv1

import (
	"context"
	"net/http"

	"github.com/fulldump/musicdiary/entry"
)

// createEntry ignores any id in the body, the store assigns a fresh one.
func createEntry(ctx context.Context, w http.ResponseWriter, input *entry.Entry) (*entry.Entry, error) {

	if input == nil {
		return nil, ErrMissingEntry
	}

	created, err := GetServicer(ctx).CreateEntry(*input)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return &created, nil
}
