package apientriesv1

import (
	"context"
	"fmt"

	"github.com/fulldump/musicdiary/entry"
)

func updateEntry(ctx context.Context, input *entry.Entry) (*entry.Entry, error) {

	if input == nil {
		return nil, ErrMissingEntry
	}

	updated, found, err := GetServicer(ctx).UpdateEntry(*input)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: id %d", ErrEntryNotFound, input.ID)
	}

	return &updated, nil
}
