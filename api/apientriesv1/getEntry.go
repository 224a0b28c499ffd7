package apientriesv1

import (
	"context"
	"fmt"

	"github.com/fulldump/musicdiary/entry"
)

func getEntry(ctx context.Context) (*entry.Entry, error) {

	id, err := entryID(ctx)
	if err != nil {
		return nil, err
	}

	e, found, err := GetServicer(ctx).GetEntry(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: id %d", ErrEntryNotFound, id)
	}

	return &e, nil
}
