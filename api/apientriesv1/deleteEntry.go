package apientriesv1

import (
	"context"
	"fmt"
)

func deleteEntry(ctx context.Context) error {

	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	deleted, err := GetServicer(ctx).DeleteEntry(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: id %d", ErrEntryNotFound, id)
	}

	return nil
}
