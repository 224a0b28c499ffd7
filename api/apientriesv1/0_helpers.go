package apientriesv1

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fulldump/box"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidID     = errors.New("invalid entry id")
	ErrMissingEntry  = errors.New("missing entry in request body")
)

func entryID(ctx context.Context) (int, error) {
	param := strings.TrimSpace(box.GetUrlParameter(ctx, "entryId"))
	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidID, param)
	}
	return id, nil
}
