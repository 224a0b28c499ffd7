package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fulldump/box"

	"github.com/fulldump/musicdiary/api/apientriesv1"
	"github.com/fulldump/musicdiary/database"
	"github.com/fulldump/musicdiary/service"
	"github.com/fulldump/musicdiary/store"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening {
				box.SetError(ctx, fmt.Errorf("%w: opening", service.ErrUnavailable))
				return
			}
			if status == database.StatusClosing {
				box.SetError(ctx, fmt.Errorf("%w: closing", service.ErrUnavailable))
				return
			}
			next(ctx)
		}
	}
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}

		status, description := describeError(ctx, err)

		w := box.GetResponse(ctx)
		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}

// describeError maps err to a status code and a human description.
func describeError(ctx context.Context, err error) (int, string) {

	r := box.GetRequest(ctx)

	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	var timeError *time.ParseError

	switch {
	case errors.Is(err, box.ErrResourceNotFound):
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", r.URL.String())
	case errors.Is(err, box.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", r.Method)
	case errors.Is(err, apientriesv1.ErrEntryNotFound):
		return http.StatusNotFound, "no such entry"
	case errors.Is(err, apientriesv1.ErrInvalidID):
		return http.StatusBadRequest, "entry id must be an integer"
	case errors.Is(err, apientriesv1.ErrMissingEntry):
		return http.StatusBadRequest, "an entry is required"
	case errors.As(err, &syntaxError), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, "Malformed JSON"
	case errors.As(err, &typeError), errors.As(err, &timeError):
		return http.StatusBadRequest, "Invalid entry"
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, "temporary unavailable"
	case errors.Is(err, store.ErrIDsExhausted):
		return http.StatusInsufficientStorage, "No more entry ids available"
	case errors.Is(err, store.ErrStorageIO):
		return http.StatusInternalServerError, "Storage failure, the change may not be persisted"
	}

	return http.StatusInternalServerError, "Unexpected error"
}
