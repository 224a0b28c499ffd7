package apientriesv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/musicdiary/service"
)

func BuildV1Entries(v1 *box.R, s service.Servicer) *box.R {

	entries := v1.Resource("/entries").
		WithActions(
			box.Get(listEntries),
			box.Post(createEntry),
			box.Put(updateEntry),
		)

	v1.Resource("/entries/{entryId}").
		WithActions(
			box.Get(getEntry),
			box.Delete(deleteEntry),
		)

	return entries
}
