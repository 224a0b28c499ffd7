package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/musicdiary/api/apientriesv1"
	"github.com/fulldump/musicdiary/metrics"
	"github.com/fulldump/musicdiary/service"
	"github.com/fulldump/musicdiary/statics"
)

func Build(s service.Servicer, m *metrics.Collector, staticsDir, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
	)

	apientriesv1.BuildV1Entries(v1, s).
		WithInterceptors(
			injectServicer(s),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	if m != nil {
		b.Resource("/metrics").
			WithActions(box.Get(func(w http.ResponseWriter, r *http.Request) {
				m.Handler().ServeHTTP(w, r)
			}).WithName("metrics"))
	}

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "Music Diary"
	spec.Info.Description = "A personal diary of the albums you listen to."
	spec.Info.Version = version
	b.Resource("/openapi.json").
		WithActions(box.Get(func(r *http.Request) any {

			spec.Servers = []boxopenapi.Server{
				{
					Url: "https://" + r.Host,
				},
				{
					Url: "http://" + r.Host,
				},
			}

			return spec
		}).WithName("openapi"))

	// Mount statics
	if staticsDir != "" {
		b.Resource("/*").
			WithActions(
				box.Get(statics.ServeStatics(staticsDir)).WithName("serveStatics"),
			)
	}

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apientriesv1.SetServicer(ctx, s))
		}
	}
}
