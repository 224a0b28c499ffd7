package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"

	"github.com/fulldump/musicdiary/api"
	"github.com/fulldump/musicdiary/configuration"
	"github.com/fulldump/musicdiary/database"
	"github.com/fulldump/musicdiary/logger"
	"github.com/fulldump/musicdiary/metrics"
	"github.com/fulldump/musicdiary/service"
)

var VERSION = "dev"

// Bootstrap wires the diary from c. start blocks until stop is called or
// a termination signal arrives.
func Bootstrap(c *configuration.Configuration) (start, stop func(), err error) {

	l := logger.New(os.Stderr)
	if !logger.SetLevel(l, c.LogLevel) {
		l.Warn("unknown log level, keeping default", "level", c.LogLevel)
	}

	db := database.NewDatabase(&database.Config{
		Filename:        c.Filename,
		IDFloor:         c.IDFloor,
		CreateIfMissing: c.CreateIfMissing,
		Logger:          logger.With(l, "component", "database"),
	})

	m := metrics.NewCollector("")

	b := api.Build(service.NewService(db, m, logger.With(l, "component", "service")), m, c.Statics, VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	access := logger.With(l, "component", "access")
	b.WithInterceptors(
		api.AccessLog(access),
		api.InterceptorUnavailable(db),
		api.RecoverFromPanic(l),
		api.PrettyErrorInterceptor,
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, err
	}
	l.Info("listening", "addr", ln.Addr().String(), "version", VERSION)

	stopOnce := sync.Once{}
	stop = func() {
		stopOnce.Do(func() {
			l.Info("stopping")
			db.Stop()
			s.Shutdown(context.Background())
		})
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		l.Info("signal received", "signal", sig.String())
		stop()
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				l.Error("database failed to start", "err", err)
				stop()
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Serve(ln)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				l.Error("http server", "err", err)
			}
		}()

		wg.Wait()
	}

	return
}
