package service

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/fulldump/musicdiary/database"
	"github.com/fulldump/musicdiary/entry"
	"github.com/fulldump/musicdiary/logger"
	"github.com/fulldump/musicdiary/metrics"
	"github.com/fulldump/musicdiary/store"
)

type Service struct {
	db      *database.Database
	metrics *metrics.Collector
	logger  *log.Logger
}

func NewService(db *database.Database, m *metrics.Collector, l *log.Logger) *Service {
	if m == nil {
		m = metrics.NewCollector("")
	}
	if l == nil {
		l = logger.Discard()
	}
	return &Service{
		db:      db,
		metrics: m,
		logger:  l,
	}
}

func (s *Service) entries() (*store.Store, error) {
	entries := s.db.Entries()
	if entries == nil {
		return nil, ErrUnavailable
	}
	return entries, nil
}

func (s *Service) ListEntries() ([]entry.Entry, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	t0 := time.Now()
	result := entries.List()
	s.metrics.Observe("list", metrics.ResultOK, time.Since(t0))

	return result, nil
}

func (s *Service) SearchEntries(title string) ([]entry.Entry, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}

	t0 := time.Now()
	result := entries.Search(title)
	s.metrics.Observe("search", metrics.ResultOK, time.Since(t0))

	return result, nil
}

func (s *Service) GetEntry(id int) (entry.Entry, bool, error) {
	entries, err := s.entries()
	if err != nil {
		return entry.Entry{}, false, err
	}

	t0 := time.Now()
	e, found := entries.Get(id)
	s.metrics.Observe("get", result(found, nil), time.Since(t0))

	return e, found, nil
}

func (s *Service) CreateEntry(e entry.Entry) (entry.Entry, error) {
	entries, err := s.entries()
	if err != nil {
		return entry.Entry{}, err
	}

	t0 := time.Now()
	created, err := entries.Create(e)
	s.metrics.Observe("create", result(true, err), time.Since(t0))
	s.metrics.SetEntries(entries.Len())
	if err != nil {
		s.logger.Error("create entry", "entry", e, "err", err)
		return entry.Entry{}, err
	}

	s.logger.Info("entry created", "id", created.ID, "title", created.Title)
	return created, nil
}

func (s *Service) UpdateEntry(e entry.Entry) (entry.Entry, bool, error) {
	entries, err := s.entries()
	if err != nil {
		return entry.Entry{}, false, err
	}

	t0 := time.Now()
	updated, found, err := entries.Update(e)
	s.metrics.Observe("update", result(found, err), time.Since(t0))
	if err != nil {
		s.logger.Error("update entry", "id", e.ID, "err", err)
		return entry.Entry{}, found, err
	}

	if found {
		s.logger.Info("entry updated", "id", updated.ID)
	}
	return updated, found, nil
}

func (s *Service) DeleteEntry(id int) (bool, error) {
	entries, err := s.entries()
	if err != nil {
		return false, err
	}

	t0 := time.Now()
	deleted, err := entries.Delete(id)
	s.metrics.Observe("delete", result(deleted, err), time.Since(t0))
	s.metrics.SetEntries(entries.Len())
	if err != nil {
		s.logger.Error("delete entry", "id", id, "err", err)
		return deleted, err
	}

	if deleted {
		s.logger.Info("entry deleted", "id", id)
	}
	return deleted, nil
}

func result(found bool, err error) string {
	if err != nil {
		return metrics.ResultError
	}
	if !found {
		return metrics.ResultNotFound
	}
	return metrics.ResultOK
}
