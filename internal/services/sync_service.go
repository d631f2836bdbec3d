package services

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/communityguardian/core/internal/logger"
	"github.com/communityguardian/core/internal/models"
	"github.com/communityguardian/core/internal/store"
)

// ReportSink receives flushed reports. ReportService satisfies it.
type ReportSink interface {
	Add(report models.Report) error
}

// SyncService buffers reports captured while disconnected and replays them
// when connectivity returns. The buffer lives in the store, so pending
// entries survive a restart. Flush is at-least-once: an entry leaves the
// buffer only after its Add is confirmed durable, and a failed flush leaves
// the remaining entries queued for the next connectivity signal. Buffered
// reports are never dropped on failure.
type SyncService struct {
	mu    sync.Mutex
	store store.Store
	sink  ReportSink
	log   *logrus.Entry
}

func NewSyncService(s store.Store, sink ReportSink) *SyncService {
	return &SyncService{
		store: s,
		sink:  sink,
		log:   logger.WithComponent("sync"),
	}
}

// Enqueue appends the report to the pending buffer, preserving creation
// order.
func (s *SyncService) Enqueue(report models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.pendingLocked()
	if err != nil {
		return err
	}
	pending = append(pending, report)
	if err := saveCollection(s.store, store.CollectionPending, pending); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"report_id": report.ID, "pending": len(pending)}).Info("report buffered")
	return nil
}

// PendingCount returns the number of buffered reports, for UI display.
func (s *SyncService) PendingCount() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.pendingLocked()
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

// Flush replays the buffered reports through the sink in original creation
// order. Each entry is removed from the buffer right after its Add succeeds,
// so an interrupted flush never resubmits what already went through.
func (s *SyncService) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.pendingLocked()
	if err != nil {
		return err
	}

	flushed := 0
	for len(pending) > 0 {
		report := pending[0]
		if err := s.sink.Add(report); err != nil {
			s.log.WithFields(logrus.Fields{"flushed": flushed, "remaining": len(pending)}).Warn("flush interrupted")
			return fmt.Errorf("flush report %s: %w", report.ID, err)
		}
		pending = pending[1:]
		if err := saveCollection(s.store, store.CollectionPending, pending); err != nil {
			return err
		}
		flushed++
	}

	if flushed > 0 {
		s.log.WithField("flushed", flushed).Info("pending reports flushed")
	}
	return nil
}

func (s *SyncService) pendingLocked() ([]models.Report, error) {
	var pending []models.Report
	if _, err := loadCollection(s.store, store.CollectionPending, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}
