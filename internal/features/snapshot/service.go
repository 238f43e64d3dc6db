package snapshot

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go-marketplace/internal/config"
	"go-marketplace/internal/models"
	"go-marketplace/internal/store"
	"go-marketplace/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type SnapshotService interface {
	Take(ctx context.Context) (CatalogSnapshot, error)
	StartScheduler(ctx context.Context) error
	StopScheduler() error
}

type SnapshotServiceImpl struct {
	Store    *store.Store
	Repo     SnapshotRepository
	Logger   *zap.Logger
	schedule string

	mu        sync.Mutex
	scheduler *cron.Cron
	now       func() time.Time
}

func NewSnapshotService(s *store.Store, repo SnapshotRepository, cfg *config.Config, logger *zap.Logger) SnapshotService {
	return &SnapshotServiceImpl{
		Store:    s,
		Repo:     repo,
		Logger:   logger,
		schedule: cfg.SnapshotSchedule,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Take summarises the store and persists the summary when a repository is
// configured.
func (s *SnapshotServiceImpl) Take(ctx context.Context) (CatalogSnapshot, error) {
	snap := CatalogSnapshot{
		ID:         utils.NewID("snapshot"),
		TakenAt:    s.now(),
		ByCategory: make(map[string]int),
	}

	_ = s.Store.View(func(tx *store.Tx) error {
		exts := tx.Extensions()
		snap.Extensions = len(exts)
		for _, e := range exts {
			snap.ByCategory[e.Category]++
			snap.Top = append(snap.Top, ExtensionStat{
				ID:           e.ID,
				Name:         e.Name,
				InstallCount: e.InstallCount,
				Rating:       e.Rating,
			})
		}
		tx.AuditLogs(func(models.AuditLogEntry) bool {
			snap.AuditEntries++
			return true
		})
		snap.Installations = tx.InstallationCount()
		snap.Reviews = tx.ReviewCount()
		return nil
	})

	slices.SortStableFunc(snap.Top, func(a, b ExtensionStat) int {
		return cmp.Compare(b.InstallCount, a.InstallCount)
	})
	if len(snap.Top) > topExtensions {
		snap.Top = snap.Top[:topExtensions]
	}

	if !s.Repo.Enabled() {
		return snap, nil
	}
	if err := s.Repo.Create(ctx, snap); err != nil {
		return snap, fmt.Errorf("failed to store catalog snapshot: %w", err)
	}
	return snap, nil
}

// StartScheduler runs Take on the configured schedule. Without a database
// there is nowhere to write snapshots and the scheduler is not started.
func (s *SnapshotServiceImpl) StartScheduler(ctx context.Context) error {
	if !s.Repo.Enabled() {
		s.Logger.Info("catalog snapshots disabled: no database configured")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	scheduler := cron.New()
	_, err := scheduler.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		snap, err := s.Take(ctx)
		if err != nil {
			s.Logger.Error("catalog snapshot failed", zap.Error(err))
			return
		}
		s.Logger.Info("catalog snapshot stored",
			zap.String("snapshot_id", snap.ID),
			zap.Int("extensions", snap.Extensions))
	})
	if err != nil {
		return fmt.Errorf("invalid snapshot schedule %q: %w", s.schedule, err)
	}

	s.scheduler = scheduler
	s.scheduler.Start()
	s.Logger.Info("catalog snapshot scheduler started", zap.String("schedule", s.schedule))
	return nil
}

func (s *SnapshotServiceImpl) StopScheduler() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
		s.scheduler = nil
	}
	return nil
}
