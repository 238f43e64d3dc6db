package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-marketplace/internal/config"
	"go-marketplace/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	enabled bool
	err     error

	mu    sync.Mutex
	saved []CatalogSnapshot
}

func (r *fakeRepo) Enabled() bool { return r.enabled }

func (r *fakeRepo) Create(ctx context.Context, snap CatalogSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, snap)
	return nil
}

func (r *fakeRepo) Latest(ctx context.Context) (*CatalogSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saved) == 0 {
		return nil, nil
	}
	snap := r.saved[len(r.saved)-1]
	return &snap, nil
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func newTestService(t *testing.T, repo *fakeRepo, schedule string) *SnapshotServiceImpl {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Load(store.NewGenerator(9, fixedAt).Generate(30)))
	svc := NewSnapshotService(s, repo, &config.Config{SnapshotSchedule: schedule}, zap.NewNop()).(*SnapshotServiceImpl)
	svc.now = func() time.Time { return fixedAt }
	return svc
}

func TestTakeSummarisesStore(t *testing.T) {
	repo := &fakeRepo{enabled: true}
	svc := newTestService(t, repo, "@every 1h")

	snap, err := svc.Take(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 32, snap.Extensions)
	assert.Equal(t, 1, snap.Installations)
	assert.Equal(t, 50, snap.AuditEntries)
	assert.Positive(t, snap.Reviews)
	assert.Len(t, snap.Top, topExtensions)
	for i := 1; i < len(snap.Top); i++ {
		assert.GreaterOrEqual(t, snap.Top[i-1].InstallCount, snap.Top[i].InstallCount)
	}

	total := 0
	for _, n := range snap.ByCategory {
		total += n
	}
	assert.Equal(t, snap.Extensions, total)

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, snap.ID, latest.ID)
}

func TestTakeWithoutDatabase(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo, "@every 1h")

	_, err := svc.Take(context.Background())
	require.NoError(t, err)
	assert.Zero(t, repo.count())

	require.NoError(t, svc.StartScheduler(context.Background()))
	assert.Nil(t, svc.scheduler)
	require.NoError(t, svc.StopScheduler())
}

func TestTakeReportsRepositoryErrors(t *testing.T) {
	svc := newTestService(t, &fakeRepo{enabled: true, err: errors.New("down")}, "@every 1h")
	_, err := svc.Take(context.Background())
	assert.Error(t, err)
}

func TestSchedulerRunsJob(t *testing.T) {
	repo := &fakeRepo{enabled: true}
	svc := newTestService(t, repo, "@every 1s")

	require.NoError(t, svc.StartScheduler(context.Background()))
	defer svc.StopScheduler()

	assert.Eventually(t, func() bool { return repo.count() > 0 }, 5*time.Second, 50*time.Millisecond)
}

func TestSchedulerRejectsBadSchedule(t *testing.T) {
	svc := newTestService(t, &fakeRepo{enabled: true}, "not a schedule")
	assert.Error(t, svc.StartScheduler(context.Background()))
}
