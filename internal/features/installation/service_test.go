package installation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/features/audit"
	"go-marketplace/internal/models"
	"go-marketplace/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	alice   = models.CurrentUser{ID: "u-alice", Name: "Alice", Role: models.RoleStandardUser}
	bob     = models.CurrentUser{ID: "u-bob", Name: "Bob", Role: models.RoleStandardUser}
	fixedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func testDataset() store.Dataset {
	return store.Dataset{
		Extensions: []models.Extension{
			{ID: "free", Name: "Free Ext", InstallCount: 3},
			{ID: "plans", Name: "Plan Ext", Price: 10, PricingPlans: []models.PricingPlan{{ID: "basic"}, {ID: "pro"}}},
			{ID: "scripted", Name: "Scripted", ConfigScript: themeScript},
		},
		Installed: []models.InstalledExtension{{
			ID: "inst-1", ExtensionID: "scripted", UserID: alice.ID, Enabled: true,
			Configuration: models.ConfigMap{"autoUpdate": models.Bool(true)},
		}},
		Developer: []models.DeveloperExtension{{ID: "free", TotalInstalls: 3}},
	}
}

func newTestService(t *testing.T) (*InstallationServiceImpl, *store.Store, *audit.Hub) {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Load(testDataset()))
	hub := audit.NewHub(zap.NewNop())
	svc := NewInstallationService(s, nil, hub, zap.NewNop()).(*InstallationServiceImpl)
	svc.now = func() time.Time { return fixedAt }
	return svc, s, hub
}

func installCount(t *testing.T, s *store.Store, id string) int {
	t.Helper()
	var n int
	_ = s.View(func(tx *store.Tx) error {
		ext, ok := tx.Extension(id)
		require.True(t, ok)
		n = ext.InstallCount
		return nil
	})
	return n
}

func TestInstallUninstallRoundTrip(t *testing.T) {
	svc, s, hub := newTestService(t)
	ctx := context.Background()
	events, cancel := hub.Subscribe(10)
	defer cancel()

	inst, err := svc.Install(ctx, alice, "free")
	require.NoError(t, err)
	assert.True(t, inst.Enabled)
	assert.Empty(t, inst.Configuration)
	assert.Nil(t, inst.Subscription)
	assert.Equal(t, 4, installCount(t, s, "free"))

	_ = s.View(func(tx *store.Tx) error {
		dev, _ := tx.DeveloperExtension("free")
		assert.Equal(t, 4, dev.TotalInstalls)
		return nil
	})

	require.NoError(t, svc.Uninstall(ctx, alice, inst.ID))
	assert.Equal(t, 3, installCount(t, s, "free"))
	_ = s.View(func(tx *store.Tx) error {
		_, ok := tx.InstalledFor("free", alice.ID)
		assert.False(t, ok)
		return nil
	})

	first := <-events
	second := <-events
	assert.Equal(t, models.AuditActionInstall, first.Action)
	assert.Equal(t, models.AuditActionUninstall, second.Action)
	assert.Equal(t, models.String("Free Ext"), second.Details["extension_name"])
}

func TestInstallSeedsTrialSubscription(t *testing.T) {
	svc, _, _ := newTestService(t)

	inst, err := svc.Install(context.Background(), alice, "plans")
	require.NoError(t, err)
	require.NotNil(t, inst.Subscription)
	assert.Equal(t, "basic", inst.Subscription.PlanID)
	assert.Equal(t, models.SubscriptionTrial, inst.Subscription.Status)
	assert.Equal(t, fixedAt.Add(30*24*time.Hour), inst.Subscription.EndDate)
	assert.False(t, inst.Subscription.AutoRenew)
}

func TestInstallTwiceFailsWithoutSideEffects(t *testing.T) {
	svc, s, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Install(ctx, alice, "free")
	require.NoError(t, err)
	before := s.Dump()

	_, err = svc.Install(ctx, alice, "free")
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
	assert.Equal(t, before, s.Dump())

	_, err = svc.Install(ctx, alice, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, before, s.Dump())
}

func TestConcurrentInstallsAdmitOne(t *testing.T) {
	svc, s, _ := newTestService(t)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Install(context.Background(), bob, "free")
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else if !errors.Is(err, apperr.ErrAlreadyExists) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 4, installCount(t, s, "free"))
}

func TestUninstallRequiresOwner(t *testing.T) {
	svc, s, _ := newTestService(t)
	before := s.Dump()

	err := svc.Uninstall(context.Background(), bob, "inst-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, before, s.Dump())
}

func TestUninstallFloorsInstallCount(t *testing.T) {
	svc, s, _ := newTestService(t)
	// inst-1 belongs to "scripted" whose count is already 0
	require.NoError(t, svc.Uninstall(context.Background(), alice, "inst-1"))
	assert.Equal(t, 0, installCount(t, s, "scripted"))
}

func TestUpdateConfigurationMerges(t *testing.T) {
	svc, s, _ := newTestService(t)

	updated, err := svc.UpdateConfiguration(context.Background(), alice, "inst-1", models.ConfigMap{"theme": models.String("dark")})
	require.NoError(t, err)
	assert.Equal(t, models.ConfigMap{"autoUpdate": models.Bool(true), "theme": models.String("dark")}, updated.Configuration)

	// the returned value is a copy
	updated.Configuration["theme"] = models.String("light")
	d := s.Dump()
	assert.Equal(t, models.String("dark"), d.Installed[0].Configuration["theme"])

	require.NotEmpty(t, d.AuditLogs)
	last := d.AuditLogs[0]
	assert.Equal(t, models.AuditActionConfig, last.Action)
	require.NotNil(t, last.Config)
	assert.Equal(t, models.ConfigMap{"autoUpdate": models.Bool(true)}, last.Config.Old)
	assert.Equal(t, models.ConfigMap{"autoUpdate": models.Bool(true), "theme": models.String("dark")}, last.Config.New)
}

func TestUpdateConfigurationScriptRejects(t *testing.T) {
	svc, s, _ := newTestService(t)
	before := s.Dump()

	_, err := svc.UpdateConfiguration(context.Background(), alice, "inst-1", models.ConfigMap{"theme": models.String("neon")})
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)
	assert.Equal(t, before, s.Dump())

	_, err = svc.UpdateConfiguration(context.Background(), bob, "inst-1", models.ConfigMap{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateConfigurationScriptRunsWithoutStoreLock(t *testing.T) {
	svc, s, _ := newTestService(t)

	var readErr error
	svc.validate = func(ctx context.Context, script string, config models.ConfigMap) error {
		done := make(chan error, 1)
		go func() {
			done <- s.Update(func(tx *store.Tx) error { return nil })
		}()
		select {
		case readErr = <-done:
		case <-time.After(time.Second):
			readErr = errors.New("store stayed locked while the script ran")
		}
		return validateConfig(ctx, script, config)
	}

	_, err := svc.UpdateConfiguration(context.Background(), alice, "inst-1", models.ConfigMap{"theme": models.String("dark")})
	require.NoError(t, err)
	assert.NoError(t, readErr)
}

func TestUpdateConfigurationRevalidatesAfterConcurrentChange(t *testing.T) {
	svc, s, _ := newTestService(t)

	var seen []models.ConfigMap
	svc.validate = func(ctx context.Context, script string, config models.ConfigMap) error {
		seen = append(seen, config.Clone())
		if len(seen) == 1 {
			// another writer lands between validation and the write
			require.NoError(t, s.Update(func(tx *store.Tx) error {
				inst, ok := tx.Installed("inst-1", alice.ID)
				require.True(t, ok)
				inst.Configuration = inst.Configuration.Merge(models.ConfigMap{"lang": models.String("en")})
				return nil
			}))
		}
		return validateConfig(ctx, script, config)
	}

	updated, err := svc.UpdateConfiguration(context.Background(), alice, "inst-1", models.ConfigMap{"theme": models.String("dark")})
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, models.ConfigMap{
		"autoUpdate": models.Bool(true),
		"lang":       models.String("en"),
		"theme":      models.String("dark"),
	}, updated.Configuration)
	assert.Equal(t, updated.Configuration, seen[1])
}

func TestUpdateConfigurationEndlessScriptTimesOut(t *testing.T) {
	svc, s, _ := newTestService(t)
	require.NoError(t, s.Update(func(tx *store.Tx) error {
		ext, _ := tx.Extension("scripted")
		ext.ConfigScript = `for {}`
		return nil
	}))
	before := s.Dump()

	_, err := svc.UpdateConfiguration(context.Background(), alice, "inst-1", models.ConfigMap{"theme": models.String("dark")})
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)
	assert.Equal(t, before, s.Dump())
}

type recordingPublisher struct {
	mu  sync.Mutex
	ids []string
}

func (p *recordingPublisher) Publish(entries ...models.AuditLogEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range entries {
		p.ids = append(p.ids, e.ID)
	}
}

func TestPublishOrderMatchesAuditLog(t *testing.T) {
	svc, s, _ := newTestService(t)
	pub := &recordingPublisher{}
	svc.Publisher = pub

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := models.CurrentUser{ID: fmt.Sprintf("u-%d", i)}
			inst, err := svc.Install(context.Background(), user, "free")
			if err != nil {
				t.Errorf("Install() error = %v", err)
				return
			}
			if err := svc.Uninstall(context.Background(), user, inst.ID); err != nil {
				t.Errorf("Uninstall() error = %v", err)
			}
		}()
	}
	wg.Wait()

	var logged []string
	_ = s.View(func(tx *store.Tx) error {
		tx.AuditLogs(func(e models.AuditLogEntry) bool {
			logged = append(logged, e.ID)
			return true
		})
		return nil
	})
	slices.Reverse(logged)
	assert.Equal(t, logged, pub.ids)
}

func TestSetEnabled(t *testing.T) {
	svc, _, _ := newTestService(t)

	updated, err := svc.SetEnabled(context.Background(), alice, "inst-1", false)
	require.NoError(t, err)
	assert.False(t, updated.Enabled)

	views, err := svc.ListInstalled(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Enabled)
	assert.Equal(t, "Scripted", views[0].Extension.Name)
}
