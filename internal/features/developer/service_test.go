package developer

import (
	"bytes"
	"context"
	"testing"
	"time"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/features/audit"
	"go-marketplace/internal/features/extension"
	"go-marketplace/internal/models"
	"go-marketplace/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	dev1    = models.CurrentUser{ID: "dev-1", Name: "Dev One", Role: models.RoleDeveloper}
	dev2    = models.CurrentUser{ID: "dev-2", Name: "Dev Two", Role: models.RoleDeveloper}
	fixedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newTestService(t *testing.T, d store.Dataset) (*DeveloperServiceImpl, *store.Store) {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Load(d))
	svc := NewDeveloperService(s, nil, audit.NewHub(zap.NewNop()), zap.NewNop()).(*DeveloperServiceImpl)
	svc.now = func() time.Time { return fixedAt }
	return svc, s
}

func ownedDataset() store.Dataset {
	revenue := 12.5
	errs := 2
	return store.Dataset{
		Extensions: []models.Extension{
			{ID: "mine", Name: "Mine", DeveloperInfo: models.DeveloperInfo{ID: dev1.ID}},
			{ID: "theirs", Name: "Theirs", DeveloperInfo: models.DeveloperInfo{ID: dev2.ID}},
		},
		Reviews:   []models.Review{{ID: "r1", ExtensionID: "mine", Rating: 4}},
		Installed: []models.InstalledExtension{{ID: "i1", ExtensionID: "mine", UserID: "u1"}},
		Developer: []models.DeveloperExtension{{ID: "mine"}, {ID: "theirs"}},
		Analytics: []models.ExtensionAnalytics{{
			ExtensionID: "mine",
			Period:      models.PeriodDaily,
			Data: []models.AnalyticsPoint{
				{Date: "2026-02-28", Installs: 3, Uninstalls: 1, ActiveUsers: 40, Revenue: &revenue, Errors: &errs},
				{Date: "2026-03-01", Installs: 5, ActiveUsers: 44},
			},
		}},
	}
}

func TestPublishIntoEmptyStoreIsSearchable(t *testing.T) {
	svc, s := newTestService(t, store.Dataset{})

	ext, err := svc.Publish(context.Background(), dev1, PublishInput{Name: "Foo", Price: 0})
	require.NoError(t, err)
	assert.Zero(t, ext.InstallCount)
	assert.Zero(t, ext.Rating)
	assert.Equal(t, DefaultVersion, ext.Version)
	assert.Equal(t, dev1.ID, ext.DeveloperInfo.ID)
	require.Len(t, ext.Changelog, 1)
	assert.Equal(t, []string{"Initial release"}, ext.Changelog[0].Changes)

	search := extension.NewExtensionService(s, nil, audit.NewHub(zap.NewNop()), zap.NewNop())
	result, err := search.Search(context.Background(), extension.SearchCriteria{})
	require.NoError(t, err)
	require.NotEmpty(t, result.Extensions)
	assert.Equal(t, "Foo", result.Extensions[0].Name)

	devs, err := svc.ListDeveloperExtensions(context.Background(), dev1.ID)
	require.NoError(t, err)
	require.Len(t, devs, 1)
	assert.Equal(t, models.PublishStatusPendingReview, devs[0].Status)
	assert.Equal(t, models.MonetizationFree, devs[0].MonetizationStatus)
}

func TestPublishGoesFirst(t *testing.T) {
	svc, s := newTestService(t, ownedDataset())

	ext, err := svc.Publish(context.Background(), dev1, PublishInput{Name: "Paid", Price: 9.99, Category: "marketing", InitialVersion: "2.1.0"})
	require.NoError(t, err)
	assert.Equal(t, "Marketing", ext.Category)
	assert.Equal(t, "2.1.0", ext.Version)

	d := s.Dump()
	assert.Equal(t, ext.ID, d.Extensions[0].ID)
	assert.Equal(t, ext.ID, d.Developer[0].ID)
	assert.Equal(t, models.MonetizationPaid, d.Developer[0].MonetizationStatus)
	assert.Equal(t, models.AuditActionPublish, d.AuditLogs[0].Action)
}

func TestPublishValidation(t *testing.T) {
	svc, s := newTestService(t, ownedDataset())
	before := s.Dump()

	for _, input := range []PublishInput{
		{Name: "  "},
		{Name: "Neg", Price: -1},
		{Name: "Cat", Category: "Gardening"},
		{Name: "Broken script", ConfigScript: "this is not tengo ((("},
	} {
		_, err := svc.Publish(context.Background(), dev1, input)
		assert.ErrorIs(t, err, apperr.ErrValidationFailed, "%+v", input)
	}
	assert.Equal(t, before, s.Dump())
}

func TestPublishKeepsCompilingScript(t *testing.T) {
	svc, s := newTestService(t, ownedDataset())

	script := `if config.theme == "neon" { reject = "no neon" }`
	ext, err := svc.Publish(context.Background(), dev1, PublishInput{Name: "Themed", ConfigScript: script})
	require.NoError(t, err)
	assert.Equal(t, script, s.Dump().Extensions[0].ConfigScript)
	assert.Equal(t, ext.ID, s.Dump().Extensions[0].ID)
}

func TestDeletePublishedCascades(t *testing.T) {
	svc, s := newTestService(t, ownedDataset())

	require.NoError(t, svc.DeletePublished(context.Background(), dev1, "mine"))

	d := s.Dump()
	require.NoError(t, d.Validate())
	assert.Len(t, d.Extensions, 1)
	assert.Empty(t, d.Reviews)
	assert.Empty(t, d.Installed)
	assert.Len(t, d.Developer, 1)
	assert.Empty(t, d.Analytics)
	assert.Equal(t, models.AuditActionDelete, d.AuditLogs[0].Action)
}

func TestDeletePublishedRequiresOwnership(t *testing.T) {
	svc, s := newTestService(t, ownedDataset())
	before := s.Dump()

	assert.ErrorIs(t, svc.DeletePublished(context.Background(), dev1, "theirs"), apperr.ErrNotFound)
	assert.ErrorIs(t, svc.DeletePublished(context.Background(), dev1, "missing"), apperr.ErrNotFound)
	assert.Equal(t, before, s.Dump())
}

func TestGetAnalytics(t *testing.T) {
	svc, _ := newTestService(t, ownedDataset())

	a, err := svc.GetAnalytics(context.Background(), dev1.ID, "mine")
	require.NoError(t, err)
	assert.Len(t, a.Data, 2)

	_, err = svc.GetAnalytics(context.Background(), dev1.ID, "theirs")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	ext, err := svc.Publish(context.Background(), dev1, PublishInput{Name: "Fresh"})
	require.NoError(t, err)
	a, err = svc.GetAnalytics(context.Background(), dev1.ID, ext.ID)
	require.NoError(t, err)
	assert.Empty(t, a.Data)
}

func TestExportAnalytics(t *testing.T) {
	svc, _ := newTestService(t, ownedDataset())

	data, filename, err := svc.ExportAnalytics(context.Background(), dev1.ID, "mine")
	require.NoError(t, err)
	assert.Equal(t, "mine-analytics.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(analyticsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, analyticsColumns, rows[0])
	assert.Equal(t, "2026-02-28", rows[1][0])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "8", rows[3][1])
	assert.Equal(t, "12.5", rows[3][4])
}
