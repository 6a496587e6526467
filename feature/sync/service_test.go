package sync_test

import (
	"context"
	"testing"
	"time"

	"esl-manager/core/database"
	"esl-manager/core/drift"
	"esl-manager/core/platform"
	"esl-manager/core/platform/mocks"
	"esl-manager/feature/labels/models"
	"esl-manager/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSyncDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Store{}, &models.Label{}, &models.ResyncTask{})
	require.NoError(t, err)
	return db
}

func TestService_VerifyNow(t *testing.T) {
	db := setupSyncDB(t)
	stores := []models.Store{
		{ID: 1, Code: "S001", Name: "Downtown", CompanyID: 1, SyncEnabled: true},
		{ID: 2, Code: "S002", Name: "Uptown", CompanyID: 1, SyncEnabled: true},
	}
	require.NoError(t, db.Create(&stores).Error)
	seed := []models.Label{
		{ID: 1, StoreID: 1, ExternalID: "E-1", SyncStatus: models.SyncStatusSynced},
		{ID: 2, StoreID: 1, ExternalID: "E-2", SyncStatus: models.SyncStatusSynced},
		{ID: 3, StoreID: 2, ExternalID: "E-9", SyncStatus: models.SyncStatusSynced},
	}
	require.NoError(t, db.Create(&seed).Error)

	mockClient := new(mocks.Client)
	mockClient.On("FetchLabels", mock.Anything, "S001").
		Return([]platform.Record{{"articleId": "E-1"}, {"articleId": "E-2"}}, nil)
	mockClient.On("FetchLabels", mock.Anything, "S002").
		Return([]platform.Record{}, nil)

	svc := sync.NewService(db, mockClient, drift.Config{}, zap.NewNop())
	results, err := svc.VerifyNow(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Verified)
	assert.False(t, results[1].Verified)
	assert.Equal(t, []uint{3}, results[1].MissingInRemote)

	// The drifted label is queued for resync, and a second run absorbs the
	// duplicate instead of queueing again
	var count int64
	require.NoError(t, db.Model(&models.ResyncTask{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	_, err = svc.VerifyNow(context.Background())
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.ResyncTask{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.PendingResyncTasks)
	assert.False(t, status.Running)
	assert.False(t, status.InFlight)
}

func TestService_LabelDetail(t *testing.T) {
	db := setupSyncDB(t)
	stores := []models.Store{
		{ID: 1, Code: "S001", Name: "Downtown", CompanyID: 1, SyncEnabled: true},
	}
	require.NoError(t, db.Create(&stores).Error)
	seed := []models.Label{
		{ID: 1, StoreID: 1, ExternalID: "E-1", SyncStatus: models.SyncStatusSynced},
		{ID: 2, StoreID: 1, ExternalID: "E-2", SyncStatus: models.SyncStatusSynced},
		{ID: 3, StoreID: 1, SyncStatus: models.SyncStatusPending},
	}
	require.NoError(t, db.Create(&seed).Error)

	mockClient := new(mocks.Client)
	mockClient.On("FetchLabels", mock.Anything, "S001").
		Return([]platform.Record{{"articleId": "E-1"}}, nil)

	svc := sync.NewService(db, mockClient, drift.Config{}, zap.NewNop())

	t.Run("On Platform", func(t *testing.T) {
		report, err := svc.LabelDetail(context.Background(), "E-1")
		require.NoError(t, err)
		assert.Equal(t, uint(1), report.ID)
		assert.Equal(t, "S001", report.StoreCode)
		assert.Equal(t, "E-1", report.CorrelationKey)
		assert.True(t, report.OnPlatform)
		assert.Equal(t, "OK", report.IntegrityStatus)
	})

	t.Run("Drifted", func(t *testing.T) {
		report, err := svc.LabelDetail(context.Background(), "2")
		require.NoError(t, err)
		assert.False(t, report.OnPlatform)
		assert.Equal(t, "DRIFT", report.IntegrityStatus)
	})

	t.Run("Uncorrelated", func(t *testing.T) {
		report, err := svc.LabelDetail(context.Background(), "3")
		require.NoError(t, err)
		assert.Empty(t, report.CorrelationKey)
		assert.Equal(t, "WARNING", report.IntegrityStatus)
		assert.NotEmpty(t, report.Notes)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := svc.LabelDetail(context.Background(), "nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, sync.ErrLabelNotFound)
	})
}

func TestService_LabelDetail_PlatformUnreachable(t *testing.T) {
	db := setupSyncDB(t)
	require.NoError(t, db.Create(&models.Store{ID: 1, Code: "S001", Name: "Downtown", SyncEnabled: true}).Error)
	require.NoError(t, db.Create(&models.Label{ID: 1, StoreID: 1, ExternalID: "E-1", SyncStatus: models.SyncStatusSynced}).Error)

	mockClient := new(mocks.Client)
	mockClient.On("FetchLabels", mock.Anything, "S001").
		Return([]platform.Record(nil), assert.AnError)

	svc := sync.NewService(db, mockClient, drift.Config{}, zap.NewNop())
	report, err := svc.LabelDetail(context.Background(), "E-1")

	require.NoError(t, err)
	assert.False(t, report.OnPlatform)
	assert.Equal(t, "UNKNOWN", report.IntegrityStatus)
	assert.NotEmpty(t, report.Notes)
}

func TestService_StartStop(t *testing.T) {
	db := setupSyncDB(t)
	svc := sync.NewService(db, new(mocks.Client), drift.Config{}, zap.NewNop())

	svc.Start(time.Hour)
	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Running)

	svc.Stop()
	status, err = svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Running)
}
