package labels_test

import (
	"context"
	"testing"

	"esl-manager/core/database"
	"esl-manager/feature/labels"
	"esl-manager/feature/labels/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Store{}, &models.Label{}, &models.ResyncTask{})
	require.NoError(t, err)
	return db
}

func TestListSyncEnabledStores(t *testing.T) {
	db := setupTestDB(t)
	seed := []models.Store{
		{ID: 1, Code: "S001", Name: "Downtown", CompanyID: 1, SyncEnabled: true},
		{ID: 2, Code: "S002", Name: "Uptown", CompanyID: 1, SyncEnabled: false},
		{ID: 3, Code: "S003", Name: "Airport", CompanyID: 2, SyncEnabled: true},
	}
	require.NoError(t, db.Create(&seed).Error)

	repo := labels.NewRepository(db)
	stores, err := repo.ListSyncEnabledStores(context.Background())

	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "S001", stores[0].Code)
	assert.Equal(t, "S003", stores[1].Code)
	assert.Equal(t, uint(2), stores[1].CompanyID)
}

func TestListSyncedRecords(t *testing.T) {
	db := setupTestDB(t)
	seed := []models.Label{
		{ID: 1, StoreID: 1, ExternalID: "E-1", SyncStatus: models.SyncStatusSynced},
		{ID: 2, StoreID: 1, VirtualSpaceID: "V-2", SyncStatus: models.SyncStatusSynced},
		{ID: 3, StoreID: 1, ExternalID: "E-3", SyncStatus: models.SyncStatusPending},
		{ID: 4, StoreID: 1, ExternalID: "E-4", SyncStatus: models.SyncStatusFailed},
		{ID: 5, StoreID: 2, ExternalID: "E-5", SyncStatus: models.SyncStatusSynced},
	}
	require.NoError(t, db.Create(&seed).Error)

	repo := labels.NewRepository(db)

	t.Run("Only Synced Labels Of The Store", func(t *testing.T) {
		records, err := repo.ListSyncedRecords(context.Background(), 1, 100)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, uint(1), records[0].ID)
		assert.Equal(t, "E-1", records[0].ExternalID)
		assert.Equal(t, uint(2), records[1].ID)
		assert.Equal(t, "V-2", records[1].VirtualSpaceID)
	})

	t.Run("Limit Keeps Oldest", func(t *testing.T) {
		records, err := repo.ListSyncedRecords(context.Background(), 1, 1)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, uint(1), records[0].ID)
	})

	t.Run("Unknown Store Is Empty", func(t *testing.T) {
		records, err := repo.ListSyncedRecords(context.Background(), 99, 100)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestGetLabel(t *testing.T) {
	db := setupTestDB(t)
	seed := []models.Label{
		{ID: 12, StoreID: 1, ExternalID: "E-12", SyncStatus: models.SyncStatusSynced},
		{ID: 13, StoreID: 1, VirtualSpaceID: "V-13", SyncStatus: models.SyncStatusPending},
	}
	require.NoError(t, db.Create(&seed).Error)

	repo := labels.NewRepository(db)

	t.Run("By Numeric ID", func(t *testing.T) {
		label, err := repo.GetLabel(context.Background(), "12")
		require.NoError(t, err)
		require.NotNil(t, label)
		assert.Equal(t, "E-12", label.ExternalID)
	})

	t.Run("By External ID", func(t *testing.T) {
		label, err := repo.GetLabel(context.Background(), "E-12")
		require.NoError(t, err)
		require.NotNil(t, label)
		assert.Equal(t, uint(12), label.ID)
	})

	t.Run("By Virtual Space ID", func(t *testing.T) {
		label, err := repo.GetLabel(context.Background(), "V-13")
		require.NoError(t, err)
		require.NotNil(t, label)
		assert.Equal(t, uint(13), label.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		label, err := repo.GetLabel(context.Background(), "nope")
		require.NoError(t, err)
		assert.Nil(t, label)
	})
}

func TestGetStore(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Store{ID: 4, Code: "S004", Name: "Harbor", SyncEnabled: true}).Error)

	repo := labels.NewRepository(db)

	store, err := repo.GetStore(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "S004", store.Code)

	missing, err := repo.GetStore(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
