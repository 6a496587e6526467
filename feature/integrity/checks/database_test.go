package checks

import (
	"testing"

	"esl-manager/core/database"
	"esl-manager/feature/labels/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSqliteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestCheckDatabaseIntegrity_NilDB(t *testing.T) {
	report, err := CheckDatabaseIntegrity(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckDatabaseIntegrity_Matched(t *testing.T) {
	db := setupSqliteDB(t)
	require.NoError(t, db.AutoMigrate(&models.Store{}, &models.Label{}, &models.ResyncTask{}))

	report, err := CheckDatabaseIntegrity(db)

	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Empty(t, report.Errors)
	require.Len(t, report.Tables, 3)
	for name, tbl := range report.Tables {
		assert.Equal(t, "ok", tbl.Status, "table %s", name)
	}
}

func TestCheckDatabaseIntegrity_MissingTable(t *testing.T) {
	db := setupSqliteDB(t)
	require.NoError(t, db.AutoMigrate(&models.Store{}, &models.Label{}))

	report, err := CheckDatabaseIntegrity(db)

	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "missing", report.Tables["resync_tasks"].Status)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "resync_tasks")
}

func TestCheckDatabaseIntegrity_MissingColumn(t *testing.T) {
	db := setupSqliteDB(t)
	require.NoError(t, db.AutoMigrate(&models.Store{}, &models.ResyncTask{}))

	// labels table without the virtual_space_id column
	err := db.Exec(`CREATE TABLE labels (
		id integer primary key,
		store_id integer,
		external_id varchar(64),
		sync_status varchar(16),
		payload text,
		updated_at datetime
	)`).Error
	require.NoError(t, err)

	report, err := CheckDatabaseIntegrity(db)

	require.NoError(t, err)
	assert.False(t, report.Matched)
	tbl := report.Tables["labels"]
	assert.Equal(t, "error", tbl.Status)
	assert.Contains(t, tbl.MissingColumns, "virtual_space_id")
}

func TestCheckDatabaseIntegrity_TypeMismatch(t *testing.T) {
	db := setupSqliteDB(t)
	require.NoError(t, db.AutoMigrate(&models.Label{}, &models.ResyncTask{}))

	// stores table with the wrong type for code
	err := db.Exec(`CREATE TABLE stores (
		id integer primary key,
		code integer,
		name varchar(128),
		company_id integer,
		sync_enabled tinyint(1)
	)`).Error
	require.NoError(t, err)

	report, err := CheckDatabaseIntegrity(db)

	require.NoError(t, err)
	assert.False(t, report.Matched)
	tbl := report.Tables["stores"]
	require.Len(t, tbl.TypeMismatches, 1)
	assert.Contains(t, tbl.TypeMismatches[0], "code: expected varchar(32), got integer")
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "item_code", parseGormColumn("primaryKey;column:item_code;type:varchar(100)"))
	assert.Equal(t, "", parseGormColumn("primaryKey"))

	assert.Equal(t, "varchar(16)", parseGormType("column:status;type:varchar(16)"))
	assert.Equal(t, "", parseGormType("column:id"))
}
