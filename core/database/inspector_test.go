package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows(fields ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, f := range fields {
		rows.AddRow(f, "varchar(32)", "YES", "", nil, "")
	}
	return rows
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `catalog_units`").
		WillReturnRows(columnRows("ID", "Model", "Family"))

	columns, err := GetTableColumns(db, "catalog_units")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	// Names come back lowercased.
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "model", columns[1].Field)
}

func TestVerifyTable(t *testing.T) {
	t.Run("All Present", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `catalog_units`").
			WillReturnRows(columnRows("id", "model", "family"))

		missing, err := VerifyTable(db, "catalog_units", []string{"id", "model"})
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Missing Columns Reported", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `catalog_units`").
			WillReturnRows(columnRows("id", "model"))

		missing, err := VerifyTable(db, "catalog_units", []string{"id", "model", "tons", "voltage"})
		require.NoError(t, err)
		assert.Equal(t, []string{"tons", "voltage"}, missing)
	})
}
