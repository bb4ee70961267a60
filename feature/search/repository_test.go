package search

import (
	"context"
	"testing"

	"hvac-matcher/feature/search/models"

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

func catalogColumns() []string {
	return []string{"id", "model", "family", "system_type", "tons", "heating_btu", "electric_heat_kw", "voltage", "phase", "refrigerant", "active"}
}

func TestRepositoryListActive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows(catalogColumns()).
		AddRow(1, "DHG1024L150ASXX", "DHG", "gas_electric", 8.5, 150000, 0.0, "460", 3, "R-410A", 1).
		AddRow(2, "DSH0603L010ASXX", "DSH", "heat_pump", 5.0, 0, 10.0, "208-230", 3, "R-410A", 1)

	mock.ExpectQuery("SELECT \\* FROM `catalog_units` WHERE active = \\?").
		WithArgs(1).
		WillReturnRows(rows)

	units, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "DHG1024L150ASXX", units[0].Model)
	assert.Equal(t, 8.5, units[0].Tons)
	assert.Equal(t, 10.0, units[1].ElectricHeatKW)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryEntries(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows(catalogColumns()).
		AddRow(1, "DHG1024L150ASXX", "DHG", "gas_electric", 8.5, 150000, 0.0, "460", 3, "R-410A", 1)

	mock.ExpectQuery("SELECT \\* FROM `catalog_units`").
		WillReturnRows(rows)

	entries, err := repo.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// The row's unit attributes land in the matcher entry's spec.
	e := entries[0]
	assert.Equal(t, "DHG1024L150ASXX", e.Model)
	assert.Equal(t, "DHG", e.Family)
	assert.Equal(t, 8.5, e.Spec.Tons)
	assert.Equal(t, 150000, e.Spec.HeatingBTU)
	assert.Equal(t, 3, e.Spec.Phase)
}

func TestRepositoryReplace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `catalog_units`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO `catalog_units`").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	err := repo.Replace(context.Background(), []models.CatalogUnit{
		{Model: "DHG1024L150ASXX", Family: "DHG", SystemType: "gas_electric", Tons: 8.5, HeatingBTU: 150000, Voltage: "460", Phase: 3, Active: 1},
		{Model: "DSG0603L090ASXX", Family: "DSG", SystemType: "gas_electric", Tons: 5, HeatingBTU: 90000, Voltage: "208-230", Phase: 3, Active: 1},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryReplaceEmptyClearsTable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `catalog_units`").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	err := repo.Replace(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
