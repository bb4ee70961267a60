package search

import (
	"context"
	"io"
	"strings"
	"testing"

	"hvac-matcher/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{
  "units": [
    {"model": "DHG1024L150ASXX", "family": "DHG", "system_type": "gas_electric", "tons": "8.5", "heating_btu": "150000", "voltage": 460, "phase": "3", "refrigerant": "R-410A"},
    {"model": "DSH0603L010ASXX", "family": "DSH", "system_type": "heat_pump", "tons": 5, "electric_heat_kw": 10, "voltage": "208-230", "phase": 3, "active": "0"}
  ]
}`

func TestLoadCatalogDocument(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", context.Background(), "hvac", "catalog.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader(catalogJSON)), nil)

	units, err := LoadCatalogDocument(context.Background(), client, "hvac", "catalog.json")
	require.NoError(t, err)
	require.Len(t, units, 2)

	// Spreadsheet-typed fields come out normalized.
	assert.Equal(t, 8.5, units[0].Tons)
	assert.Equal(t, 150000, units[0].HeatingBTU)
	assert.Equal(t, "460", units[0].Voltage)
	assert.Equal(t, 3, units[0].Phase)
	assert.Equal(t, 1, units[0].Active)

	assert.Equal(t, 10.0, units[1].ElectricHeatKW)
	assert.Equal(t, 0, units[1].Active)

	client.AssertExpectations(t)
}

func TestLoadCatalogDocumentBadJSON(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", context.Background(), "hvac", "catalog.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader("not json")), nil)

	_, err := LoadCatalogDocument(context.Background(), client, "hvac", "catalog.json")
	assert.Error(t, err)
}

func TestDocumentCatalogSkipsInactive(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", context.Background(), "hvac", "catalog.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader(catalogJSON)), nil)

	catalog := NewDocumentCatalog(client, "hvac", "catalog.json")
	entries, err := catalog.Entries(context.Background())
	require.NoError(t, err)

	// The heat pump is flagged inactive in the document.
	require.Len(t, entries, 1)
	assert.Equal(t, "DHG1024L150ASXX", entries[0].Model)
}
