package schema

import (
	"testing"

	"hvac-matcher/core/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModel(t *testing.T) {
	m, err := LoadDefault()
	require.NoError(t, err)

	t.Run("Gas Electric Unit", func(t *testing.T) {
		spec, err := m.ParseModel("DHG1024L150ASXX")
		require.NoError(t, err)

		assert.Equal(t, "DHG", spec.Family)
		assert.Equal(t, unit.SystemGasElectric, spec.SystemType)
		assert.Equal(t, 8.5, spec.Tons)
		assert.Equal(t, "460", spec.Voltage)
		assert.Equal(t, 3, spec.Phase)
		assert.Equal(t, 150000, spec.HeatingBTU)
		assert.Equal(t, "R-410A", spec.Refrigerant)
		assert.Equal(t, "S", spec.Accessories["drive"])
		assert.Equal(t, unit.ProvenanceDecoded, spec.Provenance["capacity"])
	})

	t.Run("Heat Pump With Electric Heat", func(t *testing.T) {
		spec, err := m.ParseModel("DSH0603L010AMXX")
		require.NoError(t, err)

		assert.Equal(t, unit.SystemHeatPump, spec.SystemType)
		assert.Equal(t, 5.0, spec.Tons)
		assert.Equal(t, "208-230", spec.Voltage)
		assert.Equal(t, 3, spec.Phase)
		assert.Equal(t, 10.0, spec.ElectricHeatKW)
		assert.Zero(t, spec.HeatingBTU)
	})

	t.Run("Lowercase And Padding Tolerated", func(t *testing.T) {
		spec, err := m.ParseModel("  dhg1024l150asxx ")
		require.NoError(t, err)
		assert.Equal(t, "DHG", spec.Family)
	})

	t.Run("Unknown Family Prefix", func(t *testing.T) {
		_, err := m.ParseModel("ZZZ1024L150ASXX")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown family prefix")
	})

	t.Run("Truncated Required Position", func(t *testing.T) {
		_, err := m.ParseModel("DHG102")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "truncated")
	})

	t.Run("Invalid Code At Required Position", func(t *testing.T) {
		_, err := m.ParseModel("DHG9994L150ASXX")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid at position")
	})

	t.Run("Empty Input", func(t *testing.T) {
		_, err := m.ParseModel("   ")
		assert.Error(t, err)
	})
}
