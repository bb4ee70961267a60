package validate

import (
	"testing"

	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func masterForTest(t *testing.T) *schema.Master {
	t.Helper()
	m, err := schema.LoadDefault()
	require.NoError(t, err)
	return m
}

func TestCheckConsistentSpec(t *testing.T) {
	m := masterForTest(t)

	spec := &unit.Spec{
		Family:     "DHG",
		SystemType: unit.SystemGasElectric,
		Tons:       8.5,
		HeatingBTU: 150000,
		Voltage:    "460",
		Phase:      3,
	}

	assert.Empty(t, Check(spec, "DHG", m))
}

func TestCheckUnknownFamily(t *testing.T) {
	m := masterForTest(t)

	diags := Check(&unit.Spec{}, "XYZ", m)
	require.Len(t, diags, 1)
	assert.Equal(t, unit.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "unknown family")
}

func TestCheckSystemTypeMismatch(t *testing.T) {
	m := masterForTest(t)

	spec := &unit.Spec{SystemType: unit.SystemHeatPump, Tons: 8.5, HeatingBTU: 150000}
	diags := Check(spec, "DHG", m)
	require.NotEmpty(t, diags)
	assert.True(t, unit.HasErrors(diags))
	assert.Equal(t, unit.FieldSystemType, diags[0].Field)
}

func TestCheckCapacity(t *testing.T) {
	m := masterForTest(t)

	t.Run("Not On Ladder", func(t *testing.T) {
		spec := &unit.Spec{Tons: 9.0, HeatingBTU: 150000}
		diags := Check(spec, "DHG", m)
		require.Len(t, diags, 1)
		assert.Equal(t, unit.FieldCapacity, diags[0].Field)
		assert.NotEmpty(t, diags[0].Suggestion)
	})

	t.Run("Outside Family Allowed Set", func(t *testing.T) {
		// 3 tons encodes as "036", which the DHG line does not offer.
		spec := &unit.Spec{Tons: 3, HeatingBTU: 150000}
		diags := Check(spec, "DHG", m)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "not offered in family DHG")
	})

	t.Run("Derived From Cooling BTU", func(t *testing.T) {
		spec := &unit.Spec{CoolingBTU: 102000, HeatingBTU: 150000}
		diags := Check(spec, "DHG", m)
		assert.Empty(t, diags)
	})

	t.Run("Unknown Capacity Skipped", func(t *testing.T) {
		spec := &unit.Spec{HeatingBTU: 150000}
		assert.Empty(t, Check(spec, "DHG", m))
	})
}

func TestCheckHeatingFields(t *testing.T) {
	m := masterForTest(t)

	t.Run("Gas Family Needs Gas Input", func(t *testing.T) {
		spec := &unit.Spec{Tons: 8.5}
		diags := Check(spec, "DSG", m)
		require.Len(t, diags, 1)
		assert.Equal(t, unit.FieldHeatingBTU, diags[0].Field)
		assert.Equal(t, "supply a gas heating BTU value", diags[0].Suggestion)
	})

	t.Run("Electric Strip On Gas Chassis", func(t *testing.T) {
		spec := &unit.Spec{Tons: 8.5, HeatingBTU: 150000, ElectricHeatKW: 10}
		diags := Check(spec, "DHG", m)
		require.Len(t, diags, 1)
		assert.Equal(t, "electric_heat_kw", diags[0].Field)
	})

	t.Run("Gas Input On Straight AC", func(t *testing.T) {
		spec := &unit.Spec{Tons: 5, HeatingBTU: 150000}
		diags := Check(spec, "DSC", m)
		require.Len(t, diags, 1)
		assert.Contains(t, diags[0].Message, "straight_ac")
	})

	t.Run("Heat Pump Without Strips Is Fine", func(t *testing.T) {
		spec := &unit.Spec{Tons: 5}
		assert.Empty(t, Check(spec, "DSH", m))
	})
}

func TestCheckRequiredTogetherAccessories(t *testing.T) {
	m := masterForTest(t)

	base := unit.Spec{Tons: 8.5, HeatingBTU: 150000}

	t.Run("Both Selected", func(t *testing.T) {
		spec := base
		spec.Accessories = map[string]string{"outlet": "P", "controls": "C"}
		assert.Empty(t, Check(&spec, "DHG", m))
	})

	t.Run("Neither Selected", func(t *testing.T) {
		spec := base
		assert.Empty(t, Check(&spec, "DHG", m))
	})

	t.Run("Powered Outlet Without Controls Board", func(t *testing.T) {
		spec := base
		spec.Accessories = map[string]string{"outlet": "P"}
		diags := Check(&spec, "DHG", m)
		require.Len(t, diags, 1)
		assert.Equal(t, "accessories", diags[0].Field)
		assert.Contains(t, diags[0].Message, "outlet=P+controls=C")
	})
}
