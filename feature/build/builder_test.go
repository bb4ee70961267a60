package build

import (
	"errors"
	"strings"
	"testing"

	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"
	"hvac-matcher/core/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderForTest(t *testing.T) *Builder {
	t.Helper()
	m, err := schema.LoadDefault()
	require.NoError(t, err)
	return NewBuilder(m)
}

func TestBuildExactCodes(t *testing.T) {
	b := builderForTest(t)

	result, err := b.Build(Request{
		Family: "DHG",
		Codes: map[string]string{
			"capacity": "102",
			"voltage":  "4",
			"gas_heat": "150",
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Model, "DHG1024L150"), "got %s", result.Model)
	assert.Equal(t, unit.MatchExact, result.CapacityMatch)
	assert.Equal(t, unit.MatchExact, result.HeatingMatch)

	// The resolved mapping exposes the semantics behind each code.
	assert.Equal(t, 8.5, result.Resolved["capacity"].Value.Tons)
	assert.Equal(t, 150000, result.Resolved["gas_heat"].Value.BTU)
	assert.Equal(t, unit.ProvenanceDefaulted, result.Resolved["series"].Source)

	require.NotNil(t, result.Spec)
	assert.Equal(t, 8.5, result.Spec.Tons)
	assert.Equal(t, unit.SystemGasElectric, result.Spec.SystemType)
	assert.Empty(t, result.Diagnostics)
}

func TestBuildNumericFallback(t *testing.T) {
	b := builderForTest(t)

	result, err := b.Build(Request{
		Family: "DHG",
		Tons:   9.0,
		GasBTU: 160000,
		Codes:  map[string]string{"voltage": "4"},
	})
	require.NoError(t, err)

	// 9.0 tons has no code; the ladder lands on 8.5. 160,000 BTU lands on
	// 150,000. Both are rounded down and both are visible to the caller.
	assert.Equal(t, "102", result.Resolved["capacity"].Code)
	assert.Equal(t, 8.5, result.Resolved["capacity"].Value.Tons)
	assert.Equal(t, unit.MatchRoundedDown, result.CapacityMatch)

	assert.Equal(t, "150", result.Resolved["gas_heat"].Code)
	assert.Equal(t, unit.MatchRoundedDown, result.HeatingMatch)

	assert.True(t, strings.HasPrefix(result.Model, "DHG1024L150"), "got %s", result.Model)
}

func TestBuildMissingRequiredPosition(t *testing.T) {
	b := builderForTest(t)

	// A gas/electric build without any gas heating value cannot resolve
	// the gas_heat position.
	result, err := b.Build(Request{
		Family: "DSG",
		Tons:   5,
		Codes:  map[string]string{"voltage": "3"},
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var sv *unit.SchemaViolationError
	require.True(t, errors.As(err, &sv))
	assert.Equal(t, "gas_heat", sv.Position)
	assert.Equal(t, "DSG", sv.Family)
}

func TestBuildRejectsInvalidExactCodes(t *testing.T) {
	b := builderForTest(t)

	t.Run("Unknown Family", func(t *testing.T) {
		_, err := b.Build(Request{Family: "ZZZ"})
		assert.True(t, unit.IsSchemaViolation(err))
	})

	t.Run("Code Not In Table", func(t *testing.T) {
		_, err := b.Build(Request{
			Family: "DHG",
			Codes:  map[string]string{"capacity": "999", "voltage": "4", "gas_heat": "150"},
		})
		require.True(t, unit.IsSchemaViolation(err))
		assert.Contains(t, err.Error(), `"999"`)
	})

	t.Run("Capacity Outside Family Set", func(t *testing.T) {
		// "036" exists in the capacity table but the DHG line starts at 6 tons.
		_, err := b.Build(Request{
			Family: "DHG",
			Codes:  map[string]string{"capacity": "036", "voltage": "4", "gas_heat": "150"},
		})
		require.True(t, unit.IsSchemaViolation(err))
		assert.Contains(t, err.Error(), "not offered in this family")
	})

	t.Run("Unknown Accessory Code", func(t *testing.T) {
		_, err := b.Build(Request{
			Family:      "DHG",
			Tons:        8.5,
			GasBTU:      150000,
			Codes:       map[string]string{"voltage": "4"},
			Accessories: map[string]string{"drive": "Q"},
		})
		require.True(t, unit.IsSchemaViolation(err))
	})
}

func TestBuildFamilyLadderRestriction(t *testing.T) {
	b := builderForTest(t)

	// On the global ladder 5.5 tons would round down to 5, but the DHG
	// line starts at 6 tons; the family-restricted ladder clamps upward.
	result, err := b.Build(Request{
		Family: "DHG",
		Tons:   5.5,
		GasBTU: 150000,
		Codes:  map[string]string{"voltage": "4"},
	})
	require.NoError(t, err)
	assert.Equal(t, "072", result.Resolved["capacity"].Code)
	assert.Equal(t, unit.MatchClamped, result.CapacityMatch)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, unit.SeverityWarning, result.Diagnostics[0].Severity)
}

func TestBuildClampWarnings(t *testing.T) {
	b := builderForTest(t)

	result, err := b.Build(Request{
		Family: "DSG",
		Tons:   1.0,
		GasBTU: 400000,
		Codes:  map[string]string{"voltage": "3"},
	})
	require.NoError(t, err)

	assert.Equal(t, unit.MatchClamped, result.CapacityMatch)
	assert.Equal(t, unit.MatchClamped, result.HeatingMatch)
	assert.Equal(t, "036", result.Resolved["capacity"].Code)
	assert.Equal(t, "240", result.Resolved["gas_heat"].Code)
	assert.Len(t, result.Diagnostics, 2)
}

func TestBuildAccessoryMergeModes(t *testing.T) {
	b := builderForTest(t)

	base := Request{
		Family: "DHG",
		Tons:   8.5,
		GasBTU: 150000,
		Codes:  map[string]string{"voltage": "4"},
	}

	t.Run("Additive Keeps Defaults", func(t *testing.T) {
		req := base
		req.Accessories = map[string]string{"outlet": "P", "controls": "C"}
		result, err := b.Build(req)
		require.NoError(t, err)

		// drive keeps the family default S; outlet and controls are the
		// requested codes.
		assert.Equal(t, "DHG1024L150ASPC", result.Model)
	})

	t.Run("Replace Resets Unsupplied Options To Neutral", func(t *testing.T) {
		req := base
		req.MergeMode = MergeReplace
		req.Accessories = map[string]string{"drive": "M"}
		result, err := b.Build(req)
		require.NoError(t, err)

		// outlet and controls fall back to their X codes instead of the
		// family defaults.
		assert.Equal(t, "DHG1024L150AMXX", result.Model)
	})

	t.Run("Replace Without Neutral Keeps Default", func(t *testing.T) {
		req := base
		req.MergeMode = MergeReplace
		result, err := b.Build(req)
		require.NoError(t, err)

		// drive has no none code, so replace mode keeps the default S.
		assert.Equal(t, "DHG1024L150ASXX", result.Model)
	})

	t.Run("Unknown Merge Mode", func(t *testing.T) {
		req := base
		req.MergeMode = "upsert"
		_, err := b.Build(req)
		require.Error(t, err)
		assert.False(t, unit.IsSchemaViolation(err))
	})
}

// Every build the builder accepts validates clean: the fixed point the
// encoder and validator agree on.
func TestBuildResultsValidateClean(t *testing.T) {
	m, err := schema.LoadDefault()
	require.NoError(t, err)
	b := NewBuilder(m)

	requests := []Request{
		{Family: "DHG", Tons: 9.0, GasBTU: 160000, Codes: map[string]string{"voltage": "4"}},
		{Family: "DSG", Tons: 3, GasBTU: 90000, Codes: map[string]string{"voltage": "1"}},
		{Family: "DSH", Tons: 5, ElectricHeatKW: 10, Codes: map[string]string{"voltage": "3"}},
		{Family: "DHC", Codes: map[string]string{"capacity": "120", "voltage": "7"}},
	}

	for _, req := range requests {
		result, err := b.Build(req)
		require.NoError(t, err, "family %s", req.Family)
		assert.Empty(t, validate.Check(result.Spec, req.Family, m), "family %s model %s", req.Family, result.Model)
	}
}

// Increasing the requested tonnage never decreases the resolved capacity.
func TestBuildCapacityMonotonic(t *testing.T) {
	b := builderForTest(t)

	prev := 0.0
	for tons := 3.0; tons <= 13.0; tons += 0.25 {
		result, err := b.Build(Request{
			Family: "DSG",
			Tons:   tons,
			GasBTU: 115000,
			Codes:  map[string]string{"voltage": "3"},
		})
		require.NoError(t, err)
		got := result.Resolved["capacity"].Value.Tons
		assert.GreaterOrEqual(t, got, prev, "tons=%v", tons)
		prev = got
	}
}
