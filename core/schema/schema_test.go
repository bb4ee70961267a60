package schema

import (
	"strings"
	"testing"

	"hvac-matcher/core/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	m, err := LoadDefault()
	require.NoError(t, err)

	t.Run("Positions Indexed", func(t *testing.T) {
		p, ok := m.Position(PosCapacity)
		require.True(t, ok)
		assert.Equal(t, 3, p.Start)
		assert.Equal(t, 6, p.End)
		assert.Equal(t, 3, p.Width())
	})

	t.Run("Families Carry Their Code", func(t *testing.T) {
		f, ok := m.Family("DHG")
		require.True(t, ok)
		assert.Equal(t, "DHG", f.Code)
		assert.Equal(t, unit.SystemGasElectric, f.SystemType)
	})

	t.Run("Family Codes Sorted", func(t *testing.T) {
		assert.Equal(t, []string{"DHC", "DHG", "DHH", "DSC", "DSG", "DSH"}, m.FamilyCodes())
	})

	t.Run("Ladders Present", func(t *testing.T) {
		for _, name := range []string{LadderTons, LadderGasBTU, LadderKW} {
			_, ok := m.Ladder(name)
			assert.True(t, ok, name)
		}
	})
}

func TestLoadRejectsMalformedDocuments(t *testing.T) {
	load := func(doc string) error {
		_, err := Load(strings.NewReader(doc))
		return err
	}

	t.Run("Invalid JSON", func(t *testing.T) {
		assert.Error(t, load(`{`))
	})

	t.Run("Unknown Position In Family", func(t *testing.T) {
		err := load(`{
			"positions": [{"name": "family", "start": 0, "end": 3, "codes": {"DHG": {}}}],
			"families": {"DHG": {
				"system_type": "gas_electric",
				"positions": [{"name": "family"}, {"name": "ghost"}]
			}},
			"ladders": {}
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown position")
	})

	t.Run("Code Wider Than Position", func(t *testing.T) {
		err := load(`{
			"positions": [{"name": "family", "start": 0, "end": 3, "codes": {"TOOLONG": {}}}],
			"families": {},
			"ladders": {}
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not fit width")
	})

	t.Run("Non Contiguous Family Layout", func(t *testing.T) {
		err := load(`{
			"positions": [
				{"name": "family", "start": 0, "end": 3, "codes": {"DHG": {}}},
				{"name": "capacity", "start": 4, "end": 7, "codes": {"102": {"tons": 8.5}}}
			],
			"families": {"DHG": {
				"system_type": "gas_electric",
				"positions": [{"name": "family"}, {"name": "capacity"}]
			}},
			"ladders": {}
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "starts at 4, want 3")
	})

	t.Run("Unsorted Ladder", func(t *testing.T) {
		err := load(`{
			"positions": [{"name": "family", "start": 0, "end": 3, "codes": {"DHG": {}}}],
			"families": {},
			"ladders": {"tons": {"dimension": "tons", "values": [5, 3]}}
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not ascending")
	})

	t.Run("Empty Ladder", func(t *testing.T) {
		err := load(`{
			"positions": [{"name": "family", "start": 0, "end": 3, "codes": {"DHG": {}}}],
			"families": {},
			"ladders": {"tons": {"dimension": "tons", "values": []}}
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("Constraint Code Must Exist", func(t *testing.T) {
		err := load(`{
			"positions": [
				{"name": "family", "start": 0, "end": 3, "codes": {"DHG": {}}},
				{"name": "outlet", "start": 3, "end": 4, "codes": {"P": {}, "X": {}}}
			],
			"families": {"DHG": {
				"system_type": "gas_electric",
				"positions": [{"name": "family"}, {"name": "outlet", "option": true}],
				"required_together": [[{"position": "outlet", "code": "Z"}]]
			}},
			"ladders": {}
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `constraint code "Z"`)
	})
}

func TestPositionCodeLookups(t *testing.T) {
	m, err := LoadDefault()
	require.NoError(t, err)

	capPos, _ := m.Position(PosCapacity)
	gasPos, _ := m.Position(PosGasHeat)
	ehPos, _ := m.Position(PosElectricHeat)

	t.Run("By Tons", func(t *testing.T) {
		code, ok := capPos.CodeForTons(8.5)
		require.True(t, ok)
		assert.Equal(t, "102", code)

		_, ok = capPos.CodeForTons(9.0)
		assert.False(t, ok)
	})

	t.Run("By BTU", func(t *testing.T) {
		code, ok := gasPos.CodeForBTU(150000)
		require.True(t, ok)
		assert.Equal(t, "150", code)
	})

	t.Run("By KW", func(t *testing.T) {
		code, ok := ehPos.CodeForKW(10)
		require.True(t, ok)
		assert.Equal(t, "010", code)

		// The "no electric heat" code carries no kW value and must not match.
		_, ok = ehPos.CodeForKW(0)
		assert.False(t, ok)
	})
}

func TestFamilyCapacityAllowed(t *testing.T) {
	m, err := LoadDefault()
	require.NoError(t, err)

	dhg, _ := m.Family("DHG")
	assert.True(t, dhg.CapacityAllowed("102"))
	assert.False(t, dhg.CapacityAllowed("036"), "3-ton chassis is not built in the high efficiency gas line")

	unrestricted := &Family{}
	assert.True(t, unrestricted.CapacityAllowed("036"))
}
