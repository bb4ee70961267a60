package validate

import (
	"testing"

	"hvac-matcher/core/schema"
	"hvac-matcher/core/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serviceForTest(t *testing.T) *Service {
	t.Helper()
	m, err := schema.LoadDefault()
	require.NoError(t, err)
	return NewService(m, zap.NewNop())
}

func TestCheckModelValid(t *testing.T) {
	svc := serviceForTest(t)

	report, err := svc.CheckModel("DHG1024L150ASXX")
	require.NoError(t, err)

	assert.True(t, report.Valid)
	assert.Equal(t, "DHG", report.Family)
	assert.Empty(t, report.Diagnostics)
	require.NotNil(t, report.Spec)
	assert.Equal(t, 8.5, report.Spec.Tons)
}

func TestCheckModelUnparseable(t *testing.T) {
	svc := serviceForTest(t)

	_, err := svc.CheckModel("ZZZ1024L150ASXX")
	assert.Error(t, err)
}

func TestCheckSpecConstraintViolations(t *testing.T) {
	svc := serviceForTest(t)

	t.Run("Capacity Outside Family Set", func(t *testing.T) {
		// 3 tons is not offered in the DHG line.
		report := svc.CheckSpec(&unit.Spec{
			Family:     "DHG",
			SystemType: unit.SystemGasElectric,
			Tons:       3,
			HeatingBTU: 150000,
		}, "DHG")

		assert.False(t, report.Valid)
		assert.NotEmpty(t, report.Diagnostics)
	})

	t.Run("Gas Heat On Heat Pump", func(t *testing.T) {
		report := svc.CheckSpec(&unit.Spec{
			Family:     "DSH",
			SystemType: unit.SystemHeatPump,
			Tons:       5,
			HeatingBTU: 150000,
		}, "DSH")

		assert.False(t, report.Valid)
	})

	t.Run("Consistent Spec Is Valid", func(t *testing.T) {
		report := svc.CheckSpec(&unit.Spec{
			Family:     "DSG",
			SystemType: unit.SystemGasElectric,
			Tons:       5,
			HeatingBTU: 90000,
		}, "DSG")

		assert.True(t, report.Valid)
		assert.Empty(t, report.Diagnostics)
	})
}
