package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() Profile {
	p := ZeroProfile()
	p.Calories = 130
	p.Protein = 2.7
	p.Carbs = Carbs{Total: 28.2, Fiber: 0.4, Sugar: 0.1}
	p.Fat = Fat{Total: 0.3, Saturated: 0.1}
	p.Sodium = 1
	p.Potassium = 35
	p.Vitamins["c"] = 12.5
	p.Minerals["iron"] = 1.7
	return p
}

func TestScaleForServingIdentity(t *testing.T) {
	p := sampleProfile()
	scaled, err := ScaleForServing(p, 100, "g", 100, "g")
	require.NoError(t, err)
	assert.Equal(t, p, scaled)
}

func TestScaleForServingRatio(t *testing.T) {
	p := sampleProfile()

	half, err := ScaleForServing(p, 100, "g", 50, "g")
	require.NoError(t, err)
	assert.Equal(t, 65.0, half.Calories)
	assert.Equal(t, 1.35, half.Protein)
	assert.Equal(t, 14.1, half.Carbs.Total)
	assert.Equal(t, 6.25, half.Vitamins["c"])

	larger, err := ScaleForServing(p, 100, "g", 250, "g")
	require.NoError(t, err)
	assert.Equal(t, 325.0, larger.Calories)
	assert.Equal(t, 87.5, larger.Potassium)
}

func TestScaleForServingIgnoresUnitMismatch(t *testing.T) {
	// The ratio comes from the amounts alone even when units differ. This
	// matches how historical meal snapshots were computed.
	p := sampleProfile()
	scaled, err := ScaleForServing(p, 100, "g", 50, "cup")
	require.NoError(t, err)
	assert.Equal(t, 65.0, scaled.Calories)
}

func TestScaleForServingInvalidReference(t *testing.T) {
	p := sampleProfile()

	_, err := ScaleForServing(p, 0, "g", 50, "g")
	assert.ErrorIs(t, err, ErrInvalidServingSize)

	_, err = ScaleForServing(p, -10, "g", 50, "g")
	assert.ErrorIs(t, err, ErrInvalidServingSize)
}

func TestScaleForServingRoundTrip(t *testing.T) {
	p := sampleProfile()

	scaled, err := ScaleForServing(p, 100, "g", 40, "g")
	require.NoError(t, err)
	back, err := ScaleForServing(scaled, 40, "g", 100, "g")
	require.NoError(t, err)

	assert.InDelta(t, p.Calories, back.Calories, 0.01)
	assert.InDelta(t, p.Protein, back.Protein, 0.01)
	assert.InDelta(t, p.Carbs.Total, back.Carbs.Total, 0.01)
	assert.InDelta(t, p.Vitamins["c"], back.Vitamins["c"], 0.01)
	assert.InDelta(t, p.Minerals["iron"], back.Minerals["iron"], 0.01)
}

func TestScaleForServingDoesNotMutateInput(t *testing.T) {
	p := sampleProfile()
	_, err := ScaleForServing(p, 100, "g", 300, "g")
	require.NoError(t, err)
	assert.Equal(t, 130.0, p.Calories)
	assert.Equal(t, 12.5, p.Vitamins["c"])
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, ZeroProfile().Validate())
	assert.NoError(t, sampleProfile().Validate())

	negCalories := sampleProfile()
	negCalories.Calories = -130
	err := negCalories.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calories")

	negSubfield := sampleProfile()
	negSubfield.Fat.Trans = -0.1
	assert.Error(t, negSubfield.Validate())

	negVitamin := sampleProfile()
	negVitamin.Vitamins["c"] = -12.5
	err = negVitamin.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vitamins.c")

	negMineral := sampleProfile()
	negMineral.Minerals["iron"] = -1
	assert.Error(t, negMineral.Validate())
}

func TestSumEmpty(t *testing.T) {
	assert.Equal(t, ZeroProfile(), Sum(nil))
	assert.Equal(t, ZeroProfile(), Sum([]Profile{}))
}

func TestSumOrderIndependent(t *testing.T) {
	a := sampleProfile()
	b := ZeroProfile()
	b.Calories = 500
	b.Protein = 20
	b.Vitamins["c"] = 2.5
	c := ZeroProfile()
	c.Calories = 75
	c.Fat.Total = 8

	forward := Sum([]Profile{a, b, c})
	reverse := Sum([]Profile{c, b, a})

	assert.Equal(t, forward, reverse)
	assert.Equal(t, 705.0, forward.Calories)
	assert.Equal(t, 15.0, forward.Vitamins["c"])
	assert.Equal(t, 8.3, forward.Fat.Total)
}

func TestProfileScanValueRoundTrip(t *testing.T) {
	p := sampleProfile()

	value, err := p.Value()
	require.NoError(t, err)

	var decoded Profile
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, p, decoded)

	var fromNil Profile
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, ZeroProfile(), fromNil)
}

func TestHasMicronutrients(t *testing.T) {
	macroOnly := ZeroProfile()
	macroOnly.Calories = 200
	macroOnly.Protein = 10
	macroOnly.Fat.Total = 5
	assert.False(t, macroOnly.HasMicronutrients())

	withSodium := macroOnly.Clone()
	withSodium.Sodium = 120
	assert.True(t, withSodium.HasMicronutrients())

	withVitamin := macroOnly.Clone()
	withVitamin.Vitamins["b12"] = 0.5
	assert.True(t, withVitamin.HasMicronutrients())

	withSaturated := macroOnly.Clone()
	withSaturated.Fat.Saturated = 1.2
	assert.True(t, withSaturated.HasMicronutrients())
}
