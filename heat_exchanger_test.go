package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHxEffectivenessTurbulent(t *testing.T) {
	props := NewFluidPropertiesWater()

	// Re = 4 * 1.0 / (pi * 0.0001702 * 0.025) = ~3.0e5, well turbulent
	eps, c_f := get_hx_effectiveness(props, 0.0, 1.0, 100.0, 0.025, 1.0)

	assert.Equal(t, 4615.0, c_f)
	assert.InDelta(t, 1.0, eps, 1e-9)
}

func TestHxEffectivenessTurbulentShortTube(t *testing.T) {
	props := NewFluidPropertiesWater()

	// a short tube run leaves the exchange visibly incomplete
	eps, _ := get_hx_effectiveness(props, 0.0, 1.0, 5.0, 0.025, 1.0)

	assert.InDelta(t, 0.6922597431437181, eps, 1e-9)
}

func TestHxEffectivenessLaminar(t *testing.T) {
	props := NewFluidPropertiesWater()

	// splitting the flow over 30 circuits pushes Re below 2300
	eps, c_f := get_hx_effectiveness(props, 0.0, 0.05, 100.0, 0.025, 30.0)

	assert.Equal(t, 4615.0, c_f)
	assert.InDelta(t, 0.938423789832533, eps, 1e-9)
}

func TestHxEffectivenessNtuCapped(t *testing.T) {
	props := NewFluidPropertiesWater()

	// at a tiny flow rate NTU exceeds the exponent cap and eps pins at 1
	eps, _ := get_hx_effectiveness(props, 0.0, 0.001, 100.0, 0.025, 1.0)

	assert.Equal(t, 1.0, eps)
}

func TestHxEffectivenessCircuitSplitMatters(t *testing.T) {
	props := NewFluidPropertiesBrine(BrineCaCl2, 26.0)

	eps_one, _ := get_hx_effectiveness(props, -10.0, 14.0, 1800.0, 0.025, 1.0)
	eps_many, _ := get_hx_effectiveness(props, -10.0, 14.0, 1800.0, 0.025, 15.0)

	// the single circuit runs turbulent, the split circuits run closer to
	// the laminar boundary with a different effectiveness
	assert.NotEqual(t, eps_one, eps_many)
}

func TestHxEffectTerm(t *testing.T) {
	assert.Equal(t, 0.5*2.0*4000.0, get_hx_effect_term(0.5, 2.0, 4000.0))

	// the term never exceeds the flow heat capacity rate
	assert.Equal(t, 2.0*4000.0, get_hx_effect_term(1.2, 2.0, 4000.0))
}
