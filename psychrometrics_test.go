package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativeHumidity(t *testing.T) {

	assert.Equal(t, 50.0, get_h(500.0, 1000.0))
}

func TestAbsoluteHumidity(t *testing.T) {

	x := get_x(1000.0)

	assert.InDelta(t, 0.006199850485920757, x, 1e-15)

	// the inverse uses the slightly different molar mass ratio 0.62198
	assert.InDelta(t, 1000.031838015792, get_p_v(x), 1e-9)
}

func TestSaturationVaporPressure(t *testing.T) {

	assert.InDelta(t, 611.2128400464351, get_p_vs(0.0), 1e-9)
	assert.InDelta(t, 2339.2491605340156, get_p_vs(20.0), 1e-9)

	// below freezing the pressure is taken over ice
	assert.InDelta(t, 259.89248754378985, get_p_vs(-10.0), 1e-9)
}

func TestSaturationVaporPressureMagnus(t *testing.T) {

	assert.InDelta(t, 6.112, get_p_vs_mgn(0.0), 1e-12)
}

func TestDewPoint(t *testing.T) {

	// saturated air dews at its own temperature
	assert.InDelta(t, 10.0, get_theta_dp(get_p_vs_mgn(10.0)*100.0), 1e-9)

	assert.InDelta(t, 6.978980023550163, get_theta_dp(1000.0), 1e-9)
}

func TestDewPointOfDryAir(t *testing.T) {

	assert.Equal(t, -273.15, get_theta_dp(0.0))
	assert.Equal(t, -273.15, get_theta_dp(-5.0))
}
