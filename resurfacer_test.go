package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResurfacerFloodHeat(t *testing.T) {

	r := NewResurfacer(0.6, 55.0, 10.0)

	// one tank at 55 degree C onto ice at -3 degree C
	assert.InDelta(t, 340838.80679999996, r.get_q_resurfacing(-3.0), 1e-6)
}

func TestResurfacerHotWaterEnergy(t *testing.T) {

	r := NewResurfacer(0.6, 55.0, 10.0)

	assert.InDelta(t, 112521.41999999998, r.get_e_heating_water(), 1e-6)
}

func TestResurfacerHumidityLoad(t *testing.T) {

	r := NewResurfacer(0.6, 55.0, 10.0)

	assert.InDelta(t, 4582.301000424122, r.get_q_humidity(-3.0, 18.0), 1e-6)
}

func TestResurfacerEventLoad(t *testing.T) {

	r := NewResurfacer(0.6, 55.0, 10.0)

	q := r.get_q_event(-3.0, 18.0)

	assert.InDelta(t, 345421.1078004241, q, 1e-6)
	assert.InDelta(t, r.get_q_resurfacing(-3.0)+r.get_q_humidity(-3.0, 18.0), q, 1e-9)
}

func TestResurfacerEmptyTank(t *testing.T) {

	r := NewResurfacer(0.0, 55.0, 10.0)

	assert.Equal(t, 0.0, r.get_q_resurfacing(-3.0))
	assert.Equal(t, 0.0, r.get_e_heating_water())
}

func TestResurfacerNegativeTankPanics(t *testing.T) {

	require.Panics(t, func() {
		NewResurfacer(-1.0, 55.0, 10.0)
	})
}

func TestAirWaterContent(t *testing.T) {

	// dry air holds no water regardless of temperature
	assert.Equal(t, 0.0, _get_ah(-3.0, 0.0))

	assert.InDelta(t, 0.0010500423931749717, _get_ah(55.0, 1.0), 1e-15)
}

func TestFreezingLoad(t *testing.T) {

	// 45 m3 of flood water at 12 degree C frozen down to -3 degree C
	assert.InDelta(t, 17498875.41, get_q_freezing(45.0, 12.0, -3.0), 1e-6)
}
